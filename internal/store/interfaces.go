package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// RefreshTokenRepository persists refresh token hashes. A user has at most
// one live row.
type RefreshTokenRepository interface {
	// ReplaceForUser deletes every row of token.UserID and inserts token in
	// one database transaction.
	ReplaceForUser(ctx context.Context, token models.RefreshToken) error
	FindLatestByUserID(ctx context.Context, userID int64) (models.RefreshToken, error)
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// BankAccountRepository is scoped to the owning user on every call.
type BankAccountRepository interface {
	CreateBankAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error)
	ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error)
	GetBankAccount(ctx context.Context, userID, id int64) (models.BankAccount, error)
	FindBankAccountByNumber(ctx context.Context, userID int64, number, agency string) (models.BankAccount, error)
	UpdateBankAccount(ctx context.Context, userID, id int64, update models.BankAccountUpdate) (models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, userID, id int64) error
}

// CategoryRepository is scoped to the owning user on every call.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	ListCategories(ctx context.Context, userID int64, page models.PageRequest) ([]models.Category, int, error)
	GetCategory(ctx context.Context, userID, id int64) (models.Category, error)
	FindCategoryByName(ctx context.Context, userID int64, name string) (models.Category, error)
	UpdateCategory(ctx context.Context, userID, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error
}

// TransactionRepository is scoped through the owning bank account.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, page models.PageRequest) ([]models.Transaction, int, error)
	GetTransaction(ctx context.Context, userID, id int64) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

// DashboardRepository aggregates a user's transactions. Zero from/to
// bounds are left open.
type DashboardRepository interface {
	ExpensesByCategory(ctx context.Context, userID int64, from, to time.Time) ([]models.PieSlice, error)
	MonthlyTotals(ctx context.Context, userID int64, from, to time.Time) ([]models.MonthlyPoint, error)
	DailyTotals(ctx context.Context, userID int64, from, to time.Time) ([]models.DailyPoint, error)
	Totals(ctx context.Context, userID int64, from, to time.Time) (models.Totals, error)
}
