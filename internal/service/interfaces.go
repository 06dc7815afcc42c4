package service

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// TokenIssuer mints access/refresh pairs and persists the refresh hash.
type TokenIssuer interface {
	IssueTokens(ctx context.Context, userID int64, displayName string) (models.TokenPair, error)
}

type AuthService interface {
	SignIn(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	Logout(ctx context.Context, userID int64) error
	ParseAccessToken(ctx context.Context, accessToken string) (models.Claims, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
}

// UserService manages the caller's own account. callerID comes from the
// access token; id comes from the URL.
type UserService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, callerID, id int64) (models.User, error)
	UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, callerID, id int64) error
}

type BankAccountService interface {
	CreateBankAccount(ctx context.Context, userID int64, account models.BankAccount) (models.BankAccount, error)
	ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error)
	GetBankAccount(ctx context.Context, userID, id int64) (models.BankAccount, error)
	UpdateBankAccount(ctx context.Context, userID, id int64, update models.BankAccountUpdate) (models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, userID, id int64) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, userID int64, category models.Category) (models.Category, error)
	ListCategories(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Category], error)
	GetCategory(ctx context.Context, userID, id int64) (models.Category, error)
	UpdateCategory(ctx context.Context, userID, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error
}

type TransactionService interface {
	CreateTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Transaction], error)
	GetTransaction(ctx context.Context, userID, id int64) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID int64) (models.Dashboard, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
