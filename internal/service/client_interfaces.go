package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// ClientAuthService is the client-side session lifecycle. The session itself
// lives in the local token store and is managed by the server adapter.
type ClientAuthService interface {
	// Register creates the account on the server. It does not sign in.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login signs in and persists the session locally.
	Login(ctx context.Context, credentials models.Credentials) error

	// Logout revokes the session on the server and always clears it locally.
	Logout(ctx context.Context) error

	// Profile returns the signed-in user.
	Profile(ctx context.Context) (models.User, error)

	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteAccount removes the signed-in user and everything it owns.
	DeleteAccount(ctx context.Context) error

	// OnSessionExpired registers fn to run when a failed token refresh
	// clears the session.
	OnSessionExpired(fn func())

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientFinanceService is the client-side view of the signed-in user's
// bank accounts, categories, transactions and dashboard.
type ClientFinanceService interface {
	ListBankAccounts(ctx context.Context) ([]models.BankAccount, error)
	CreateBankAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error)
	UpdateBankAccount(ctx context.Context, id int64, update models.BankAccountUpdate) (models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, id int64) error

	ListCategories(ctx context.Context, page models.PageRequest) (models.Page[models.Category], error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTransactions(ctx context.Context, page models.PageRequest) (models.Page[models.Transaction], error)
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	Dashboard(ctx context.Context) (models.Dashboard, error)
}

// ClientDashboardPoller periodically reloads the dashboard in the background.
type ClientDashboardPoller interface {
	// Start launches the polling goroutine. Every interval it loads the
	// dashboard and passes the result to onUpdate. A zero or negative
	// interval defaults to 1 minute. Any previously running poller is
	// stopped first.
	Start(ctx context.Context, interval time.Duration, onUpdate func(models.Dashboard, error))

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
