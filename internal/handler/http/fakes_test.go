package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// validToken is accepted by the default fakeAuthService.parse as user 7.
const validToken = "valid-access-token"

type fakeAuthService struct {
	signIn  func(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	refresh func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	logout  func(ctx context.Context, userID int64) error
	parse   func(ctx context.Context, accessToken string) (models.Claims, error)
	profile func(ctx context.Context, userID int64) (models.User, error)
}

func (f *fakeAuthService) SignIn(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	return f.signIn(ctx, credentials)
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return f.refresh(ctx, refreshToken)
}

func (f *fakeAuthService) Logout(ctx context.Context, userID int64) error {
	return f.logout(ctx, userID)
}

func (f *fakeAuthService) ParseAccessToken(ctx context.Context, accessToken string) (models.Claims, error) {
	if f.parse != nil {
		return f.parse(ctx, accessToken)
	}
	if accessToken == validToken {
		return models.Claims{UserID: 7, Username: "Ana"}, nil
	}
	return models.Claims{}, service.ErrUnauthorized
}

func (f *fakeAuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return f.profile(ctx, userID)
}

type fakeUserService struct {
	register func(ctx context.Context, user models.User) (models.User, error)
	get      func(ctx context.Context, callerID, id int64) (models.User, error)
	update   func(ctx context.Context, callerID int64, update models.UserUpdate) (models.User, error)
	remove   func(ctx context.Context, callerID, id int64) error
}

func (f *fakeUserService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return f.register(ctx, user)
}

func (f *fakeUserService) GetUser(ctx context.Context, callerID, id int64) (models.User, error) {
	return f.get(ctx, callerID, id)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) (models.User, error) {
	return f.update(ctx, callerID, update)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, callerID, id int64) error {
	return f.remove(ctx, callerID, id)
}

type fakeBankAccountService struct {
	create func(ctx context.Context, userID int64, account models.BankAccount) (models.BankAccount, error)
	list   func(ctx context.Context, userID int64) ([]models.BankAccount, error)
	get    func(ctx context.Context, userID, id int64) (models.BankAccount, error)
	update func(ctx context.Context, userID, id int64, update models.BankAccountUpdate) (models.BankAccount, error)
	remove func(ctx context.Context, userID, id int64) error
}

func (f *fakeBankAccountService) CreateBankAccount(ctx context.Context, userID int64, account models.BankAccount) (models.BankAccount, error) {
	return f.create(ctx, userID, account)
}

func (f *fakeBankAccountService) ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error) {
	return f.list(ctx, userID)
}

func (f *fakeBankAccountService) GetBankAccount(ctx context.Context, userID, id int64) (models.BankAccount, error) {
	return f.get(ctx, userID, id)
}

func (f *fakeBankAccountService) UpdateBankAccount(ctx context.Context, userID, id int64, update models.BankAccountUpdate) (models.BankAccount, error) {
	return f.update(ctx, userID, id, update)
}

func (f *fakeBankAccountService) DeleteBankAccount(ctx context.Context, userID, id int64) error {
	return f.remove(ctx, userID, id)
}

type fakeCategoryService struct {
	create func(ctx context.Context, userID int64, category models.Category) (models.Category, error)
	list   func(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Category], error)
	get    func(ctx context.Context, userID, id int64) (models.Category, error)
	update func(ctx context.Context, userID, id int64, update models.CategoryUpdate) (models.Category, error)
	remove func(ctx context.Context, userID, id int64) error
}

func (f *fakeCategoryService) CreateCategory(ctx context.Context, userID int64, category models.Category) (models.Category, error) {
	return f.create(ctx, userID, category)
}

func (f *fakeCategoryService) ListCategories(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Category], error) {
	return f.list(ctx, userID, page)
}

func (f *fakeCategoryService) GetCategory(ctx context.Context, userID, id int64) (models.Category, error) {
	return f.get(ctx, userID, id)
}

func (f *fakeCategoryService) UpdateCategory(ctx context.Context, userID, id int64, update models.CategoryUpdate) (models.Category, error) {
	return f.update(ctx, userID, id, update)
}

func (f *fakeCategoryService) DeleteCategory(ctx context.Context, userID, id int64) error {
	return f.remove(ctx, userID, id)
}

type fakeTransactionService struct {
	create func(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error)
	list   func(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Transaction], error)
	get    func(ctx context.Context, userID, id int64) (models.Transaction, error)
	update func(ctx context.Context, userID, id int64, update models.TransactionUpdate) (models.Transaction, error)
	remove func(ctx context.Context, userID, id int64) error
}

func (f *fakeTransactionService) CreateTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	return f.create(ctx, userID, transaction)
}

func (f *fakeTransactionService) ListTransactions(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Transaction], error) {
	return f.list(ctx, userID, page)
}

func (f *fakeTransactionService) GetTransaction(ctx context.Context, userID, id int64) (models.Transaction, error) {
	return f.get(ctx, userID, id)
}

func (f *fakeTransactionService) UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	return f.update(ctx, userID, id, update)
}

func (f *fakeTransactionService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	return f.remove(ctx, userID, id)
}

type fakeDashboardService struct {
	get func(ctx context.Context, userID int64) (models.Dashboard, error)
}

func (f *fakeDashboardService) GetDashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	return f.get(ctx, userID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// newTestRouter wires services into the full router. Nil service fields are
// replaced with empty fakes so the auth middleware always has a parser.
func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test"}
	}

	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

// do sends a request through router. A non-empty token is sent as Bearer.
func do(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg.Message
}
