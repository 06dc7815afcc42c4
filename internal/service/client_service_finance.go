package service

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type clientFinanceService struct {
	adapter adapter.ServerAdapter
}

// NewClientFinanceService returns a [ClientFinanceService] that forwards to
// serverAdapter and translates transport errors into service errors.
func NewClientFinanceService(serverAdapter adapter.ServerAdapter) ClientFinanceService {
	return &clientFinanceService{adapter: serverAdapter}
}

// result maps the error of an adapter call that also returns a value.
func result[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, mapAdapterError(err)
	}
	return v, nil
}

func (f *clientFinanceService) ListBankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	accounts, err := result(f.adapter.ListBankAccounts(ctx))
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []models.BankAccount{}
	}
	return accounts, nil
}

func (f *clientFinanceService) CreateBankAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error) {
	return result(f.adapter.CreateBankAccount(ctx, account))
}

func (f *clientFinanceService) UpdateBankAccount(ctx context.Context, id int64, update models.BankAccountUpdate) (models.BankAccount, error) {
	return result(f.adapter.UpdateBankAccount(ctx, id, update))
}

func (f *clientFinanceService) DeleteBankAccount(ctx context.Context, id int64) error {
	return mapAdapterError(f.adapter.DeleteBankAccount(ctx, id))
}

func (f *clientFinanceService) ListCategories(ctx context.Context, page models.PageRequest) (models.Page[models.Category], error) {
	return result(f.adapter.ListCategories(ctx, page))
}

func (f *clientFinanceService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return result(f.adapter.CreateCategory(ctx, category))
}

func (f *clientFinanceService) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error) {
	return result(f.adapter.UpdateCategory(ctx, id, update))
}

func (f *clientFinanceService) DeleteCategory(ctx context.Context, id int64) error {
	return mapAdapterError(f.adapter.DeleteCategory(ctx, id))
}

func (f *clientFinanceService) ListTransactions(ctx context.Context, page models.PageRequest) (models.Page[models.Transaction], error) {
	return result(f.adapter.ListTransactions(ctx, page))
}

func (f *clientFinanceService) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	return result(f.adapter.CreateTransaction(ctx, transaction))
}

func (f *clientFinanceService) UpdateTransaction(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	return result(f.adapter.UpdateTransaction(ctx, id, update))
}

func (f *clientFinanceService) DeleteTransaction(ctx context.Context, id int64) error {
	return mapAdapterError(f.adapter.DeleteTransaction(ctx, id))
}

func (f *clientFinanceService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	return result(f.adapter.Dashboard(ctx))
}
