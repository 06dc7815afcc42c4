package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// transactionService checks that the referenced bank account and category
// belong to the caller before any write.
type transactionService struct {
	transactions store.TransactionRepository
	accounts     store.BankAccountRepository
	categories   store.CategoryRepository

	logger *logger.Logger
}

func NewTransactionService(
	transactions store.TransactionRepository,
	accounts store.BankAccountRepository,
	categories store.CategoryRepository,
	logger *logger.Logger,
) TransactionService {
	return &transactionService{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
		logger:       logger,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	if err := s.checkReferences(ctx, userID, &transaction.BankAccountID, &transaction.CategoryID); err != nil {
		return models.Transaction{}, err
	}

	created, err := s.transactions.CreateTransaction(ctx, userID, transaction)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("transaction creation failed")
		return models.Transaction{}, s.writeError(err)
	}

	return created, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID int64, page models.PageRequest) (models.Page[models.Transaction], error) {
	page = page.Normalize()

	transactions, total, err := s.transactions.ListTransactions(ctx, userID, page)
	if err != nil {
		return models.Page[models.Transaction]{}, fmt.Errorf("listing transactions failed: %w", err)
	}

	return models.NewPage(transactions, total, page), nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID, id int64) (models.Transaction, error) {
	transaction, err := s.transactions.GetTransaction(ctx, userID, id)
	if err != nil {
		return models.Transaction{}, translate(err, ErrTransactionNotFound, nil)
	}
	return transaction, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	if err := s.checkReferences(ctx, userID, update.BankAccountID, update.CategoryID); err != nil {
		return models.Transaction{}, err
	}

	updated, err := s.transactions.UpdateTransaction(ctx, userID, id, update)
	if err != nil {
		return models.Transaction{}, s.writeError(err)
	}
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	if err := s.transactions.DeleteTransaction(ctx, userID, id); err != nil {
		return translate(err, ErrTransactionNotFound, nil)
	}
	return nil
}

// checkReferences resolves the non-nil ids within the caller's scope. A
// foreign id is reported exactly like a missing one.
func (s *transactionService) checkReferences(ctx context.Context, userID int64, bankAccountID, categoryID *int64) error {
	if bankAccountID != nil {
		if _, err := s.accounts.GetBankAccount(ctx, userID, *bankAccountID); err != nil {
			return translate(err, ErrBankAccountNotFound, nil)
		}
	}
	if categoryID != nil {
		if _, err := s.categories.GetCategory(ctx, userID, *categoryID); err != nil {
			return translate(err, ErrCategoryNotFound, nil)
		}
	}
	return nil
}

// writeError maps a failed insert or update. A foreign-key violation means
// a referenced row vanished after checkReferences.
func (s *transactionService) writeError(err error) error {
	if errors.Is(err, store.ErrReferenceNotFound) {
		return fmt.Errorf("%w: %w", ErrBankAccountNotFound, err)
	}
	return translate(err, ErrTransactionNotFound, nil)
}
