package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type bankAccountService struct {
	accounts store.BankAccountRepository

	logger *logger.Logger
}

func NewBankAccountService(accounts store.BankAccountRepository, logger *logger.Logger) BankAccountService {
	return &bankAccountService{accounts: accounts, logger: logger}
}

func (s *bankAccountService) CreateBankAccount(ctx context.Context, userID int64, account models.BankAccount) (models.BankAccount, error) {
	_, lookupErr := s.accounts.FindBankAccountByNumber(ctx, userID, account.Number, account.Agency)
	exists, err := taken(lookupErr)
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("bank account lookup failed: %w", err)
	}
	if exists {
		return models.BankAccount{}, ErrBankAccountAlreadyExists
	}

	account.UserID = userID
	created, err := s.accounts.CreateBankAccount(ctx, account)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("bank account creation failed")
		return models.BankAccount{}, translate(err, ErrBankAccountNotFound, ErrBankAccountAlreadyExists)
	}

	return created, nil
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error) {
	accounts, err := s.accounts.ListBankAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts failed: %w", err)
	}
	if accounts == nil {
		accounts = []models.BankAccount{}
	}
	return accounts, nil
}

func (s *bankAccountService) GetBankAccount(ctx context.Context, userID, id int64) (models.BankAccount, error) {
	account, err := s.accounts.GetBankAccount(ctx, userID, id)
	if err != nil {
		return models.BankAccount{}, translate(err, ErrBankAccountNotFound, nil)
	}
	return account, nil
}

// UpdateBankAccount rejects a number/agency change that would collide with
// another account of the same user.
func (s *bankAccountService) UpdateBankAccount(ctx context.Context, userID, id int64, update models.BankAccountUpdate) (models.BankAccount, error) {
	if update.Number != nil || update.Agency != nil {
		current, err := s.GetBankAccount(ctx, userID, id)
		if err != nil {
			return models.BankAccount{}, err
		}

		number, agency := current.Number, current.Agency
		if update.Number != nil {
			number = *update.Number
		}
		if update.Agency != nil {
			agency = *update.Agency
		}

		other, err := s.accounts.FindBankAccountByNumber(ctx, userID, number, agency)
		exists, err := taken(err)
		if err != nil {
			return models.BankAccount{}, fmt.Errorf("bank account lookup failed: %w", err)
		}
		if exists && other.ID != id {
			return models.BankAccount{}, ErrBankAccountAlreadyExists
		}
	}

	updated, err := s.accounts.UpdateBankAccount(ctx, userID, id, update)
	if err != nil {
		return models.BankAccount{}, translate(err, ErrBankAccountNotFound, ErrBankAccountAlreadyExists)
	}
	return updated, nil
}

// DeleteBankAccount also removes the account's transactions (ON DELETE CASCADE).
func (s *bankAccountService) DeleteBankAccount(ctx context.Context, userID, id int64) error {
	if err := s.accounts.DeleteBankAccount(ctx, userID, id); err != nil {
		return translate(err, ErrBankAccountNotFound, nil)
	}
	return nil
}
