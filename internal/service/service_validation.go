package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// The validation services decorate a core service: input is checked before
// it reaches the inner service, which therefore never sees malformed data.

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

type userValidationService struct {
	UserService
	validator validators.Validator
}

// NewUserValidationService validates registration and profile updates
// before delegating to inner.
func NewUserValidationService(inner UserService) UserService {
	return &userValidationService{UserService: inner, validator: validators.NewUserValidator()}
}

func (v *userValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, invalid(err)
	}
	return v.UserService.RegisterUser(ctx, user)
}

func (v *userValidationService) UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, invalid(err)
	}
	return v.UserService.UpdateUser(ctx, callerID, update)
}

type bankAccountValidationService struct {
	BankAccountService
	validator validators.Validator
}

func NewBankAccountValidationService(inner BankAccountService) BankAccountService {
	return &bankAccountValidationService{BankAccountService: inner, validator: validators.NewFinanceValidator()}
}

func (v *bankAccountValidationService) CreateBankAccount(ctx context.Context, userID int64, account models.BankAccount) (models.BankAccount, error) {
	if err := v.validator.Validate(ctx, account); err != nil {
		return models.BankAccount{}, invalid(err)
	}
	return v.BankAccountService.CreateBankAccount(ctx, userID, account)
}

func (v *bankAccountValidationService) UpdateBankAccount(ctx context.Context, userID, id int64, update models.BankAccountUpdate) (models.BankAccount, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.BankAccount{}, invalid(err)
	}
	return v.BankAccountService.UpdateBankAccount(ctx, userID, id, update)
}

type categoryValidationService struct {
	CategoryService
	validator validators.Validator
}

func NewCategoryValidationService(inner CategoryService) CategoryService {
	return &categoryValidationService{CategoryService: inner, validator: validators.NewFinanceValidator()}
}

func (v *categoryValidationService) CreateCategory(ctx context.Context, userID int64, category models.Category) (models.Category, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.Category{}, invalid(err)
	}
	return v.CategoryService.CreateCategory(ctx, userID, category)
}

func (v *categoryValidationService) UpdateCategory(ctx context.Context, userID, id int64, update models.CategoryUpdate) (models.Category, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Category{}, invalid(err)
	}
	return v.CategoryService.UpdateCategory(ctx, userID, id, update)
}

type transactionValidationService struct {
	TransactionService
	validator validators.Validator
}

func NewTransactionValidationService(inner TransactionService) TransactionService {
	return &transactionValidationService{TransactionService: inner, validator: validators.NewFinanceValidator()}
}

func (v *transactionValidationService) CreateTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	if err := v.validator.Validate(ctx, transaction); err != nil {
		return models.Transaction{}, invalid(err)
	}
	return v.TransactionService.CreateTransaction(ctx, userID, transaction)
}

func (v *transactionValidationService) UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Transaction{}, invalid(err)
	}
	return v.TransactionService.UpdateTransaction(ctx, userID, id, update)
}
