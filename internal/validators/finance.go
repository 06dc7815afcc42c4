package validators

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// FinanceValidator validates bank accounts, categories and transactions.
//
// Create models are checked in full. Update models are checked field by
// field for the fields they carry and must carry at least one.
type FinanceValidator struct{}

// NewFinanceValidator returns a [Validator] for the finance models.
func NewFinanceValidator() Validator {
	return &FinanceValidator{}
}

func (v *FinanceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BankAccount:
		return v.validateBankAccount(value)
	case *models.BankAccount:
		return v.validateBankAccount(*value)
	case models.BankAccountUpdate:
		return v.validateBankAccountUpdate(value)
	case *models.BankAccountUpdate:
		return v.validateBankAccountUpdate(*value)

	case models.Category:
		return v.validateCategory(value)
	case *models.Category:
		return v.validateCategory(*value)
	case models.CategoryUpdate:
		return v.validateCategoryUpdate(value)
	case *models.CategoryUpdate:
		return v.validateCategoryUpdate(*value)

	case models.Transaction:
		return v.validateTransaction(value)
	case *models.Transaction:
		return v.validateTransaction(*value)
	case models.TransactionUpdate:
		return v.validateTransactionUpdate(value)
	case *models.TransactionUpdate:
		return v.validateTransactionUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

// ── bank accounts ──

func checkAccountName(name string) error {
	if blank(name) {
		return ErrAccountNameRequired
	}
	return nil
}

func checkAccountNumber(number string) error {
	if blank(number) {
		return ErrAccountNumberRequired
	}
	if !lengthBetween(number, minAccountNumberLength, maxAccountNumberLength) {
		return ErrAccountNumberLength
	}
	return nil
}

func checkAgency(agency string) error {
	if blank(agency) {
		return ErrAgencyRequired
	}
	if !lengthBetween(agency, minAgencyLength, maxAgencyLength) {
		return ErrAgencyLength
	}
	return nil
}

func (v *FinanceValidator) validateBankAccount(account models.BankAccount) error {
	if err := checkAccountName(account.Name); err != nil {
		return err
	}
	if err := checkAccountNumber(account.Number); err != nil {
		return err
	}
	return checkAgency(account.Agency)
}

func (v *FinanceValidator) validateBankAccountUpdate(update models.BankAccountUpdate) error {
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil {
		if err := checkAccountName(*update.Name); err != nil {
			return err
		}
	}
	if update.Number != nil {
		if err := checkAccountNumber(*update.Number); err != nil {
			return err
		}
	}
	if update.Agency != nil {
		return checkAgency(*update.Agency)
	}
	return nil
}

// ── categories ──

func (v *FinanceValidator) validateCategory(category models.Category) error {
	if err := checkName(category.Name); err != nil {
		return err
	}
	return checkDescription(category.Description)
}

func (v *FinanceValidator) validateCategoryUpdate(update models.CategoryUpdate) error {
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil {
		if err := checkName(*update.Name); err != nil {
			return err
		}
	}
	if update.Description != nil {
		return checkDescription(*update.Description)
	}
	return nil
}

// ── transactions ──

func checkType(t models.TransactionType) error {
	if t == "" {
		return ErrTypeRequired
	}
	if !t.Valid() {
		return ErrInvalidType
	}
	return nil
}

func checkAmount(amount float64) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	return nil
}

func (v *FinanceValidator) validateTransaction(transaction models.Transaction) error {
	if transaction.BankAccountID <= 0 {
		return ErrBankAccountRequired
	}
	if transaction.CategoryID <= 0 {
		return ErrCategoryRequired
	}
	if err := checkType(transaction.Type); err != nil {
		return err
	}
	if transaction.Amount == 0 {
		return ErrAmountRequired
	}
	if err := checkAmount(transaction.Amount); err != nil {
		return err
	}
	if err := checkDescription(transaction.Description); err != nil {
		return err
	}
	if transaction.TransactionAt.IsZero() {
		return ErrTransactionAtRequired
	}
	return nil
}

func (v *FinanceValidator) validateTransactionUpdate(update models.TransactionUpdate) error {
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}
	if update.BankAccountID != nil && *update.BankAccountID <= 0 {
		return ErrBankAccountRequired
	}
	if update.CategoryID != nil && *update.CategoryID <= 0 {
		return ErrCategoryRequired
	}
	if update.Type != nil {
		if err := checkType(*update.Type); err != nil {
			return err
		}
	}
	if update.Amount != nil {
		if err := checkAmount(*update.Amount); err != nil {
			return err
		}
	}
	if update.Description != nil {
		if err := checkDescription(*update.Description); err != nil {
			return err
		}
	}
	if update.TransactionAt != nil && update.TransactionAt.IsZero() {
		return ErrTransactionAtRequired
	}
	return nil
}
