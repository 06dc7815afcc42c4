package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestFinanceValidator_BankAccount(t *testing.T) {
	v := NewFinanceValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		account models.BankAccount
		want    error
	}{
		{name: "valid", account: models.BankAccount{Name: "Nubank", Number: "12345", Agency: "001"}},
		{name: "missing name", account: models.BankAccount{Number: "12345", Agency: "001"}, want: ErrAccountNameRequired},
		{name: "missing number", account: models.BankAccount{Name: "Nubank", Agency: "001"}, want: ErrAccountNumberRequired},
		{name: "short number", account: models.BankAccount{Name: "Nubank", Number: "1234", Agency: "001"}, want: ErrAccountNumberLength},
		{name: "missing agency", account: models.BankAccount{Name: "Nubank", Number: "12345"}, want: ErrAgencyRequired},
		{name: "long agency", account: models.BankAccount{Name: "Nubank", Number: "12345", Agency: "12345678901"}, want: ErrAgencyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.account)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFinanceValidator_BankAccountUpdate(t *testing.T) {
	v := NewFinanceValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.BankAccountUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.BankAccountUpdate{Name: ptr("Inter")}))
	assert.ErrorIs(t, v.Validate(ctx, models.BankAccountUpdate{Agency: ptr("01")}), ErrAgencyLength)
}

func TestFinanceValidator_Category(t *testing.T) {
	v := NewFinanceValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Category{Name: "Mercado"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Category{}), ErrNameRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.Category{Name: "Mercado", Description: strings.Repeat("á", 256)}), ErrDescriptionTooLong)
	assert.NoError(t, v.Validate(ctx, models.Category{Name: "Mercado", Description: strings.Repeat("á", 255)}))
	assert.ErrorIs(t, v.Validate(ctx, &models.CategoryUpdate{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.CategoryUpdate{Name: ptr("")}), ErrNameRequired)
}

func validTransaction() models.Transaction {
	return models.Transaction{
		BankAccountID: 1,
		CategoryID:    2,
		Type:          models.Expense,
		Amount:        10.5,
		TransactionAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFinanceValidator_Transaction(t *testing.T) {
	v := NewFinanceValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Transaction)
		want   error
	}{
		{name: "valid", mutate: func(*models.Transaction) {}},
		{name: "no bank account", mutate: func(tr *models.Transaction) { tr.BankAccountID = 0 }, want: ErrBankAccountRequired},
		{name: "no category", mutate: func(tr *models.Transaction) { tr.CategoryID = -1 }, want: ErrCategoryRequired},
		{name: "no type", mutate: func(tr *models.Transaction) { tr.Type = "" }, want: ErrTypeRequired},
		{name: "unknown type", mutate: func(tr *models.Transaction) { tr.Type = "TRANSFER" }, want: ErrInvalidType},
		{name: "zero amount", mutate: func(tr *models.Transaction) { tr.Amount = 0 }, want: ErrAmountRequired},
		{name: "negative amount", mutate: func(tr *models.Transaction) { tr.Amount = -3 }, want: ErrAmountNotPositive},
		{name: "long description", mutate: func(tr *models.Transaction) { tr.Description = strings.Repeat("x", 256) }, want: ErrDescriptionTooLong},
		{name: "no date", mutate: func(tr *models.Transaction) { tr.TransactionAt = time.Time{} }, want: ErrTransactionAtRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTransaction()
			tt.mutate(&tr)

			err := v.Validate(ctx, tr)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFinanceValidator_TransactionUpdate(t *testing.T) {
	v := NewFinanceValidator()
	ctx := context.Background()
	income := models.Income
	bogus := models.TransactionType("X")

	assert.ErrorIs(t, v.Validate(ctx, models.TransactionUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.TransactionUpdate{Type: &income, IsEssential: ptr(false)}))
	assert.ErrorIs(t, v.Validate(ctx, models.TransactionUpdate{Type: &bogus}), ErrInvalidType)
	assert.ErrorIs(t, v.Validate(ctx, models.TransactionUpdate{Amount: ptr(0.0)}), ErrAmountNotPositive)
	assert.ErrorIs(t, v.Validate(ctx, &models.TransactionUpdate{TransactionAt: &time.Time{}}), ErrTransactionAtRequired)
}

func TestFinanceValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewFinanceValidator().Validate(context.Background(), models.User{}), ErrUnsupportedType)
}
