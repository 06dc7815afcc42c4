package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/models"
)

func newTestTransactionRepo(t *testing.T) (*transactionRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &transactionRepository{db: db, logger: db.logger}, mock
}

func transactionRows(at time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(transactionColumns).AddRow(
		int64(9), int64(3), int64(1), "EXPENSE", 120.5,
		"feira", true, at, at, at,
		int64(3), int64(7), "Nubank", "123456", "0001",
		int64(1), int64(7), "Mercado", "",
	)
}

func TestCreateTransaction_ReturnsJoinedRow(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(int64(3), int64(1), "EXPENSE", 120.5, "feira", true, at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ba.user_id = $1 AND t.id = $2")).
		WithArgs(int64(7), int64(9)).
		WillReturnRows(transactionRows(at))

	created, err := repo.CreateTransaction(context.Background(), 7, models.Transaction{
		BankAccountID: 3,
		CategoryID:    1,
		Type:          models.Expense,
		Amount:        120.5,
		Description:   "feira",
		IsEssential:   true,
		TransactionAt: at,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, models.Expense, created.Type)
	require.NotNil(t, created.BankAccount)
	assert.Equal(t, "Nubank", created.BankAccount.Name)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Mercado", created.Category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_MissingReference(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("INSERT INTO transactions").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateTransaction(context.Background(), 7, models.Transaction{BankAccountID: 3, CategoryID: 1, Type: models.Income})

	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestListTransactions_SearchesDescription(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions t")).
		WithArgs(int64(7), "%feira%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE ba.user_id = $1 AND t.description ILIKE $2 ESCAPE '\\' ORDER BY t.transaction_at DESC, t.id DESC LIMIT 10")).
		WithArgs(int64(7), "%feira%").
		WillReturnRows(transactionRows(time.Now()))

	transactions, total, err := repo.ListTransactions(context.Background(), 7, models.PageRequest{Page: 1, Limit: 10, Search: "feira"})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, transactions, 1)
}

func TestGetTransaction_OtherUsersIDIsNotFound(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions t").
		WithArgs(int64(8), int64(9)).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := repo.GetTransaction(context.Background(), 8, 9)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTransaction_ScopedThroughBankAccount(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)
	amount := 99.9

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET updated_at = NOW(), amount = $1 WHERE id = $2 AND bank_account_id IN (SELECT id FROM bank_accounts WHERE user_id = $3)")).
		WithArgs(amount, int64(9), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM transactions t").
		WithArgs(int64(7), int64(9)).
		WillReturnRows(transactionRows(time.Now()))

	_, err := repo.UpdateTransaction(context.Background(), 7, 9, models.TransactionUpdate{Amount: &amount})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransaction_NotOwned(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(9), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteTransaction(context.Background(), 8, 9), ErrNotFound)
}
