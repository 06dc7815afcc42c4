package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// transactionRepository reads transactions joined with their bank account
// and category. Ownership is derived from bank_accounts.user_id; callers
// must check that referenced accounts and categories belong to the user
// before writing.
type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("transactions").
		Columns("bank_account_id", "category_id", "type", "amount", "description", "is_essential", "transaction_at").
		Values(
			transaction.BankAccountID,
			transaction.CategoryID,
			string(transaction.Type),
			transaction.Amount,
			transaction.Description,
			transaction.IsEssential,
			transaction.TransactionAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*transactionRepository.CreateTransaction").Int64("bank_account_id", transaction.BankAccountID).Msg("error creating transaction")
		return models.Transaction{}, rowError(err)
	}

	return r.GetTransaction(ctx, userID, id)
}

// ListTransactions returns one page ordered by transaction_at, newest first.
// Search is a case-insensitive substring of the description.
func (r *transactionRepository) ListTransactions(ctx context.Context, userID int64, page models.PageRequest) ([]models.Transaction, int, error) {
	log := logger.FromContext(ctx)

	listBuilder := transactionsTable.selectAll(userID)
	countBuilder := transactionsTable.count(userID)
	if page.Search != "" {
		listBuilder = listBuilder.Where(containsInsensitive("t.description", page.Search))
		countBuilder = countBuilder.Where(containsInsensitive("t.description", page.Search))
	}

	total, err := countScoped(ctx, r.db, countBuilder)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Int64("user_id", userID).Msg("error counting transactions")
		return nil, 0, err
	}

	query, args, err := listBuilder.
		OrderBy("t.transaction_at DESC", "t.id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Int64("user_id", userID).Msg("error listing transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, page.Limit)
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*transactionRepository.ListTransactions").Int64("user_id", userID).Msg("failed to scan transaction row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		transactions = append(transactions, transaction)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) GetTransaction(ctx context.Context, userID, id int64) (models.Transaction, error) {
	query, args, err := transactionsTable.selectByID(userID, id).ToSql()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	transaction, err := scanTransaction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Transaction{}, readError(err)
	}

	return transaction, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, userID, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	builder := transactionsTable.update(userID, id)
	if update.BankAccountID != nil {
		builder = builder.Set("bank_account_id", *update.BankAccountID)
	}
	if update.CategoryID != nil {
		builder = builder.Set("category_id", *update.CategoryID)
	}
	if update.Type != nil {
		builder = builder.Set("type", string(*update.Type))
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.IsEssential != nil {
		builder = builder.Set("is_essential", *update.IsEssential)
	}
	if update.TransactionAt != nil {
		builder = builder.Set("transaction_at", *update.TransactionAt)
	}

	if err := execScoped(ctx, r.db, builder); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionRepository.UpdateTransaction").Int64("user_id", userID).Int64("id", id).Msg("error updating transaction")
		return models.Transaction{}, err
	}

	return r.GetTransaction(ctx, userID, id)
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, userID, id int64) error {
	if err := execScoped(ctx, r.db, transactionsTable.delete(userID, id)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transactionRepository.DeleteTransaction").Int64("user_id", userID).Int64("id", id).Msg("error deleting transaction")
		return err
	}
	return nil
}

func scanTransaction(row sq.RowScanner) (models.Transaction, error) {
	var (
		t  models.Transaction
		ba models.BankAccount
		c  models.Category
	)
	err := row.Scan(
		&t.ID, &t.BankAccountID, &t.CategoryID, &t.Type, &t.Amount,
		&t.Description, &t.IsEssential, &t.TransactionAt, &t.CreatedAt, &t.UpdatedAt,
		&ba.ID, &ba.UserID, &ba.Name, &ba.Number, &ba.Agency,
		&c.ID, &c.UserID, &c.Name, &c.Description,
	)
	if err != nil {
		return models.Transaction{}, err
	}

	t.BankAccount = &ba
	t.Category = &c
	return t, nil
}
