package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type bankAccountRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBankAccountRepository(db *DB, logger *logger.Logger) BankAccountRepository {
	logger.Debug().Msg("creating bank account repository")
	return &bankAccountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bankAccountRepository) CreateBankAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("bank_accounts").
		Columns("user_id", "name", "number", "agency").
		Values(account.UserID, account.Name, account.Number, account.Agency).
		Suffix("RETURNING " + joinColumns(bankAccountColumns)).
		ToSql()
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBankAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*bankAccountRepository.CreateBankAccount").Int64("user_id", account.UserID).Msg("error creating bank account")
		return models.BankAccount{}, rowError(err)
	}

	return created, nil
}

func (r *bankAccountRepository) ListBankAccounts(ctx context.Context, userID int64) ([]models.BankAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := bankAccountsTable.selectAll(userID).OrderBy("name ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bankAccountRepository.ListBankAccounts").Int64("user_id", userID).Msg("error listing bank accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.BankAccount, 0)
	for rows.Next() {
		account, scanErr := scanBankAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*bankAccountRepository.ListBankAccounts").Int64("user_id", userID).Msg("failed to scan bank account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *bankAccountRepository) GetBankAccount(ctx context.Context, userID, id int64) (models.BankAccount, error) {
	return r.getOne(ctx, "*bankAccountRepository.GetBankAccount", userID, bankAccountsTable.selectByID(userID, id))
}

// FindBankAccountByNumber looks up the (number, agency) pair among the
// caller's accounts.
func (r *bankAccountRepository) FindBankAccountByNumber(ctx context.Context, userID int64, number, agency string) (models.BankAccount, error) {
	builder := bankAccountsTable.selectAll(userID).Where(sq.Eq{"number": number, "agency": agency})
	return r.getOne(ctx, "*bankAccountRepository.FindBankAccountByNumber", userID, builder)
}

func (r *bankAccountRepository) getOne(ctx context.Context, fn string, userID int64, builder sq.SelectBuilder) (models.BankAccount, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return models.BankAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanBankAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", fn).Int64("user_id", userID).Msg("bank account lookup failed")
		return models.BankAccount{}, readError(err)
	}

	return account, nil
}

func (r *bankAccountRepository) UpdateBankAccount(ctx context.Context, userID, id int64, update models.BankAccountUpdate) (models.BankAccount, error) {
	log := logger.FromContext(ctx)

	builder := bankAccountsTable.update(userID, id)
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Number != nil {
		builder = builder.Set("number", *update.Number)
	}
	if update.Agency != nil {
		builder = builder.Set("agency", *update.Agency)
	}

	if err := execScoped(ctx, r.db, builder); err != nil {
		log.Err(err).Str("func", "*bankAccountRepository.UpdateBankAccount").Int64("user_id", userID).Int64("id", id).Msg("error updating bank account")
		return models.BankAccount{}, err
	}

	return r.GetBankAccount(ctx, userID, id)
}

func (r *bankAccountRepository) DeleteBankAccount(ctx context.Context, userID, id int64) error {
	if err := execScoped(ctx, r.db, bankAccountsTable.delete(userID, id)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bankAccountRepository.DeleteBankAccount").Int64("user_id", userID).Int64("id", id).Msg("error deleting bank account")
		return err
	}
	return nil
}

func scanBankAccount(row sq.RowScanner) (models.BankAccount, error) {
	var a models.BankAccount
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Number, &a.Agency, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
