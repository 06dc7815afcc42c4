package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "created_at", "updated_at"}

	refreshTokenColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at"}

	bankAccountColumns = []string{"id", "user_id", "name", "number", "agency", "created_at", "updated_at"}

	categoryColumns = []string{"id", "user_id", "name", "description", "created_at", "updated_at"}

	transactionColumns = []string{
		"t.id", "t.bank_account_id", "t.category_id", "t.type", "t.amount",
		"t.description", "t.is_essential", "t.transaction_at", "t.created_at", "t.updated_at",
		"ba.id", "ba.user_id", "ba.name", "ba.number", "ba.agency",
		"c.id", "c.user_id", "c.name", "c.description",
	}
)

const userTransactionsFrom = "transactions t " +
	"JOIN bank_accounts ba ON ba.id = t.bank_account_id " +
	"JOIN categories c ON c.id = t.category_id"

// scopedTable builds statements that only ever touch rows of one user.
// Reads may join related tables; writes always target name alone.
type scopedTable struct {
	// name is the table UPDATE and DELETE run against.
	name string
	// from is the FROM clause of reads.
	from string
	// idColumn is the primary key as it must be written in reads.
	idColumn string
	columns  []string

	readOwner  func(userID int64) sq.Sqlizer
	writeOwner func(userID int64) sq.Sqlizer
}

func ownedBy(column string) func(int64) sq.Sqlizer {
	return func(userID int64) sq.Sqlizer {
		return sq.Eq{column: userID}
	}
}

var (
	bankAccountsTable = scopedTable{
		name:       "bank_accounts",
		from:       "bank_accounts",
		idColumn:   "id",
		columns:    bankAccountColumns,
		readOwner:  ownedBy("user_id"),
		writeOwner: ownedBy("user_id"),
	}

	categoriesTable = scopedTable{
		name:       "categories",
		from:       "categories",
		idColumn:   "id",
		columns:    categoryColumns,
		readOwner:  ownedBy("user_id"),
		writeOwner: ownedBy("user_id"),
	}

	// transactions have no user column; the owner is the one of the bank account.
	transactionsTable = scopedTable{
		name:      "transactions",
		from:      userTransactionsFrom,
		idColumn:  "t.id",
		columns:   transactionColumns,
		readOwner: ownedBy("ba.user_id"),
		writeOwner: func(userID int64) sq.Sqlizer {
			return sq.Expr("bank_account_id IN (SELECT id FROM bank_accounts WHERE user_id = ?)", userID)
		},
	}
)

func (s scopedTable) selectAll(userID int64) sq.SelectBuilder {
	return psql.Select(s.columns...).From(s.from).Where(s.readOwner(userID))
}

func (s scopedTable) selectByID(userID, id int64) sq.SelectBuilder {
	return s.selectAll(userID).Where(sq.Eq{s.idColumn: id})
}

func (s scopedTable) count(userID int64) sq.SelectBuilder {
	return psql.Select("COUNT(*)").From(s.from).Where(s.readOwner(userID))
}

// update always bumps updated_at; callers add the changed columns.
func (s scopedTable) update(userID, id int64) sq.UpdateBuilder {
	return psql.Update(s.name).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(s.writeOwner(userID))
}

func (s scopedTable) delete(userID, id int64) sq.DeleteBuilder {
	return psql.Delete(s.name).
		Where(sq.Eq{"id": id}).
		Where(s.writeOwner(userID))
}

// execScoped runs a scoped UPDATE or DELETE. Zero affected rows means the
// id does not exist for the caller and is reported as [ErrNotFound].
func execScoped(ctx context.Context, db *DB, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// countScoped returns the number of rows the count builder matches.
func countScoped(ctx context.Context, db *DB, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// userTransactions selects over transactions joined to the owning account.
func userTransactions(userID int64, columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("transactions t").
		Join("bank_accounts ba ON ba.id = t.bank_account_id").
		Where(sq.Eq{"ba.user_id": userID})
}

// between restricts transaction_at to [from, to); zero bounds are skipped.
func between(b sq.SelectBuilder, from, to time.Time) sq.SelectBuilder {
	if !from.IsZero() {
		b = b.Where(sq.GtOrEq{"t.transaction_at": from})
	}
	if !to.IsZero() {
		b = b.Where(sq.Lt{"t.transaction_at": to})
	}
	return b
}

const (
	sumIncome  = "COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE 0 END), 0)"
	sumExpense = "COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0)"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern matches search anywhere in the column. LIKE wildcards typed by
// the user are escaped, so "50%" looks for the literal text.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// containsInsensitive is a case-insensitive substring filter on column.
func containsInsensitive(column, search string) sq.Sqlizer {
	return sq.Expr(column+` ILIKE ? ESCAPE '\'`, likePattern(search))
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
