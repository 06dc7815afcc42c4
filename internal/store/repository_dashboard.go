package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// dashboardRepository runs the aggregate queries behind GET /dashboard/data.
// Every query is restricted to transactions of the user's bank accounts.
type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,
	}
}

// ExpensesByCategory sums expenses per category name.
func (r *dashboardRepository) ExpensesByCategory(ctx context.Context, userID int64, from, to time.Time) ([]models.PieSlice, error) {
	builder := userTransactions(userID, "c.name", "SUM(t.amount)").
		Join("categories c ON c.id = t.category_id").
		Where(sq.Eq{"t.type": string(models.Expense)}).
		GroupBy("c.name").
		OrderBy("c.name ASC")

	slices := make([]models.PieSlice, 0)
	err := r.query(ctx, "*dashboardRepository.ExpensesByCategory", userID, between(builder, from, to), func(row sq.RowScanner) error {
		var s models.PieSlice
		if err := row.Scan(&s.Name, &s.Value); err != nil {
			return err
		}
		slices = append(slices, s)
		return nil
	})

	return slices, err
}

// MonthlyTotals sums income and expense per calendar month, labelled with
// the abbreviated English month name and ordered chronologically.
func (r *dashboardRepository) MonthlyTotals(ctx context.Context, userID int64, from, to time.Time) ([]models.MonthlyPoint, error) {
	builder := userTransactions(userID, "TO_CHAR(t.transaction_at, 'Mon') AS month", sumIncome, sumExpense).
		GroupBy("month").
		OrderBy("MIN(t.transaction_at)")

	points := make([]models.MonthlyPoint, 0)
	err := r.query(ctx, "*dashboardRepository.MonthlyTotals", userID, between(builder, from, to), func(row sq.RowScanner) error {
		var p models.MonthlyPoint
		if err := row.Scan(&p.Month, &p.Income, &p.Expense); err != nil {
			return err
		}
		points = append(points, p)
		return nil
	})

	return points, err
}

// DailyTotals sums income and expense per day. Name carries the date as
// YYYY-MM-DD; days without transactions are absent.
func (r *dashboardRepository) DailyTotals(ctx context.Context, userID int64, from, to time.Time) ([]models.DailyPoint, error) {
	builder := userTransactions(userID, "TO_CHAR(DATE(t.transaction_at), 'YYYY-MM-DD') AS day", sumIncome, sumExpense).
		GroupBy("day").
		OrderBy("day")

	points := make([]models.DailyPoint, 0)
	err := r.query(ctx, "*dashboardRepository.DailyTotals", userID, between(builder, from, to), func(row sq.RowScanner) error {
		var p models.DailyPoint
		if err := row.Scan(&p.Name, &p.Income, &p.Expense); err != nil {
			return err
		}
		points = append(points, p)
		return nil
	})

	return points, err
}

func (r *dashboardRepository) Totals(ctx context.Context, userID int64, from, to time.Time) (models.Totals, error) {
	var totals models.Totals
	builder := between(userTransactions(userID, sumIncome, sumExpense), from, to)

	err := r.query(ctx, "*dashboardRepository.Totals", userID, builder, func(row sq.RowScanner) error {
		return row.Scan(&totals.Income, &totals.Expense)
	})

	return totals, err
}

func (r *dashboardRepository) query(ctx context.Context, fn string, userID int64, builder sq.SelectBuilder, scan func(sq.RowScanner) error) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", userID).Msg("error executing dashboard query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			log.Err(err).Str("func", fn).Int64("user_id", userID).Msg("failed to scan dashboard row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
