package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// weekdayLabels are indexed by time.Weekday.
var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

const dayLayout = "2006-01-02"

type dashboardService struct {
	dashboard store.DashboardRepository

	now func() time.Time

	logger *logger.Logger
}

func NewDashboardService(dashboard store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{dashboard: dashboard, now: time.Now, logger: logger}
}

// GetDashboard assembles the dashboard for the current month, the current
// year and the last seven days, today included. The aggregate queries run
// concurrently.
func (s *dashboardService) GetDashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	now := s.now()
	loc := now.Location()

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	yearEnd := yearStart.AddDate(1, 0, 0)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekStart := today.AddDate(0, 0, -6)
	weekEnd := today.AddDate(0, 0, 1)

	var (
		pie     []models.PieSlice
		line    []models.MonthlyPoint
		daily   []models.DailyPoint
		month   models.Totals
		allTime models.Totals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pie, err = s.dashboard.ExpensesByCategory(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		line, err = s.dashboard.MonthlyTotals(gctx, userID, yearStart, yearEnd)
		return err
	})
	g.Go(func() (err error) {
		daily, err = s.dashboard.DailyTotals(gctx, userID, weekStart, weekEnd)
		return err
	})
	g.Go(func() (err error) {
		month, err = s.dashboard.Totals(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		allTime, err = s.dashboard.Totals(gctx, userID, time.Time{}, time.Time{})
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("dashboard aggregation failed")
		return models.Dashboard{}, fmt.Errorf("dashboard aggregation failed: %w", err)
	}

	balance := round2(allTime.Income - allTime.Expense)

	return models.Dashboard{
		PieData:         roundSlices(pie),
		LineData:        roundMonths(line),
		BarData:         lastSevenDays(weekStart, daily),
		MonthlyIncome:   round2(month.Income),
		MonthlyExpenses: round2(month.Expense),
		TotalBalance:    balance,
		TotalInAccounts: balance,
	}, nil
}

// lastSevenDays returns one point per day starting at from, labeled with
// the weekday. Days without transactions are zero.
func lastSevenDays(from time.Time, daily []models.DailyPoint) []models.DailyPoint {
	byDay := make(map[string]models.DailyPoint, len(daily))
	for _, p := range daily {
		byDay[p.Name] = p
	}

	points := make([]models.DailyPoint, 0, 7)
	for i := range 7 {
		day := from.AddDate(0, 0, i)
		p := byDay[day.Format(dayLayout)]
		points = append(points, models.DailyPoint{
			Name:    weekdayLabels[day.Weekday()],
			Income:  round2(p.Income),
			Expense: round2(p.Expense),
		})
	}
	return points
}

func roundSlices(slices []models.PieSlice) []models.PieSlice {
	out := make([]models.PieSlice, 0, len(slices))
	for _, s := range slices {
		out = append(out, models.PieSlice{Name: s.Name, Value: round2(s.Value)})
	}
	return out
}

func roundMonths(points []models.MonthlyPoint) []models.MonthlyPoint {
	out := make([]models.MonthlyPoint, 0, len(points))
	for _, p := range points {
		out = append(out, models.MonthlyPoint{Month: p.Month, Income: round2(p.Income), Expense: round2(p.Expense)})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
