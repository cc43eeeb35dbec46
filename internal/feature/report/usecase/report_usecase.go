package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carbon_backend/internal/feature/activity/domain/entity"
)

// Period selects the date window of a report relative to today.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ErrUnknownPeriod is returned for a period keyword outside the fixed set.
var ErrUnknownPeriod = errors.New("unknown report period")

// ParsePeriod validates a period keyword.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
}

// lookbackDays maps each range period to its inclusive lower bound in
// days before today. Daily is not listed: it matches today exactly.
var lookbackDays = map[Period]int{
	PeriodWeekly:  7,
	PeriodMonthly: 30,
	PeriodYearly:  365,
}

// Row is one enriched report row: the raw inputs of a day plus the
// derived estimate and its threshold split, ready for tabular display
// and a stacked-bar series.
type Row struct {
	Date           time.Time
	ElectricityKWh float64
	VehicleType    entity.VehicleType
	DistanceKm     float64
	DietType       entity.DietType
	Meals          int
	GarbageKg      float64
	EstimateKg     float64
	BelowKg        float64
	AboveKg        float64
}

// ActivityRepository abstracts the read layer for activity records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ActivityRepository interface {
	// FindOnDate returns the account's records whose date equals the given day.
	FindOnDate(ctx context.Context, accountID uint, day time.Time) ([]entity.ActivityRecord, error)

	// FindSince returns the account's records with date >= from, ordered by date ascending.
	FindSince(ctx context.Context, accountID uint, from time.Time) ([]entity.ActivityRecord, error)
}

// reportUsecase implements the period reporting aggregator.
type reportUsecase struct {
	activities ActivityRepository
	now        func() time.Time
}

// NewReportUsecase creates a new reportUsecase instance.
func NewReportUsecase(activities ActivityRepository) *reportUsecase {
	return &reportUsecase{activities: activities, now: time.Now}
}

// Report fetches the account's records in the period's window, applies
// the estimate engine with the batch meal factor, and splits each
// estimate at the daily threshold. An empty window yields an empty
// slice, not an error.
func (u *reportUsecase) Report(ctx context.Context, accountID uint, period Period) ([]Row, error) {
	today := truncateToDay(u.now())

	var (
		records []entity.ActivityRecord
		err     error
	)
	if period == PeriodDaily {
		records, err = u.activities.FindOnDate(ctx, accountID, today)
	} else {
		days, ok := lookbackDays[period]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
		}
		records, err = u.activities.FindSince(ctx, accountID, today.AddDate(0, 0, -days))
	}
	if err != nil {
		return nil, err
	}

	mealFactor := BatchMealFactor(records)
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		est := EstimateCO2Kg(r, mealFactor)
		below, above := SplitThreshold(est)
		rows = append(rows, Row{
			Date:           r.Date,
			ElectricityKWh: r.ElectricityKWh,
			VehicleType:    r.VehicleType,
			DistanceKm:     r.DistanceKm,
			DietType:       r.DietType,
			Meals:          r.Meals,
			GarbageKg:      r.GarbageKg,
			EstimateKg:     est,
			BelowKg:        below,
			AboveKg:        above,
		})
	}
	return rows, nil
}

// truncateToDay normalizes t to its calendar day at UTC midnight,
// matching how activity dates are stored.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
