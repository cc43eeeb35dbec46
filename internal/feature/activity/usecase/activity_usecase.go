package usecase

import (
	"context"
	"fmt"
	"time"

	"carbon_backend/internal/feature/activity/domain/entity"
)

// ActivityRepository abstracts the persistence layer for activity records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ActivityRepository interface {
	// Create persists a new activity record.
	// It returns ErrAlreadySubmittedToday if a record for the same (account, date) already exists.
	Create(ctx context.Context, rec *entity.ActivityRecord) error

	// ExistsOnDate reports whether the account already has a record for the given calendar day.
	ExistsOnDate(ctx context.Context, accountID uint, day time.Time) (bool, error)
}

// SubmitInput carries the raw fields of one day's submission.
type SubmitInput struct {
	ElectricityKWh float64
	VehicleType    entity.VehicleType
	DistanceKm     float64
	DietType       entity.DietType
	Meals          int
	GarbageKg      float64
}

// activityUsecase implements the daily submission logic.
type activityUsecase struct {
	activities ActivityRepository
	now        func() time.Time
}

// NewActivityUsecase creates a new activityUsecase instance.
func NewActivityUsecase(activities ActivityRepository) *activityUsecase {
	return &activityUsecase{activities: activities, now: time.Now}
}

// validateInput checks the field constraints of a submission.
func validateInput(in SubmitInput) error {
	if in.ElectricityKWh < 0 {
		return fmt.Errorf("%w: electricity_kwh must be non-negative", ErrInvalidInput)
	}
	if in.DistanceKm < 0 {
		return fmt.Errorf("%w: distance_km must be non-negative", ErrInvalidInput)
	}
	if in.GarbageKg < 0 {
		return fmt.Errorf("%w: garbage_kg must be non-negative", ErrInvalidInput)
	}
	if in.Meals < 1 {
		return fmt.Errorf("%w: meals must be at least 1", ErrInvalidInput)
	}
	if !entity.ValidVehicleType(in.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle_type %q", ErrInvalidInput, in.VehicleType)
	}
	if !entity.ValidDietType(in.DietType) {
		return fmt.Errorf("%w: unknown diet_type %q", ErrInvalidInput, in.DietType)
	}
	return nil
}

// Submit records one day's activity for an account, stamped with today's date.
// A second submission on the same calendar day fails with ErrAlreadySubmittedToday
// and writes nothing. The existence check runs before the insert; the unique index
// on (account_id, date) closes the race between concurrent submissions.
func (u *activityUsecase) Submit(ctx context.Context, accountID uint, in SubmitInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	today := Today(u.now())
	exists, err := u.activities.ExistsOnDate(ctx, accountID, today)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadySubmittedToday
	}

	rec := &entity.ActivityRecord{
		AccountID:      accountID,
		Date:           today,
		ElectricityKWh: in.ElectricityKWh,
		VehicleType:    in.VehicleType,
		DistanceKm:     in.DistanceKm,
		DietType:       in.DietType,
		Meals:          in.Meals,
		GarbageKg:      in.GarbageKg,
	}
	return u.activities.Create(ctx, rec)
}

// Today truncates t to its calendar day, normalized to UTC midnight so
// date equality and range queries behave the same on every driver.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
