// Package entity defines the domain entities for the activity feature.
package entity

import "time"

// VehicleType is the fixed set of vehicle categories a day's travel can use.
type VehicleType string

const (
	VehicleTwoWheeler  VehicleType = "two-wheeler"
	VehicleFourWheeler VehicleType = "four-wheeler"
	VehicleEV          VehicleType = "ev"
)

// DietType is the fixed set of diet categories for a day's meals.
type DietType string

const (
	DietVegetarian    DietType = "vegetarian"
	DietNonVegetarian DietType = "non-vegetarian"
)

// ActivityRecord is one day's worth of an account's logged consumption,
// travel, diet and waste inputs. Records are immutable once written and
// unique per (account, date).
type ActivityRecord struct {
	ID uint `gorm:"primaryKey"`

	// AccountID references the owning account.
	AccountID uint `gorm:"not null;uniqueIndex:uidx_activity_account_date,priority:1"`

	// Date is the calendar day the record covers, stored at UTC midnight.
	Date time.Time `gorm:"type:date;not null;uniqueIndex:uidx_activity_account_date,priority:2"`

	// ElectricityKWh is the day's electricity consumption in kWh.
	ElectricityKWh float64 `gorm:"not null"`

	// VehicleType is the vehicle category used for the day's travel.
	VehicleType VehicleType `gorm:"size:32;not null"`

	// DistanceKm is the distance traveled in km.
	DistanceKm float64 `gorm:"not null"`

	// DietType is the day's diet category.
	DietType DietType `gorm:"size:32;not null"`

	// Meals is the number of meals eaten (at least 1).
	Meals int `gorm:"not null"`

	// GarbageKg is the garbage generated in kg.
	GarbageKg float64 `gorm:"not null"`

	CreatedAt time.Time
}

// TableName pins the storage table name.
func (ActivityRecord) TableName() string {
	return "activity_records"
}

// ValidVehicleType reports whether v is one of the fixed vehicle categories.
func ValidVehicleType(v VehicleType) bool {
	switch v {
	case VehicleTwoWheeler, VehicleFourWheeler, VehicleEV:
		return true
	}
	return false
}

// ValidDietType reports whether d is one of the fixed diet categories.
func ValidDietType(d DietType) bool {
	switch d {
	case DietVegetarian, DietNonVegetarian:
		return true
	}
	return false
}
