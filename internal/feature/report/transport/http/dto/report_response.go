// Package dto defines data transfer objects for the report HTTP API.
package dto

// ReportRow is one enriched row of a period report.
type ReportRow struct {
	Date           string  `json:"date"`
	ElectricityKWh float64 `json:"electricity_kwh"`
	VehicleType    string  `json:"vehicle_type"`
	DistanceKm     float64 `json:"distance_km"`
	DietType       string  `json:"diet_type"`
	Meals          int     `json:"meals"`
	GarbageKg      float64 `json:"garbage_kg"`
	EstimateKg     float64 `json:"co2_kg"`
	BelowKg        float64 `json:"below_threshold_kg"`
	AboveKg        float64 `json:"above_threshold_kg"`
}

// ReportResponse is the body returned by GET /reports/:period.
// Rows is empty (never null) when the account has no data in the window.
type ReportResponse struct {
	Period      string      `json:"period"`
	ThresholdKg float64     `json:"threshold_kg"`
	Rows        []ReportRow `json:"rows"`
}
