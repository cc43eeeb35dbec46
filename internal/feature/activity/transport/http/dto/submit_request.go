// Package dto defines data transfer objects for the activity feature's HTTP transport layer.
package dto

// SubmitReq represents the request body for the /activities endpoint.
// Zero is a valid value for the kWh/km/kg fields, so they carry gte
// instead of required.
type SubmitReq struct {
	ElectricityKWh float64 `json:"electricity_kwh" binding:"gte=0"`
	VehicleType    string  `json:"vehicle_type" binding:"required,oneof=two-wheeler four-wheeler ev"`
	DistanceKm     float64 `json:"distance_km" binding:"gte=0"`
	DietType       string  `json:"diet_type" binding:"required,oneof=vegetarian non-vegetarian"`
	Meals          int     `json:"meals" binding:"required,min=1"`
	GarbageKg      float64 `json:"garbage_kg" binding:"gte=0"`
}
