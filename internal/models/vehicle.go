package models

// Overlay states for vehicles. The vehicle master data lives in the
// external fleet system; these rows only track local availability.
const (
	VehicleAvailable    = "available"
	VehicleSuggested    = "suggested"
	VehicleDispatched   = "dispatched"
	VehicleMaintenance  = "maintenance"
	VehicleOutOfService = "out_of_service"
)

// FleetVehicle is a vehicle record as the external fleet API reports it.
type FleetVehicle struct {
	ID        int64  `json:"id"`
	Name      string `json:"vehicle_name"`
	Type      string `json:"type"`
	Available int    `json:"available"`
	Status    string `json:"status"`
}

// VehicleSummary is the snapshot of a vehicle embedded in a dispatch
// record at creation time. It is not re-joined against the fleet API.
type VehicleSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"vehicle_name"`
	Type      string `json:"type"`
	Available int    `json:"available,omitempty"`
}
