package models

import (
	"time"
)

// Unit types. The scorer's lookup tables are keyed by these values.
const (
	UnitTypeFire      = "Fire"
	UnitTypeRescue    = "Rescue"
	UnitTypeEMS       = "EMS"
	UnitTypeLogistics = "Logistics"
	UnitTypeCommand   = "Command"
)

// Operational states of a unit.
const (
	UnitAvailable   = "available"
	UnitDispatched  = "dispatched"
	UnitUnavailable = "unavailable"
	UnitMaintenance = "maintenance"
)

// Unit is a response team that can be assigned to at most one
// non-terminal dispatch at a time. CurrentDispatchID is a soft hold
// back-reference, not a capacity lock: it blocks duplicate suggestions
// but the unit stays available until a suggestion is approved.
type Unit struct {
	ID                int64      `json:"id"`
	Name              string     `json:"unit_name"`
	Code              string     `json:"unit_code"`
	Type              string     `json:"unit_type"`
	Location          string     `json:"location,omitempty"`
	Capacity          int        `json:"capacity"`
	Status            string     `json:"status"`
	CurrentStatus     string     `json:"current_status"`
	CurrentDispatchID *int64     `json:"current_dispatch_id,omitempty"`
	LastStatusChange  *time.Time `json:"last_status_change,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
