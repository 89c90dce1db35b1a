package models

import (
	"time"
)

// Lifecycle states of a dispatch record. A record with status pending is
// called a suggestion; once approved (or created directly) it is a
// dispatch. Completed and cancelled are terminal and kept as audit trail.
const (
	DispatchPending   = "pending"
	DispatchActive    = "dispatched"
	DispatchEnRoute   = "en_route"
	DispatchArrived   = "arrived"
	DispatchCompleted = "completed"
	DispatchCancelled = "cancelled"
)

// Dispatch is the suggestion/dispatch state-machine record. Vehicles is
// the ordered snapshot captured at creation time, serialized to jsonb
// only at the storage boundary.
type Dispatch struct {
	ID              int64            `json:"id"`
	IncidentID      int64            `json:"incident_id"`
	UnitID          int64            `json:"unit_id"`
	Vehicles        []VehicleSummary `json:"vehicles"`
	Status          string           `json:"status"`
	DispatchedBy    *int64           `json:"dispatched_by,omitempty"`
	DispatchedAt    time.Time        `json:"dispatched_at"`
	ERNotes         string           `json:"er_notes,omitempty"`
	StatusUpdatedAt *time.Time       `json:"status_updated_at,omitempty"`
}

// IsTerminal reports whether a dispatch status allows no further
// transitions.
func IsTerminal(status string) bool {
	return status == DispatchCompleted || status == DispatchCancelled
}

// IsLive reports whether a dispatch status still holds its unit: any
// non-terminal state, including a pending suggestion.
func IsLive(status string) bool {
	switch status {
	case DispatchPending, DispatchActive, DispatchEnRoute, DispatchArrived:
		return true
	}
	return false
}

// DispatchDetails is a dispatch joined with its incident and unit, as
// returned by the read endpoints.
type DispatchDetails struct {
	Dispatch
	IncidentTitle    string      `json:"incident_title"`
	IncidentLocation string      `json:"incident_location"`
	IncidentType     string      `json:"incident_type"`
	IncidentSeverity string      `json:"incident_severity"`
	IncidentStatus   string      `json:"incident_status"`
	UnitName         string      `json:"unit_name"`
	UnitCode         string      `json:"unit_code"`
	UnitType         string      `json:"unit_type"`
	UnitStatus       string      `json:"unit_status"`
	Volunteers       []Volunteer `json:"volunteers,omitempty"`
}
