package models

import (
	"time"
)

// Emergency categories recognized by the match scorer.
const (
	EmergencyFire    = "fire"
	EmergencyMedical = "medical"
	EmergencyRescue  = "rescue"
	EmergencyOther   = "other"
)

// Coarse dispatch pipeline states of an incident.
const (
	DispatchStatusForDispatch = "for_dispatch"
	DispatchStatusProcessing  = "processing"
	DispatchStatusResponded   = "responded"
	DispatchStatusClosed      = "closed"
)

// Incident is an emergency call waiting for (or undergoing) a response.
// Incidents are created by intake; the dispatch workflows only move their
// dispatch_status and back-reference to the active dispatch.
type Incident struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	EmergencyType  string     `json:"emergency_type"`
	RescueCategory string     `json:"rescue_category,omitempty"`
	Severity       string     `json:"severity"`
	CallerName     string     `json:"caller_name,omitempty"`
	CallerPhone    string     `json:"caller_phone,omitempty"`
	Status         string     `json:"status"`
	DispatchStatus string     `json:"dispatch_status"`
	DispatchID     *int64     `json:"dispatch_id,omitempty"`
	RespondedBy    *int64     `json:"responded_by,omitempty"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
