package v1

import (
	"time"

	"github.com/jampzdev/dispatch_coordination_system/internal/matching"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// Every response carries the success flag and a human-readable message;
// callers treat the flag, not the HTTP status, as authoritative.

// ErrorResponse is the body of every failed request.
// @Description Error envelope returned on any failure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VehicleRequest is a vehicle reference inside a suggestion or dispatch
// request.
// @Description Vehicle proposed for an assignment
type VehicleRequest struct {
	ID   int64  `json:"id" validate:"required,gt=0"`
	Name string `json:"vehicle_name" validate:"required"`
	Type string `json:"type,omitempty"`
}

// RecommendRequest asks for ranked unit recommendations for an incident.
// @Description Recommendation request
type RecommendRequest struct {
	IncidentID int64 `json:"incident_id" validate:"required,gt=0"`
}

// RecommendResponse carries the ranked candidates with reasoning.
// @Description Ranked unit recommendations for an incident
type RecommendResponse struct {
	Success         bool                 `json:"success"`
	Message         string               `json:"message"`
	Incident        *models.Incident     `json:"incident"`
	Recommendations []matching.Candidate `json:"recommendations"`
	AIReasoning     string               `json:"ai_reasoning"`
	AIConfidence    int                  `json:"ai_confidence"`
}

// CreateSuggestionRequest proposes a unit/vehicle assignment for review.
// @Description Suggestion creation request
type CreateSuggestionRequest struct {
	IncidentID  int64            `json:"incident_id" validate:"required,gt=0"`
	UnitID      int64            `json:"unit_id" validate:"required,gt=0"`
	UnitName    string           `json:"unit_name,omitempty"`
	UnitCode    string           `json:"unit_code,omitempty"`
	Vehicles    []VehicleRequest `json:"vehicles" validate:"dive"`
	SuggestedBy *int64           `json:"suggested_by,omitempty"`
	MatchScore  float64          `json:"match_score,omitempty"`
	Reasoning   string           `json:"reasoning,omitempty"`
}

// IncidentRef is a short incident reference in workflow responses.
// @Description Incident reference
type IncidentRef struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// UnitRef is a short unit reference in workflow responses.
// @Description Unit reference
type UnitRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CreateSuggestionResponse reports the stored suggestion.
// @Description Result of creating a suggestion
type CreateSuggestionResponse struct {
	Success       bool                    `json:"success"`
	Message       string                  `json:"message"`
	SuggestionID  int64                   `json:"suggestion_id"`
	Incident      IncidentRef             `json:"incident"`
	Unit          UnitRef                 `json:"unit"`
	VehicleCount  int                     `json:"vehicle_count"`
	VehiclesSaved []models.VehicleSummary `json:"vehicles_saved"`
}

// DecisionRequest approves or rejects a pending suggestion.
// @Description Suggestion decision request
type DecisionRequest struct {
	Action       string `json:"action" validate:"required,oneof=approve reject"`
	SuggestionID int64  `json:"suggestion_id" validate:"required,gt=0"`
	ERNotes      string `json:"er_notes,omitempty"`
	ApprovedBy   *int64 `json:"approved_by,omitempty"`
}

// DecisionResponse reports the decision outcome.
// @Description Result of a suggestion decision
type DecisionResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SuggestionID int64  `json:"suggestion_id"`
	Action       string `json:"action"`
}

// DirectDispatchRequest creates an active dispatch without the
// suggestion step.
// @Description Manual dispatch request
type DirectDispatchRequest struct {
	IncidentID   int64            `json:"incident_id" validate:"required,gt=0"`
	UnitID       int64            `json:"unit_id" validate:"required,gt=0"`
	Vehicles     []VehicleRequest `json:"vehicles" validate:"dive"`
	DispatchedBy *int64           `json:"dispatched_by,omitempty"`
}

// DirectDispatchResponse reports the created dispatch.
// @Description Result of a manual dispatch
type DirectDispatchResponse struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	DispatchID     int64       `json:"dispatch_id"`
	Incident       IncidentRef `json:"incident"`
	Unit           UnitRef     `json:"unit"`
	VolunteerCount int         `json:"volunteer_count"`
}

// UpdateStatusRequest moves a dispatch to a new lifecycle state.
// @Description Dispatch status update request
type UpdateStatusRequest struct {
	NewStatus string `json:"new_status" validate:"required"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateVehiclesRequest replaces the vehicle assignment of a dispatch.
// @Description Dispatch vehicle edit request
type UpdateVehiclesRequest struct {
	Vehicles []VehicleRequest `json:"vehicles" validate:"dive"`
}

// MessageResponse is the generic success envelope.
// @Description Generic success response
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DispatchResponse is a dispatch joined with incident and unit context.
// @Description Dispatch details
type DispatchResponse struct {
	Success  bool                    `json:"success"`
	Message  string                  `json:"message"`
	Dispatch *models.DispatchDetails `json:"dispatch"`
}

// DispatchListResponse is a list of dispatches or suggestions.
// @Description Dispatch list
type DispatchListResponse struct {
	Success    bool                     `json:"success"`
	Message    string                   `json:"message"`
	Dispatches []models.DispatchDetails `json:"dispatches"`
	Count      int                      `json:"count"`
}

// UnitListResponse lists available units with volunteer headcounts.
// @Description Available units
type UnitListResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Units   []models.UnitSummary `json:"units"`
	Count   int                  `json:"count"`
}

// VehicleListResponse lists free fleet vehicles.
// @Description Available vehicles
type VehicleListResponse struct {
	Success  bool                  `json:"success"`
	Message  string                `json:"message"`
	Vehicles []models.FleetVehicle `json:"vehicles"`
	Count    int                   `json:"count"`
}

// VolunteerListResponse lists the approved volunteers of a unit.
// @Description Unit volunteers
type VolunteerListResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Volunteers []models.Volunteer `json:"volunteers"`
	Count      int                `json:"count"`
}

// HealthResponse reports service liveness.
// @Description Health status
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
