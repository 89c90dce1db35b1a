package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/config"
	"github.com/jampzdev/dispatch_coordination_system/internal/matching"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/notify"
)

// Recommendation is the ranked answer to "which unit should respond to
// this incident".
type Recommendation struct {
	Incident   *models.Incident     `json:"incident"`
	Candidates []matching.Candidate `json:"recommendations"`
	Reasoning  string               `json:"ai_reasoning"`
	Confidence int                  `json:"ai_confidence"`
}

// CreateSuggestionRequest carries the operator's proposed assignment.
type CreateSuggestionRequest struct {
	IncidentID  int64
	UnitID      int64
	Vehicles    []models.VehicleSummary
	SuggestedBy *int64
	Notes       string
}

// SuggestionResult reports what was persisted for a new suggestion.
type SuggestionResult struct {
	SuggestionID  int64
	Incident      *models.Incident
	Unit          *models.Unit
	VehiclesSaved []models.VehicleSummary
}

// DecisionRequest is an approve/reject call on a pending suggestion.
type DecisionRequest struct {
	SuggestionID int64
	Action       string
	Notes        string
	ApprovedBy   *int64
}

// Decision actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// DirectDispatchRequest bypasses the suggestion/approval flow and
// creates an active dispatch immediately.
type DirectDispatchRequest struct {
	IncidentID   int64
	UnitID       int64
	Vehicles     []models.VehicleSummary
	DispatchedBy *int64
}

// DirectDispatchResult reports a manual dispatch.
type DirectDispatchResult struct {
	DispatchID     int64
	Incident       *models.Incident
	Unit           *models.Unit
	VolunteerCount int
}

// DispatchService is the business-logic contract for dispatch
// coordination.
type DispatchService interface {
	Recommend(ctx context.Context, incidentID int64) (*Recommendation, error)
	CreateSuggestion(ctx context.Context, req CreateSuggestionRequest) (*SuggestionResult, error)
	Decide(ctx context.Context, req DecisionRequest) (string, error)
	DirectDispatch(ctx context.Context, req DirectDispatchRequest) (*DirectDispatchResult, error)
	UpdateStatus(ctx context.Context, dispatchID int64, newStatus, notes string) error
	UpdateVehicles(ctx context.Context, dispatchID int64, vehicles []models.VehicleSummary) error
	GetDispatch(ctx context.Context, id int64) (*models.DispatchDetails, error)
	ListPendingSuggestions(ctx context.Context) ([]models.DispatchDetails, error)
	ListActiveDispatches(ctx context.Context) ([]models.DispatchDetails, error)
	ListAvailableUnits(ctx context.Context) ([]models.UnitSummary, error)
	ListVehiclesForUnit(ctx context.Context, unitID int64) ([]models.FleetVehicle, error)
	ListVolunteersForUnit(ctx context.Context, unitID int64) ([]models.Volunteer, error)
}

type dispatchService struct {
	store     Store
	fleet     FleetClient
	scorer    *matching.Scorer
	publisher notify.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewDispatchService(store Store, fleet FleetClient, scorer *matching.Scorer, publisher notify.Publisher, logger *logrus.Logger, cfg *config.Config) DispatchService {
	return &dispatchService{
		store:     store,
		fleet:     fleet,
		scorer:    scorer,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// publishEvent enqueues a volunteer alert. Best-effort: failures are
// logged and swallowed, a lost alert never fails the workflow.
func (s *dispatchService) publishEvent(ctx context.Context, event notify.DispatchEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"event_type":  event.Type,
			"dispatch_id": event.DispatchID,
		}).Warn("Failed to publish dispatch alert")
	}
}
