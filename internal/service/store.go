package service

import (
	"context"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// Store is the persistence contract of the dispatch workflows. Reads
// outside a transaction serve the list/detail endpoints; every
// multi-row mutation goes through WithTransaction so that either all
// rows change together or none do.
//
// Row-lookup methods return (nil, nil) when the row does not exist; the
// workflows translate that into their domain NotFound errors.
type Store interface {
	// WithTransaction runs fn inside one transaction, committing when
	// fn returns nil and rolling every write back otherwise.
	WithTransaction(ctx context.Context, fn func(tx Tx) error) error

	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	GetUnit(ctx context.Context, id int64) (*models.Unit, error)
	GetDispatchDetails(ctx context.Context, id int64) (*models.DispatchDetails, error)

	// ListAvailableUnits returns active units with current_status
	// available and no pending suggestion, with volunteer headcounts.
	ListAvailableUnits(ctx context.Context) ([]models.UnitSummary, error)
	ListPendingSuggestions(ctx context.Context) ([]models.DispatchDetails, error)
	ListActiveDispatches(ctx context.Context) ([]models.DispatchDetails, error)

	CountUnitVolunteers(ctx context.Context, unitID int64) (int, error)
	ListUnitVolunteers(ctx context.Context, unitID int64) ([]models.Volunteer, error)

	// HeldVehicleIDs returns ids of vehicles whose overlay status is
	// suggested or dispatched.
	HeldVehicleIDs(ctx context.Context) ([]int64, error)
}

// Tx exposes the row-level operations available inside a transaction.
// Locking reads follow the fixed order incident -> unit -> vehicles.
type Tx interface {
	GetIncidentForUpdate(ctx context.Context, id int64) (*models.Incident, error)
	GetUnitForUpdate(ctx context.Context, id int64) (*models.Unit, error)
	GetDispatch(ctx context.Context, id int64) (*models.Dispatch, error)

	// UnitHasLiveDispatch reports whether any non-terminal dispatch
	// references the unit.
	UnitHasLiveDispatch(ctx context.Context, unitID int64) (bool, error)
	// IncidentHasPendingSuggestion reports whether the incident has a
	// pending suggestion.
	IncidentHasPendingSuggestion(ctx context.Context, incidentID int64) (bool, error)
	// IncidentHasActiveDispatch reports whether the incident has a
	// dispatch in dispatched or en_route state.
	IncidentHasActiveDispatch(ctx context.Context, incidentID int64) (bool, error)

	InsertDispatch(ctx context.Context, d *models.Dispatch) (int64, error)
	UpdateDispatchStatus(ctx context.Context, id int64, status, notes string) error
	AppendDispatchNotes(ctx context.Context, id int64, notes string) error
	SetDispatchVehicles(ctx context.Context, id int64, vehicles []models.VehicleSummary) error

	SetIncidentDispatch(ctx context.Context, incidentID int64, dispatchStatus string, dispatchID *int64) error
	MarkIncidentResponded(ctx context.Context, incidentID int64, respondedBy *int64) error
	CloseIncident(ctx context.Context, incidentID int64) error

	SetUnitStatus(ctx context.Context, unitID int64, currentStatus string, dispatchID *int64) error

	// HoldVehicle upserts the overlay row to the given held status with
	// unit/dispatch back-references. It reports false without writing
	// when the vehicle is already held by another dispatch.
	HoldVehicle(ctx context.Context, v models.VehicleSummary, unitID, dispatchID int64, status string) (bool, error)
	// MarkVehiclesDispatched promotes every overlay row held by the
	// dispatch to dispatched.
	MarkVehiclesDispatched(ctx context.Context, dispatchID int64) error
	// ReleaseVehicles resets every overlay row tied to the dispatch to
	// available and clears its back-references.
	ReleaseVehicles(ctx context.Context, dispatchID int64) error
}

// FleetClient reads available vehicles from the external fleet API.
// Failures degrade to an empty list at the engine boundary, never to a
// caller-visible error.
type FleetClient interface {
	AvailableVehicles(ctx context.Context) ([]models.FleetVehicle, error)
}
