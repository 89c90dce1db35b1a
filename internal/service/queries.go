package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/matching"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// GetDispatch returns a dispatch joined with its incident, unit and
// assigned volunteers.
func (s *dispatchService) GetDispatch(ctx context.Context, id int64) (*models.DispatchDetails, error) {
	details, err := s.store.GetDispatchDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not load dispatch: %w", err)
	}
	if details == nil {
		return nil, ErrDispatchNotFound
	}

	volunteers, err := s.store.ListUnitVolunteers(ctx, details.UnitID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load unit volunteers: %w", err)
	}
	details.Volunteers = volunteers
	return details, nil
}

// ListPendingSuggestions feeds the approval panel.
func (s *dispatchService) ListPendingSuggestions(ctx context.Context) ([]models.DispatchDetails, error) {
	suggestions, err := s.store.ListPendingSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list pending suggestions: %w", err)
	}
	return suggestions, nil
}

// ListActiveDispatches returns non-pending dispatches ordered by
// lifecycle stage, then recency.
func (s *dispatchService) ListActiveDispatches(ctx context.Context) ([]models.DispatchDetails, error) {
	dispatches, err := s.store.ListActiveDispatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active dispatches: %w", err)
	}
	return dispatches, nil
}

// ListAvailableUnits returns active units that are available and not
// held by a pending suggestion.
func (s *dispatchService) ListAvailableUnits(ctx context.Context) ([]models.UnitSummary, error) {
	units, err := s.store.ListAvailableUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list available units: %w", err)
	}
	return units, nil
}

// ListVehiclesForUnit returns free fleet vehicles, filtered to the
// unit's keyword set when a unit is given. Fleet failures degrade to
// an empty list.
func (s *dispatchService) ListVehiclesForUnit(ctx context.Context, unitID int64) ([]models.FleetVehicle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "ListVehiclesForUnit",
		"unit_id": unitID,
	})

	vehicles := s.availableVehicles(ctx, log)
	if unitID == 0 {
		return vehicles, nil
	}

	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load unit: %w", err)
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}

	filtered := make([]models.FleetVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if matching.MatchesUnitType(unit.Type, v) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// ListVolunteersForUnit returns the approved, actively assigned
// volunteers of a unit.
func (s *dispatchService) ListVolunteersForUnit(ctx context.Context, unitID int64) ([]models.Volunteer, error) {
	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load unit: %w", err)
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}

	volunteers, err := s.store.ListUnitVolunteers(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list unit volunteers: %w", err)
	}
	return volunteers, nil
}
