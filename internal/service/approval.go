package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/metrics"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/notify"
)

// Decide approves or rejects a pending suggestion. Approval is the
// only place a unit actually becomes unavailable; rejection returns
// every held resource to the pool.
func (s *dispatchService) Decide(ctx context.Context, req DecisionRequest) (string, error) {
	if req.Action != ActionApprove && req.Action != ActionReject {
		return "", ErrInvalidAction
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":       "dispatch",
		"method":        "Decide",
		"suggestion_id": req.SuggestionID,
		"action":        req.Action,
	})
	log.Info("Processing suggestion decision")

	var incident *models.Incident
	var unit *models.Unit
	err := s.store.WithTransaction(ctx, func(tx Tx) error {
		suggestion, err := tx.GetDispatch(ctx, req.SuggestionID)
		if err != nil {
			return fmt.Errorf("could not load suggestion: %w", err)
		}
		if suggestion == nil {
			return ErrSuggestionNotFound
		}

		// Lock order: incident first, then unit.
		incident, err = tx.GetIncidentForUpdate(ctx, suggestion.IncidentID)
		if err != nil {
			return fmt.Errorf("could not load incident: %w", err)
		}
		if incident == nil {
			return ErrIncidentNotFound
		}
		unit, err = tx.GetUnitForUpdate(ctx, suggestion.UnitID)
		if err != nil {
			return fmt.Errorf("could not load unit: %w", err)
		}
		if unit == nil {
			return ErrUnitNotFound
		}

		if req.Action == ActionApprove {
			if err := tx.UpdateDispatchStatus(ctx, suggestion.ID, models.DispatchActive, req.Notes); err != nil {
				return fmt.Errorf("could not activate suggestion: %w", err)
			}
			if err := tx.SetIncidentDispatch(ctx, incident.ID, models.DispatchStatusProcessing, &suggestion.ID); err != nil {
				return fmt.Errorf("could not update incident: %w", err)
			}
			if err := tx.MarkIncidentResponded(ctx, incident.ID, req.ApprovedBy); err != nil {
				return fmt.Errorf("could not mark incident responded: %w", err)
			}
			if err := tx.SetUnitStatus(ctx, unit.ID, models.UnitDispatched, &suggestion.ID); err != nil {
				return fmt.Errorf("could not dispatch unit: %w", err)
			}
			if err := tx.MarkVehiclesDispatched(ctx, suggestion.ID); err != nil {
				return fmt.Errorf("could not dispatch vehicles: %w", err)
			}
			return nil
		}

		// reject: the unit was never marked unavailable, only clear the
		// hold; the incident re-enters the dispatch pool.
		if err := tx.UpdateDispatchStatus(ctx, suggestion.ID, models.DispatchCancelled, req.Notes); err != nil {
			return fmt.Errorf("could not cancel suggestion: %w", err)
		}
		if err := tx.SetIncidentDispatch(ctx, incident.ID, models.DispatchStatusForDispatch, nil); err != nil {
			return fmt.Errorf("could not reset incident: %w", err)
		}
		if err := tx.SetUnitStatus(ctx, unit.ID, models.UnitAvailable, nil); err != nil {
			return fmt.Errorf("could not clear unit hold: %w", err)
		}
		if err := tx.ReleaseVehicles(ctx, suggestion.ID); err != nil {
			return fmt.Errorf("could not release vehicles: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to process decision")
		return "", err
	}

	metrics.SuggestionDecisions.WithLabelValues(req.Action).Inc()

	if req.Action == ActionApprove {
		count, err := s.store.CountUnitVolunteers(ctx, unit.ID)
		if err != nil {
			log.WithError(err).Warn("Failed to count unit volunteers")
		}
		s.publishEvent(ctx, notify.DispatchEvent{
			Type:           notify.EventDispatchApproved,
			DispatchID:     req.SuggestionID,
			IncidentID:     incident.ID,
			IncidentTitle:  incident.Title,
			Location:       incident.Location,
			Severity:       incident.Severity,
			UnitID:         unit.ID,
			UnitName:       unit.Name,
			UnitCode:       unit.Code,
			VolunteerCount: count,
			Message: fmt.Sprintf("DISPATCH ALERT: Unit %s has been dispatched to: %s at %s. Severity: %s",
				unit.Code, incident.Title, incident.Location, incident.Severity),
		})
		log.Info("Suggestion approved and activated")
		return "Dispatch approved and activated", nil
	}

	log.Info("Suggestion rejected, resources released")
	return "Suggestion rejected and resources made available", nil
}
