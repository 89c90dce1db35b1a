package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/metrics"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/notify"
)

// UpdateStatus advances an active dispatch through its operational
// states. Notes accumulate as a timestamped audit log. Only the
// terminal states release resources:
//
//	completed: close the incident, free unit and vehicles
//	cancelled: free unit and vehicles, incident left untouched
func (s *dispatchService) UpdateStatus(ctx context.Context, dispatchID int64, newStatus, notes string) error {
	if !validDispatchStatus(newStatus) {
		return ErrInvalidStatus
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "UpdateStatus",
		"dispatch_id": dispatchID,
		"new_status":  newStatus,
	})
	log.Info("Updating dispatch status")

	var incident *models.Incident
	var unit *models.Unit
	err := s.store.WithTransaction(ctx, func(tx Tx) error {
		dispatch, err := tx.GetDispatch(ctx, dispatchID)
		if err != nil {
			return fmt.Errorf("could not load dispatch: %w", err)
		}
		if dispatch == nil {
			return ErrDispatchNotFound
		}

		if models.IsTerminal(dispatch.Status) {
			return ErrInvalidTransition
		}
		if s.cfg != nil && s.cfg.StrictTransitions && !canTransition(dispatch.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, dispatch.Status, newStatus)
		}

		if err := tx.UpdateDispatchStatus(ctx, dispatch.ID, newStatus, notes); err != nil {
			return fmt.Errorf("could not update dispatch status: %w", err)
		}

		if !models.IsTerminal(newStatus) {
			return nil
		}

		// Terminal: release resources in lock order.
		incident, err = tx.GetIncidentForUpdate(ctx, dispatch.IncidentID)
		if err != nil {
			return fmt.Errorf("could not load incident: %w", err)
		}
		unit, err = tx.GetUnitForUpdate(ctx, dispatch.UnitID)
		if err != nil {
			return fmt.Errorf("could not load unit: %w", err)
		}

		if newStatus == models.DispatchCompleted && incident != nil {
			if err := tx.CloseIncident(ctx, incident.ID); err != nil {
				return fmt.Errorf("could not close incident: %w", err)
			}
		}
		if unit != nil {
			if err := tx.SetUnitStatus(ctx, unit.ID, models.UnitAvailable, nil); err != nil {
				return fmt.Errorf("could not release unit: %w", err)
			}
		}
		if err := tx.ReleaseVehicles(ctx, dispatch.ID); err != nil {
			return fmt.Errorf("could not release vehicles: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to update dispatch status")
		return err
	}

	metrics.StatusTransitions.WithLabelValues(newStatus).Inc()

	if models.IsTerminal(newStatus) && incident != nil && unit != nil {
		eventType := notify.EventDispatchCompleted
		if newStatus == models.DispatchCancelled {
			eventType = notify.EventDispatchCancelled
		}
		s.publishEvent(ctx, notify.DispatchEvent{
			Type:          eventType,
			DispatchID:    dispatchID,
			IncidentID:    incident.ID,
			IncidentTitle: incident.Title,
			Location:      incident.Location,
			Severity:      incident.Severity,
			UnitID:        unit.ID,
			UnitName:      unit.Name,
			UnitCode:      unit.Code,
			Message:       fmt.Sprintf("Unit %s released: dispatch for %s is %s", unit.Code, incident.Title, newStatus),
		})
	}

	log.Info("Dispatch status updated")
	return nil
}
