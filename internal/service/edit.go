package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// UpdateVehicles replaces the vehicle set of an existing dispatch or
// suggestion without touching its lifecycle state. Previously held
// vehicles are released first, then the new set is held.
//
// The original system always marked the new vehicles suggested even on
// an already-active dispatch; EditFollowsLifecycle opts into marking
// them dispatched instead when the dispatch has left pending.
func (s *dispatchService) UpdateVehicles(ctx context.Context, dispatchID int64, vehicles []models.VehicleSummary) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "UpdateVehicles",
		"dispatch_id": dispatchID,
	})
	log.Info("Updating dispatch vehicles")

	err := s.store.WithTransaction(ctx, func(tx Tx) error {
		dispatch, err := tx.GetDispatch(ctx, dispatchID)
		if err != nil {
			return fmt.Errorf("could not load dispatch: %w", err)
		}
		if dispatch == nil {
			return ErrDispatchNotFound
		}

		validated := s.validateVehicles(vehicles, log)

		if err := tx.SetDispatchVehicles(ctx, dispatch.ID, validated); err != nil {
			return fmt.Errorf("could not update vehicle snapshot: %w", err)
		}
		if err := tx.ReleaseVehicles(ctx, dispatch.ID); err != nil {
			return fmt.Errorf("could not release previous vehicles: %w", err)
		}

		holdStatus := models.VehicleSuggested
		if s.cfg != nil && s.cfg.EditFollowsLifecycle && dispatch.Status != models.DispatchPending {
			holdStatus = models.VehicleDispatched
		}

		for _, v := range validated {
			held, err := tx.HoldVehicle(ctx, v, dispatch.UnitID, dispatch.ID, holdStatus)
			if err != nil {
				return fmt.Errorf("could not hold vehicle %d: %w", v.ID, err)
			}
			if !held {
				log.WithField("vehicle_id", v.ID).Warn("Vehicle already held by another dispatch, skipping")
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to update dispatch vehicles")
		return err
	}

	log.Info("Dispatch vehicles updated")
	return nil
}
