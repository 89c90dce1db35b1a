package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/metrics"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/notify"
)

// CreateSuggestion records a pending assignment of a unit and vehicle
// set to an incident. The unit is held (back-referenced), not
// committed: its current_status stays available until an approver
// promotes the suggestion to a dispatch.
func (s *dispatchService) CreateSuggestion(ctx context.Context, req CreateSuggestionRequest) (*SuggestionResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "CreateSuggestion",
		"incident_id": req.IncidentID,
		"unit_id":     req.UnitID,
	})
	log.Info("Creating dispatch suggestion")

	result := &SuggestionResult{}
	err := s.store.WithTransaction(ctx, func(tx Tx) error {
		incident, err := tx.GetIncidentForUpdate(ctx, req.IncidentID)
		if err != nil {
			return fmt.Errorf("could not load incident: %w", err)
		}
		if incident == nil {
			return ErrIncidentNotFound
		}
		if incident.DispatchStatus == models.DispatchStatusClosed {
			return ErrIncidentClosed
		}
		// Only incidents waiting in the dispatch pool accept new
		// suggestions; processing and responded ones already carry an
		// assignment.
		if incident.DispatchStatus != models.DispatchStatusForDispatch {
			return ErrIncidentNotReady
		}

		unit, err := tx.GetUnitForUpdate(ctx, req.UnitID)
		if err != nil {
			return fmt.Errorf("could not load unit: %w", err)
		}
		if unit == nil {
			return ErrUnitNotFound
		}

		if unit.CurrentStatus != models.UnitAvailable {
			live, err := tx.UnitHasLiveDispatch(ctx, unit.ID)
			if err != nil {
				return fmt.Errorf("could not check unit dispatches: %w", err)
			}
			if live {
				return ErrUnitConflict
			}
			// No live dispatch backs the stale status: repair it and
			// carry on. The reconciler handles the general case.
			log.WithField("stale_status", unit.CurrentStatus).Warn("Repairing stale unit status to available")
			if err := tx.SetUnitStatus(ctx, unit.ID, models.UnitAvailable, nil); err != nil {
				return fmt.Errorf("could not repair unit status: %w", err)
			}
			unit.CurrentStatus = models.UnitAvailable
		}

		pending, err := tx.IncidentHasPendingSuggestion(ctx, incident.ID)
		if err != nil {
			return fmt.Errorf("could not check pending suggestions: %w", err)
		}
		if pending {
			return ErrDuplicateSuggestion
		}

		active, err := tx.IncidentHasActiveDispatch(ctx, incident.ID)
		if err != nil {
			return fmt.Errorf("could not check active dispatches: %w", err)
		}
		if active {
			return ErrActiveDispatchExists
		}

		validated := s.validateVehicles(req.Vehicles, log)

		suggestionID, err := tx.InsertDispatch(ctx, &models.Dispatch{
			IncidentID:   incident.ID,
			UnitID:       unit.ID,
			Vehicles:     validated,
			Status:       models.DispatchPending,
			DispatchedBy: req.SuggestedBy,
			ERNotes:      req.Notes,
		})
		if err != nil {
			return fmt.Errorf("could not insert suggestion: %w", err)
		}

		if err := tx.SetIncidentDispatch(ctx, incident.ID, models.DispatchStatusProcessing, &suggestionID); err != nil {
			return fmt.Errorf("could not update incident: %w", err)
		}

		// Soft hold only: back-reference, status untouched.
		if err := tx.SetUnitStatus(ctx, unit.ID, models.UnitAvailable, &suggestionID); err != nil {
			return fmt.Errorf("could not hold unit: %w", err)
		}

		saved := make([]models.VehicleSummary, 0, len(validated))
		for _, v := range validated {
			held, err := tx.HoldVehicle(ctx, v, unit.ID, suggestionID, models.VehicleSuggested)
			if err != nil {
				return fmt.Errorf("could not hold vehicle %d: %w", v.ID, err)
			}
			if !held {
				log.WithField("vehicle_id", v.ID).Warn("Vehicle already held by another dispatch, skipping")
				continue
			}
			saved = append(saved, v)
		}

		incident.DispatchStatus = models.DispatchStatusProcessing
		incident.DispatchID = &suggestionID
		result.SuggestionID = suggestionID
		result.Incident = incident
		result.Unit = unit
		result.VehiclesSaved = saved
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to create suggestion")
		return nil, err
	}

	metrics.SuggestionsCreated.Inc()
	log.WithField("suggestion_id", result.SuggestionID).Info("Suggestion created")
	return result, nil
}

// validateVehicles drops malformed snapshot entries (missing id or
// name) instead of failing the whole request.
func (s *dispatchService) validateVehicles(vehicles []models.VehicleSummary, log *logrus.Entry) []models.VehicleSummary {
	validated := make([]models.VehicleSummary, 0, len(vehicles))
	for _, v := range vehicles {
		if v.ID <= 0 || v.Name == "" {
			log.WithFields(logrus.Fields{
				"vehicle_id":   v.ID,
				"vehicle_name": v.Name,
			}).Warn("Dropping malformed vehicle entry")
			continue
		}
		validated = append(validated, v)
	}
	return validated
}

// DirectDispatch creates an active dispatch immediately, bypassing the
// suggestion/approval flow. The unit is committed on the spot.
func (s *dispatchService) DirectDispatch(ctx context.Context, req DirectDispatchRequest) (*DirectDispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "DirectDispatch",
		"incident_id": req.IncidentID,
		"unit_id":     req.UnitID,
	})
	log.Info("Creating direct dispatch")

	result := &DirectDispatchResult{}
	err := s.store.WithTransaction(ctx, func(tx Tx) error {
		incident, err := tx.GetIncidentForUpdate(ctx, req.IncidentID)
		if err != nil {
			return fmt.Errorf("could not load incident: %w", err)
		}
		if incident == nil {
			return ErrIncidentNotFound
		}
		if incident.DispatchStatus == models.DispatchStatusClosed {
			return ErrIncidentClosed
		}

		unit, err := tx.GetUnitForUpdate(ctx, req.UnitID)
		if err != nil {
			return fmt.Errorf("could not load unit: %w", err)
		}
		if unit == nil {
			return ErrUnitNotFound
		}

		active, err := tx.IncidentHasActiveDispatch(ctx, incident.ID)
		if err != nil {
			return fmt.Errorf("could not check active dispatches: %w", err)
		}
		if active {
			return ErrActiveDispatchExists
		}

		validated := s.validateVehicles(req.Vehicles, log)

		dispatchID, err := tx.InsertDispatch(ctx, &models.Dispatch{
			IncidentID:   incident.ID,
			UnitID:       unit.ID,
			Vehicles:     validated,
			Status:       models.DispatchActive,
			DispatchedBy: req.DispatchedBy,
		})
		if err != nil {
			return fmt.Errorf("could not insert dispatch: %w", err)
		}

		if err := tx.SetIncidentDispatch(ctx, incident.ID, models.DispatchStatusProcessing, &dispatchID); err != nil {
			return fmt.Errorf("could not update incident: %w", err)
		}
		if err := tx.MarkIncidentResponded(ctx, incident.ID, req.DispatchedBy); err != nil {
			return fmt.Errorf("could not mark incident responded: %w", err)
		}
		if err := tx.SetUnitStatus(ctx, unit.ID, models.UnitDispatched, &dispatchID); err != nil {
			return fmt.Errorf("could not dispatch unit: %w", err)
		}

		for _, v := range validated {
			held, err := tx.HoldVehicle(ctx, v, unit.ID, dispatchID, models.VehicleDispatched)
			if err != nil {
				return fmt.Errorf("could not hold vehicle %d: %w", v.ID, err)
			}
			if !held {
				log.WithField("vehicle_id", v.ID).Warn("Vehicle already held by another dispatch, skipping")
			}
		}

		incident.DispatchStatus = models.DispatchStatusProcessing
		incident.DispatchID = &dispatchID
		unit.CurrentStatus = models.UnitDispatched
		result.DispatchID = dispatchID
		result.Incident = incident
		result.Unit = unit
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to create direct dispatch")
		return nil, err
	}

	count, err := s.store.CountUnitVolunteers(ctx, req.UnitID)
	if err != nil {
		log.WithError(err).Warn("Failed to count unit volunteers")
	}
	result.VolunteerCount = count

	metrics.DirectDispatches.Inc()
	s.publishEvent(ctx, notify.DispatchEvent{
		Type:           notify.EventDirectDispatch,
		DispatchID:     result.DispatchID,
		IncidentID:     result.Incident.ID,
		IncidentTitle:  result.Incident.Title,
		Location:       result.Incident.Location,
		Severity:       result.Incident.Severity,
		UnitID:         result.Unit.ID,
		UnitName:       result.Unit.Name,
		UnitCode:       result.Unit.Code,
		VolunteerCount: count,
		Message: fmt.Sprintf("DISPATCH ALERT: Unit %s has been dispatched to: %s at %s. Severity: %s",
			result.Unit.Code, result.Incident.Title, result.Incident.Location, result.Incident.Severity),
	})

	log.WithField("dispatch_id", result.DispatchID).Info("Direct dispatch created")
	return result, nil
}
