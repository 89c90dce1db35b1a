package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/matching"
	"github.com/jampzdev/dispatch_coordination_system/internal/metrics"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

const minMatchScore = 50

// Recommend ranks up to three eligible units for the incident, each
// with a score, reasoning text and up to three matched vehicles. No
// eligible unit is not an error: the caller gets an empty list with
// confidence 0.
func (s *dispatchService) Recommend(ctx context.Context, incidentID int64) (*Recommendation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Recommend",
		"incident_id": incidentID,
	})
	log.Info("Generating unit recommendations")

	incident, err := s.store.GetIncident(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load incident: %w", err)
	}
	if incident == nil {
		return nil, ErrIncidentNotFound
	}

	units, err := s.store.ListAvailableUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list available units: %w", err)
	}

	vehicles := s.availableVehicles(ctx, log)

	candidates := make([]matching.Candidate, 0, len(units))
	for _, unit := range units {
		score := s.scorer.Score(incident, &unit.Unit, unit.VolunteerCount)
		if score < minMatchScore {
			continue
		}
		candidates = append(candidates, matching.Candidate{
			UnitID:       unit.ID,
			UnitName:     unit.Name,
			UnitCode:     unit.Code,
			UnitType:     unit.Type,
			Location:     unit.Location,
			Capacity:     unit.Capacity,
			CurrentCount: unit.VolunteerCount,
			MatchScore:   score,
			Reasoning:    matching.ReasoningText(incident, &unit.Unit, score, unit.VolunteerCount),
			Vehicles:     matching.VehiclesForUnit(unit.Type, vehicles),
			UnitStatus:   unit.CurrentStatus,
		})
	}

	// Descending by score; unit id breaks ties so the order is stable.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].MatchScore != candidates[j].MatchScore {
			return candidates[i].MatchScore > candidates[j].MatchScore
		}
		return candidates[i].UnitID < candidates[j].UnitID
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	rec := &Recommendation{
		Incident:   incident,
		Candidates: candidates,
		Reasoning:  matching.OverallReasoning(incident, candidates),
		Confidence: matching.Confidence(incident, candidates),
	}

	log.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"confidence": rec.Confidence,
	}).Info("Recommendations generated")
	return rec, nil
}

// availableVehicles reads the fleet API and filters out vehicles held
// in the local overlay. Any failure degrades to an empty list.
func (s *dispatchService) availableVehicles(ctx context.Context, log *logrus.Entry) []models.FleetVehicle {
	vehicles, err := s.fleet.AvailableVehicles(ctx)
	if err != nil {
		metrics.FleetAPIErrors.Inc()
		log.WithError(err).Warn("Fleet API unavailable, continuing with zero vehicles")
		return nil
	}

	heldIDs, err := s.store.HeldVehicleIDs(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read held vehicles, continuing with zero vehicles")
		return nil
	}
	held := make(map[int64]struct{}, len(heldIDs))
	for _, id := range heldIDs {
		held[id] = struct{}{}
	}

	free := make([]models.FleetVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if _, ok := held[v.ID]; ok {
			continue
		}
		free = append(free, v)
	}
	return free
}
