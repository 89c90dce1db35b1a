package v1

import (
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
)

// DTOToVehicleSummaries converts request vehicle references to the
// domain snapshot form.
func DTOToVehicleSummaries(vehicles []VehicleRequest) []models.VehicleSummary {
	summaries := make([]models.VehicleSummary, len(vehicles))
	for i, v := range vehicles {
		summaries[i] = models.VehicleSummary{
			ID:   v.ID,
			Name: v.Name,
			Type: v.Type,
		}
	}
	return summaries
}

// DTOToSuggestionRequest converts the HTTP suggestion payload to the
// service request.
func DTOToSuggestionRequest(dto CreateSuggestionRequest) service.CreateSuggestionRequest {
	return service.CreateSuggestionRequest{
		IncidentID:  dto.IncidentID,
		UnitID:      dto.UnitID,
		Vehicles:    DTOToVehicleSummaries(dto.Vehicles),
		SuggestedBy: dto.SuggestedBy,
		Notes:       dto.Reasoning,
	}
}

// SuggestionResultToResponse builds the suggestion creation response.
func SuggestionResultToResponse(result *service.SuggestionResult) CreateSuggestionResponse {
	return CreateSuggestionResponse{
		Success:      true,
		Message:      "Suggestion created and awaiting approval",
		SuggestionID: result.SuggestionID,
		Incident: IncidentRef{
			ID:     result.Incident.ID,
			Title:  result.Incident.Title,
			Status: result.Incident.DispatchStatus,
		},
		Unit: UnitRef{
			ID:     result.Unit.ID,
			Name:   result.Unit.Name,
			Status: result.Unit.CurrentStatus,
		},
		VehicleCount:  len(result.VehiclesSaved),
		VehiclesSaved: result.VehiclesSaved,
	}
}

// DispatchResultToResponse builds the manual dispatch response.
func DispatchResultToResponse(result *service.DirectDispatchResult) DirectDispatchResponse {
	return DirectDispatchResponse{
		Success:    true,
		Message:    "Unit dispatched",
		DispatchID: result.DispatchID,
		Incident: IncidentRef{
			ID:     result.Incident.ID,
			Title:  result.Incident.Title,
			Status: result.Incident.DispatchStatus,
		},
		Unit: UnitRef{
			ID:     result.Unit.ID,
			Name:   result.Unit.Name,
			Status: result.Unit.CurrentStatus,
		},
		VolunteerCount: result.VolunteerCount,
	}
}

// RecommendationToResponse builds the recommendation response.
func RecommendationToResponse(rec *service.Recommendation) RecommendResponse {
	return RecommendResponse{
		Success:         true,
		Message:         "Recommendations generated",
		Incident:        rec.Incident,
		Recommendations: rec.Candidates,
		AIReasoning:     rec.Reasoning,
		AIConfidence:    rec.Confidence,
	}
}
