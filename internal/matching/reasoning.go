package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// Candidate is one ranked recommendation produced by the engine.
type Candidate struct {
	UnitID       int64                 `json:"unit_id"`
	UnitName     string                `json:"unit_name"`
	UnitCode     string                `json:"unit_code"`
	UnitType     string                `json:"unit_type"`
	Location     string                `json:"location,omitempty"`
	Capacity     int                   `json:"capacity"`
	CurrentCount int                   `json:"current_count"`
	MatchScore   int                   `json:"match_score"`
	Reasoning    string                `json:"reasoning"`
	Vehicles     []models.FleetVehicle `json:"vehicles"`
	UnitStatus   string                `json:"unit_status"`
}

// ReasoningText builds the plain-language audit string for a candidate.
// Display only; selection never parses it.
func ReasoningText(incident *models.Incident, unit *models.Unit, score, volunteerCount int) string {
	var reasons []string

	switch {
	case unit.Type == models.UnitTypeFire && incident.EmergencyType == models.EmergencyFire:
		reasons = append(reasons, "Specialized in fire emergencies")
	case unit.Type == models.UnitTypeEMS && incident.EmergencyType == models.EmergencyMedical:
		reasons = append(reasons, "Medical expertise matches incident type")
	case unit.Type == models.UnitTypeRescue && (incident.EmergencyType == models.EmergencyRescue || incident.RescueCategory != ""):
		reasons = append(reasons, "Trained for rescue operations")
	}

	switch {
	case score >= 90:
		reasons = append(reasons, "Excellent capability match")
	case score >= 80:
		reasons = append(reasons, "Strong match for incident requirements")
	case score >= 70:
		reasons = append(reasons, "Good overall match")
	}

	capacity := float64(unit.Capacity)
	switch {
	case float64(volunteerCount) >= capacity*0.8:
		reasons = append(reasons, "Fully staffed and ready")
	case float64(volunteerCount) >= capacity*0.5:
		reasons = append(reasons, "Adequate staffing available")
	default:
		reasons = append(reasons, "Limited staffing, may need support")
	}

	if unit.CurrentStatus == models.UnitAvailable {
		reasons = append(reasons, "Unit is currently available")
	}

	if len(reasons) == 0 {
		return "Unit available for dispatch."
	}
	return strings.Join(reasons, ". ") + "."
}

// OverallReasoning summarizes the incident and the top candidate for the
// recommendation response.
func OverallReasoning(incident *models.Incident, candidates []Candidate) string {
	var b strings.Builder
	b.WriteString("Incident analysis: ")

	switch incident.Severity {
	case "critical":
		b.WriteString("CRITICAL priority ")
	case "high":
		b.WriteString("HIGH priority ")
	case "low":
		b.WriteString("LOW priority ")
	default:
		b.WriteString("MEDIUM priority ")
	}

	descriptions := map[string]string{
		models.EmergencyFire:    "fire emergency",
		models.EmergencyMedical: "medical emergency",
		models.EmergencyRescue:  "rescue operation",
		models.EmergencyOther:   "general emergency",
	}
	desc, ok := descriptions[incident.EmergencyType]
	if !ok {
		desc = "emergency"
	}
	location := incident.Location
	if location == "" {
		location = "unknown location"
	}
	fmt.Fprintf(&b, "%s at %s. ", desc, location)

	if incident.Description != "" {
		d := incident.Description
		if len(d) > 100 {
			d = d[:100]
		}
		fmt.Fprintf(&b, "Description: %s... ", d)
	}

	if len(candidates) > 0 {
		top := candidates[0]
		fmt.Fprintf(&b, "Top recommendation: %s with %d%% match. %s", top.UnitName, top.MatchScore, top.Reasoning)
	} else {
		b.WriteString("No available units found for this incident.")
	}
	return b.String()
}

// Confidence computes the aggregate confidence figure for a ranked
// candidate list: 0 when empty, otherwise clamped to [60,95].
func Confidence(incident *models.Incident, candidates []Candidate) int {
	if len(candidates) == 0 {
		return 0
	}

	topScore := candidates[0].MatchScore
	confidence := float64(topScore) * 0.8

	if len(incident.Description) > 20 {
		confidence += 10
	}
	if incident.Location != "" && incident.Location != "Testing" {
		confidence += 5
	}
	if len(candidates) > 1 {
		gap := topScore - candidates[1].MatchScore
		if gap > 15 {
			confidence += 10
		} else if gap > 5 {
			confidence += 5
		}
	}

	rounded := int(math.Round(confidence))
	if rounded > 95 {
		return 95
	}
	if rounded < 60 {
		return 60
	}
	return rounded
}
