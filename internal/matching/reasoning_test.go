package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

func TestConfidence_ZeroWhenNoCandidates(t *testing.T) {
	incident := &models.Incident{EmergencyType: models.EmergencyFire}
	assert.Equal(t, 0, Confidence(incident, nil))
}

func TestConfidence_StaysInBounds(t *testing.T) {
	incident := &models.Incident{
		EmergencyType: models.EmergencyFire,
		Description:   strings.Repeat("x", 30),
		Location:      "Main Street",
	}

	for top := 0; top <= 100; top += 10 {
		for second := 0; second <= top; second += 10 {
			candidates := []Candidate{
				{MatchScore: top},
				{MatchScore: second},
			}
			c := Confidence(incident, candidates)
			assert.GreaterOrEqual(t, c, 60)
			assert.LessOrEqual(t, c, 95)
		}
	}
}

func TestConfidence_GapBonus(t *testing.T) {
	incident := &models.Incident{EmergencyType: models.EmergencyFire}

	narrow := Confidence(incident, []Candidate{{MatchScore: 90}, {MatchScore: 88}})
	wide := Confidence(incident, []Candidate{{MatchScore: 90}, {MatchScore: 70}})
	assert.Greater(t, wide, narrow)
}

func TestConfidence_TestingLocationGetsNoBonus(t *testing.T) {
	noLocation := &models.Incident{EmergencyType: models.EmergencyFire}
	testLocation := &models.Incident{EmergencyType: models.EmergencyFire, Location: "Testing"}
	realLocation := &models.Incident{EmergencyType: models.EmergencyFire, Location: "Riverside"}

	candidates := []Candidate{{MatchScore: 90}}
	assert.Equal(t, Confidence(noLocation, candidates), Confidence(testLocation, candidates))
	assert.Greater(t, Confidence(realLocation, candidates), Confidence(testLocation, candidates))
}

func TestReasoningText_FireSpecialist(t *testing.T) {
	incident := &models.Incident{EmergencyType: models.EmergencyFire}
	unit := &models.Unit{
		Type:          models.UnitTypeFire,
		Capacity:      10,
		CurrentStatus: models.UnitAvailable,
	}

	text := ReasoningText(incident, unit, 95, 9)
	assert.Contains(t, text, "Specialized in fire emergencies")
	assert.Contains(t, text, "Excellent capability match")
	assert.Contains(t, text, "Fully staffed and ready")
	assert.Contains(t, text, "Unit is currently available")
	assert.True(t, strings.HasSuffix(text, "."))
}

func TestReasoningText_LimitedStaffing(t *testing.T) {
	incident := &models.Incident{EmergencyType: models.EmergencyOther}
	unit := &models.Unit{Type: models.UnitTypeLogistics, Capacity: 10}

	text := ReasoningText(incident, unit, 40, 1)
	assert.Contains(t, text, "Limited staffing, may need support")
}

func TestOverallReasoning_WithTopCandidate(t *testing.T) {
	incident := &models.Incident{
		EmergencyType: models.EmergencyRescue,
		Severity:      "critical",
		Location:      "Harbor Bridge",
	}
	candidates := []Candidate{
		{UnitName: "Rescue Alpha", MatchScore: 92, Reasoning: "Trained for rescue operations."},
	}

	text := OverallReasoning(incident, candidates)
	assert.Contains(t, text, "CRITICAL priority")
	assert.Contains(t, text, "rescue operation at Harbor Bridge")
	assert.Contains(t, text, "Top recommendation: Rescue Alpha with 92% match")
}

func TestOverallReasoning_NoCandidates(t *testing.T) {
	incident := &models.Incident{EmergencyType: models.EmergencyFire}
	text := OverallReasoning(incident, nil)
	assert.Contains(t, text, "No available units found")
}

func TestOverallReasoning_TruncatesLongDescription(t *testing.T) {
	incident := &models.Incident{
		EmergencyType: models.EmergencyFire,
		Description:   strings.Repeat("a", 250),
	}
	text := OverallReasoning(incident, nil)
	assert.Contains(t, text, strings.Repeat("a", 100)+"...")
	assert.NotContains(t, text, strings.Repeat("a", 101))
}
