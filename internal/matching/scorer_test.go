package matching

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

func TestScore_CriticalFireFullyStaffed(t *testing.T) {
	incident := &models.Incident{
		EmergencyType: models.EmergencyFire,
		Severity:      "critical",
	}
	unit := &models.Unit{Type: models.UnitTypeFire, Capacity: 10}

	// 100 base * 1.2 + 15 staffing bonus = 135, clamped to 100.
	// Jitter is at most -3, so the clamp holds for any seed.
	for seed := int64(0); seed < 20; seed++ {
		scorer := NewScorer(rand.New(rand.NewSource(seed)))
		assert.Equal(t, 100, scorer.Score(incident, unit, 9))
	}
}

func TestScore_DeterministicWithoutJitter(t *testing.T) {
	incident := &models.Incident{
		EmergencyType: models.EmergencyMedical,
		Severity:      "high",
	}
	unit := &models.Unit{Type: models.UnitTypeEMS, Capacity: 8}

	scorer := NewScorer(nil)
	first := scorer.Score(incident, unit, 4)
	second := scorer.Score(incident, unit, 4)
	assert.Equal(t, first, second)
}

func TestScore_StaysInBounds(t *testing.T) {
	scorer := NewScorer(rand.New(rand.NewSource(42)))

	emergencyTypes := []string{
		models.EmergencyFire, models.EmergencyMedical,
		models.EmergencyRescue, models.EmergencyOther, "",
	}
	unitTypes := []string{
		models.UnitTypeFire, models.UnitTypeRescue, models.UnitTypeEMS,
		models.UnitTypeLogistics, models.UnitTypeCommand, "Unknown",
	}
	severities := []string{"low", "medium", "high", "critical", ""}

	for _, et := range emergencyTypes {
		for _, ut := range unitTypes {
			for _, sev := range severities {
				incident := &models.Incident{EmergencyType: et, Severity: sev}
				unit := &models.Unit{Type: ut, Capacity: 10}
				for count := 0; count <= 12; count += 3 {
					score := scorer.Score(incident, unit, count)
					assert.GreaterOrEqual(t, score, 0)
					assert.LessOrEqual(t, score, 100)
				}
			}
		}
	}
}

func TestScore_RescueCategoryRaisesBase(t *testing.T) {
	scorer := NewScorer(nil)

	incident := &models.Incident{
		EmergencyType:  models.EmergencyRescue,
		RescueCategory: "vehicle_accident",
		Severity:       "low",
	}
	unit := &models.Unit{Type: models.UnitTypeEMS, Capacity: 10}

	// EMS base for rescue is 60, vehicle_accident raises it to 100.
	// 100 * 0.9 = 90, no staffing bonus at zero volunteers.
	assert.Equal(t, 90, scorer.Score(incident, unit, 0))
}

func TestScore_UnknownUnitTypeUsesDefaultBase(t *testing.T) {
	scorer := NewScorer(nil)

	incident := &models.Incident{
		EmergencyType: models.EmergencyFire,
		Severity:      "medium",
	}
	unit := &models.Unit{Type: "Marine", Capacity: 10}

	assert.Equal(t, 50, scorer.Score(incident, unit, 0))
}

func TestScore_StaffingBonusTiers(t *testing.T) {
	scorer := NewScorer(nil)

	// Fire incident against a Logistics unit scores base 30, keeping
	// all bonus tiers visible below the clamp.
	incident := &models.Incident{
		EmergencyType: models.EmergencyFire,
		Severity:      "medium",
	}
	unit := &models.Unit{Type: models.UnitTypeLogistics, Capacity: 10}

	tests := []struct {
		volunteers int
		expected   int
	}{
		{0, 30},
		{3, 35},
		{5, 40},
		{8, 45},
		{10, 45},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, scorer.Score(incident, unit, tt.volunteers),
			"volunteers=%d", tt.volunteers)
	}
}

func TestScore_ZeroCapacityCountsAsFullyStaffed(t *testing.T) {
	scorer := NewScorer(nil)

	incident := &models.Incident{
		EmergencyType: models.EmergencyFire,
		Severity:      "medium",
	}
	unit := &models.Unit{Type: models.UnitTypeLogistics, Capacity: 0}

	assert.Equal(t, 45, scorer.Score(incident, unit, 0))
}
