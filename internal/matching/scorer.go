package matching

import (
	"math"
	"math/rand"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// typeScores maps emergency type -> unit type -> base compatibility score.
var typeScores = map[string]map[string]int{
	models.EmergencyFire: {
		models.UnitTypeFire:      100,
		models.UnitTypeRescue:    70,
		models.UnitTypeEMS:       50,
		models.UnitTypeLogistics: 30,
		models.UnitTypeCommand:   40,
	},
	models.EmergencyMedical: {
		models.UnitTypeEMS:       100,
		models.UnitTypeFire:      60,
		models.UnitTypeRescue:    70,
		models.UnitTypeLogistics: 40,
		models.UnitTypeCommand:   30,
	},
	models.EmergencyRescue: {
		models.UnitTypeRescue:    100,
		models.UnitTypeFire:      80,
		models.UnitTypeEMS:       60,
		models.UnitTypeLogistics: 50,
		models.UnitTypeCommand:   40,
	},
	models.EmergencyOther: {
		models.UnitTypeCommand:   100,
		models.UnitTypeLogistics: 80,
		models.UnitTypeRescue:    70,
		models.UnitTypeFire:      60,
		models.UnitTypeEMS:       50,
	},
}

// rescueScores refines the base score for specific rescue categories.
// The higher of base and category score wins.
var rescueScores = map[string]map[string]int{
	"building_collapse": {models.UnitTypeRescue: 120, models.UnitTypeFire: 90, models.UnitTypeEMS: 80},
	"vehicle_accident":  {models.UnitTypeRescue: 110, models.UnitTypeEMS: 100, models.UnitTypeFire: 80},
	"height_rescue":     {models.UnitTypeRescue: 120, models.UnitTypeFire: 90},
	"water_rescue":      {models.UnitTypeRescue: 120, models.UnitTypeFire: 70},
	"other_rescue":      {models.UnitTypeRescue: 100, models.UnitTypeFire: 80, models.UnitTypeEMS: 70},
}

var severityMultipliers = map[string]float64{
	"low":      0.9,
	"medium":   1.0,
	"high":     1.1,
	"critical": 1.2,
}

const defaultBaseScore = 50

// Scorer computes the compatibility score between an incident and a
// unit. The jitter source is injected so tests can pin it down;
// production passes a seeded *rand.Rand.
type Scorer struct {
	rng *rand.Rand
}

func NewScorer(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng}
}

// Score returns a value in [0,100]. volunteerCount is the number of
// approved volunteers actively assigned to the unit.
func (s *Scorer) Score(incident *models.Incident, unit *models.Unit, volunteerCount int) int {
	base := defaultBaseScore

	emergencyType := incident.EmergencyType
	if emergencyType == "" {
		emergencyType = models.EmergencyOther
	}
	if scores, ok := typeScores[emergencyType]; ok {
		if v, ok := scores[unit.Type]; ok {
			base = v
		}
	}

	if incident.RescueCategory != "" {
		if scores, ok := rescueScores[incident.RescueCategory]; ok {
			if v, ok := scores[unit.Type]; ok && v > base {
				base = v
			}
		}
	}

	score := float64(base)

	severity := incident.Severity
	if severity == "" {
		severity = "medium"
	}
	if m, ok := severityMultipliers[severity]; ok {
		score *= m
	}

	score += float64(staffingBonus(volunteerCount, unit.Capacity))

	if s.rng != nil {
		// Tie-breaking noise only, bounded to [-3,+3].
		score += float64(s.rng.Intn(7) - 3)
	}

	return clampScore(score)
}

func staffingBonus(volunteerCount, capacity int) int {
	ratio := 1.0
	if capacity > 0 {
		ratio = float64(volunteerCount) / float64(capacity)
	}
	switch {
	case ratio >= 0.8:
		return 15
	case ratio >= 0.5:
		return 10
	case ratio >= 0.3:
		return 5
	}
	return 0
}

func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}
