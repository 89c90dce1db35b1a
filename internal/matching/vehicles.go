package matching

import (
	"strings"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// vehicleKeywords maps a unit type to the vehicle name/type keywords it
// can make use of. First keyword match wins per vehicle.
var vehicleKeywords = map[string][]string{
	models.UnitTypeFire:      {"Fire", "Truck", "Engine", "Pumper", "Ladder"},
	models.UnitTypeRescue:    {"Rescue", "Truck", "Ambulance", "Utility", "Support"},
	models.UnitTypeEMS:       {"Ambulance", "Medical", "Van", "Response", "Rescue"},
	models.UnitTypeLogistics: {"Utility", "Supply", "Support", "Truck", "Van"},
	models.UnitTypeCommand:   {"Command", "Communication", "Van", "Car", "SUV"},
}

const maxVehiclesPerUnit = 3

// VehiclesForUnit picks up to three vehicles suitable for the unit type
// by case-insensitive substring match against vehicle name and type.
func VehiclesForUnit(unitType string, vehicles []models.FleetVehicle) []models.FleetVehicle {
	keywords, ok := vehicleKeywords[unitType]
	if !ok {
		keywords = []string{"Vehicle"}
	}

	matched := make([]models.FleetVehicle, 0, maxVehiclesPerUnit)
	for _, v := range vehicles {
		if v.Available != 1 {
			continue
		}
		name := strings.ToLower(v.Name)
		vtype := strings.ToLower(v.Type)
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(name, kw) || strings.Contains(vtype, kw) {
				matched = append(matched, v)
				break
			}
		}
		if len(matched) >= maxVehiclesPerUnit {
			break
		}
	}
	return matched
}

// MatchesUnitType reports whether a single vehicle fits the keyword set
// of the unit type. Used by the per-unit vehicle listing.
func MatchesUnitType(unitType string, v models.FleetVehicle) bool {
	keywords, ok := vehicleKeywords[unitType]
	if !ok {
		keywords = []string{"Vehicle"}
	}
	name := strings.ToLower(v.Name)
	vtype := strings.ToLower(v.Type)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(name, kw) || strings.Contains(vtype, kw) {
			return true
		}
	}
	return false
}
