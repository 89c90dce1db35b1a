package service

import "github.com/jampzdev/dispatch_coordination_system/internal/models"

// allowedTransitions is the strict lifecycle graph:
//
//	pending -> dispatched | cancelled
//	dispatched -> en_route | cancelled
//	en_route -> arrived | cancelled
//	arrived -> completed | cancelled
//
// Terminal states allow nothing. Enforced only when the service runs
// with strict transitions; the default accepts any jump between
// non-terminal post-pending states.
var allowedTransitions = map[string][]string{
	models.DispatchPending:   {models.DispatchActive, models.DispatchCancelled},
	models.DispatchActive:    {models.DispatchEnRoute, models.DispatchCancelled},
	models.DispatchEnRoute:   {models.DispatchArrived, models.DispatchCancelled},
	models.DispatchArrived:   {models.DispatchCompleted, models.DispatchCancelled},
	models.DispatchCompleted: {},
	models.DispatchCancelled: {},
}

// canTransition reports whether from -> to is allowed by the strict
// lifecycle graph.
func canTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func validDispatchStatus(status string) bool {
	switch status {
	case models.DispatchActive, models.DispatchEnRoute, models.DispatchArrived,
		models.DispatchCompleted, models.DispatchCancelled:
		return true
	}
	return false
}
