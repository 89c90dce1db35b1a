package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Workflow counters exposed on /metrics.
var (
	SuggestionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_suggestions_created_total",
		Help: "Number of suggestions created.",
	})

	SuggestionDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_suggestion_decisions_total",
		Help: "Number of suggestion decisions, by action.",
	}, []string{"action"})

	DirectDispatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_direct_total",
		Help: "Number of direct dispatches bypassing the suggestion flow.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_status_transitions_total",
		Help: "Number of dispatch status transitions, by target status.",
	}, []string{"status"})

	FleetAPIErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_fleet_api_errors_total",
		Help: "Number of fleet API calls that degraded to an empty vehicle list.",
	})

	ReconciledUnits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_reconciled_units_total",
		Help: "Number of units released by the status reconciler.",
	})
)
