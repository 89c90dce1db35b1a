package service

import "errors"

// Domain errors returned by the dispatch workflows. Handlers map these
// to HTTP codes with errors.Is; everything else is an internal error.
var (
	ErrIncidentNotFound   = errors.New("Incident not found")
	ErrUnitNotFound       = errors.New("Unit not found")
	ErrSuggestionNotFound = errors.New("Suggestion not found")
	ErrDispatchNotFound   = errors.New("Dispatch not found")

	// ErrUnitConflict: the unit is tied to a live dispatch or pending
	// suggestion and cannot take another one.
	ErrUnitConflict = errors.New("unit already has an active dispatch or a pending suggestion")

	// ErrDuplicateSuggestion: the incident already has a pending
	// suggestion awaiting a decision.
	ErrDuplicateSuggestion = errors.New("incident already has a pending suggestion")

	// ErrActiveDispatchExists: direct dispatch refused because the
	// incident already has an active dispatch.
	ErrActiveDispatchExists = errors.New("this incident already has an active dispatch")

	// ErrIncidentClosed: the incident already went through its full
	// lifecycle and takes no new assignments.
	ErrIncidentClosed = errors.New("incident is already closed")

	// ErrIncidentNotReady: suggestions are only accepted while the
	// incident sits in the for_dispatch pool.
	ErrIncidentNotReady = errors.New("incident is not ready for dispatch")

	ErrInvalidAction     = errors.New("invalid action, expected approve or reject")
	ErrInvalidStatus     = errors.New("invalid dispatch status")
	ErrInvalidTransition = errors.New("dispatch status transition not allowed")
)
