package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/config"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
)

type Handler struct {
	dispatchService service.DispatchService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(dispatchService service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// respondDomainError maps workflow errors to HTTP statuses. Unknown
// errors are logged and hidden behind a generic message.
func (h *Handler) respondDomainError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrIncidentNotFound),
		errors.Is(err, service.ErrUnitNotFound),
		errors.Is(err, service.ErrSuggestionNotFound),
		errors.Is(err, service.ErrDispatchNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnitConflict),
		errors.Is(err, service.ErrDuplicateSuggestion),
		errors.Is(err, service.ErrActiveDispatchExists),
		errors.Is(err, service.ErrIncidentClosed),
		errors.Is(err, service.ErrIncidentNotReady):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("Unexpected service error")
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// @Summary Recommend units for an incident
// @Description Score available units against the incident and return up to three ranked candidates with vehicle suggestions and reasoning. Requires API key.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RecommendRequest true "Recommendation request"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /recommendations [post]
func (h *Handler) recommend(c *gin.Context) {
	var input RecommendRequest
	log := h.logger.WithField("method", "recommend")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.dispatchService.Recommend(c.Request.Context(), input.IncidentID)
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RecommendationToResponse(rec))
}

// @Summary Create a dispatch suggestion
// @Description Record a proposed unit/vehicle assignment for an incident, pending approval. Requires API key.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateSuggestionRequest true "Suggestion creation request"
// @Success 201 {object} CreateSuggestionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident or unit not found"
// @Failure 409 {object} ErrorResponse "Unit busy or incident already has a pending suggestion"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /suggestions [post]
func (h *Handler) createSuggestion(c *gin.Context) {
	var input CreateSuggestionRequest
	log := h.logger.WithField("method", "createSuggestion")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.dispatchService.CreateSuggestion(c.Request.Context(), DTOToSuggestionRequest(input))
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SuggestionResultToResponse(result))
}

// @Summary List pending suggestions
// @Description List every suggestion awaiting an approve/reject decision, oldest first. Requires API key.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DispatchListResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /suggestions [get]
func (h *Handler) listPendingSuggestions(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingSuggestions")

	suggestions, err := h.dispatchService.ListPendingSuggestions(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DispatchListResponse{
		Success:    true,
		Message:    "Pending suggestions",
		Dispatches: suggestions,
		Count:      len(suggestions),
	})
}

// @Summary Decide on a suggestion
// @Description Approve a pending suggestion into an active dispatch, or reject it and release its held resources. Requires API key.
// @Tags Suggestions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DecisionRequest true "Decision request"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown action"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Suggestion not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /suggestions/decision [post]
func (h *Handler) decideSuggestion(c *gin.Context) {
	var input DecisionRequest
	log := h.logger.WithField("method", "decideSuggestion")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.dispatchService.Decide(c.Request.Context(), service.DecisionRequest{
		SuggestionID: input.SuggestionID,
		Action:       input.Action,
		Notes:        input.ERNotes,
		ApprovedBy:   input.ApprovedBy,
	})
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DecisionResponse{
		Success:      true,
		Message:      message,
		SuggestionID: input.SuggestionID,
		Action:       input.Action,
	})
}

// @Summary Dispatch a unit directly
// @Description Create an active dispatch immediately, bypassing the suggestion/approval flow. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DirectDispatchRequest true "Manual dispatch request"
// @Success 201 {object} DirectDispatchResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident or unit not found"
// @Failure 409 {object} ErrorResponse "Incident already has an active dispatch"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dispatches [post]
func (h *Handler) directDispatch(c *gin.Context) {
	var input DirectDispatchRequest
	log := h.logger.WithField("method", "directDispatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.dispatchService.DirectDispatch(c.Request.Context(), service.DirectDispatchRequest{
		IncidentID:   input.IncidentID,
		UnitID:       input.UnitID,
		Vehicles:     DTOToVehicleSummaries(input.Vehicles),
		DispatchedBy: input.DispatchedBy,
	})
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, DispatchResultToResponse(result))
}

// @Summary List active dispatches
// @Description List live dispatches plus terminal ones from the last 24 hours. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DispatchListResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dispatches [get]
func (h *Handler) listActiveDispatches(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveDispatches")

	dispatches, err := h.dispatchService.ListActiveDispatches(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DispatchListResponse{
		Success:    true,
		Message:    "Active dispatches",
		Dispatches: dispatches,
		Count:      len(dispatches),
	})
}

// @Summary Get dispatch details
// @Description Get a dispatch with its incident, unit, vehicle snapshot and assigned volunteers. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Dispatch ID"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} ErrorResponse "Invalid dispatch ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Dispatch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dispatches/{id} [get]
func (h *Handler) getDispatch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getDispatch").WithField("id", id)

	details, err := h.dispatchService.GetDispatch(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DispatchResponse{
		Success:  true,
		Message:  "Dispatch details",
		Dispatch: details,
	})
}

// @Summary Update dispatch status
// @Description Move a dispatch to a new lifecycle state. Completing or cancelling releases the unit and its vehicles. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Dispatch ID"
// @Param request body UpdateStatusRequest true "Status update request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid status or disallowed transition"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Dispatch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dispatches/{id}/status [put]
func (h *Handler) updateDispatchStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateDispatchStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.dispatchService.UpdateStatus(c.Request.Context(), id, input.NewStatus, input.Notes); err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Dispatch status updated to " + input.NewStatus,
	})
}

// @Summary Update dispatch vehicles
// @Description Replace the vehicle assignment of a dispatch, releasing old holds and creating new ones. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Dispatch ID"
// @Param request body UpdateVehiclesRequest true "Vehicle edit request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Dispatch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dispatches/{id}/vehicles [put]
func (h *Handler) updateDispatchVehicles(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateDispatchVehicles").WithField("id", id)

	var input UpdateVehiclesRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.dispatchService.UpdateVehicles(c.Request.Context(), id, DTOToVehicleSummaries(input.Vehicles)); err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Dispatch vehicles updated",
	})
}

// @Summary List available units
// @Description List active, available units with their volunteer headcounts. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UnitListResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units [get]
func (h *Handler) listAvailableUnits(c *gin.Context) {
	log := h.logger.WithField("method", "listAvailableUnits")

	units, err := h.dispatchService.ListAvailableUnits(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UnitListResponse{
		Success: true,
		Message: "Available units",
		Units:   units,
		Count:   len(units),
	})
}

// @Summary List available vehicles
// @Description List free fleet vehicles, optionally filtered to those matching a unit's type. Requires API key.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit_id query int false "Filter vehicles to this unit's type"
// @Success 200 {object} VehicleListResponse
// @Failure 400 {object} ErrorResponse "Invalid unit_id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	log := h.logger.WithField("method", "listVehicles")

	var unitID int64
	if raw := c.Query("unit_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			respondError(c, http.StatusBadRequest, "invalid unit_id")
			return
		}
		unitID = parsed
	}

	vehicles, err := h.dispatchService.ListVehiclesForUnit(c.Request.Context(), unitID)
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, VehicleListResponse{
		Success:  true,
		Message:  "Available vehicles",
		Vehicles: vehicles,
		Count:    len(vehicles),
	})
}

// @Summary List unit volunteers
// @Description List the approved, active volunteers assigned to a unit. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Unit ID"
// @Success 200 {object} VolunteerListResponse
// @Failure 400 {object} ErrorResponse "Invalid unit ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /units/{id}/volunteers [get]
func (h *Handler) listUnitVolunteers(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listUnitVolunteers").WithField("id", id)

	volunteers, err := h.dispatchService.ListVolunteersForUnit(c.Request.Context(), id)
	if err != nil {
		h.respondDomainError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, VolunteerListResponse{
		Success:    true,
		Message:    "Unit volunteers",
		Volunteers: volunteers,
		Count:      len(volunteers),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC()})
}
