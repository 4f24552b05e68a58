package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/app/repositories"
	"github.com/deniz/eventhub/internal/app/services"
	"github.com/deniz/eventhub/internal/middleware"
	"github.com/deniz/eventhub/internal/pkg/helpers"
)

// EventController handles event related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListEvents handles retrieving events visible to the caller
// @Summary List events
// @Description Retrieves events visible to the caller (public events plus the caller's own), with optional filtering and pagination.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in title, description and location"
// @Param location query string false "Filter by location"
// @Param orderBy query string false "Ordering: start_time, -start_time, created_at, -created_at, title, -title"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Events retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	var query dto.EventListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	filter := repositories.EventFilter{
		Search:   query.Search,
		Location: query.Location,
		OrderBy:  query.OrderBy,
	}

	caller := middleware.CallerFromContext(ctx)
	events, total, err := c.eventService.List(ctx.Request.Context(), caller, filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewPaginatedResponse(events, helpers.NewPaginationInfo(total, page, pageSize))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetEventByID handles retrieving a single event
// @Summary Get event by ID
// @Description Retrieves a specific event by its ID. Private events are only visible to their organizer.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "event ID")
	if !ok {
		return
	}

	caller := middleware.CallerFromContext(ctx)
	event, err := c.eventService.GetByID(ctx.Request.Context(), caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// CreateEvent handles creating a new event
// @Summary Create an event
// @Description Creates a new event. The authenticated caller becomes the organizer.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or event times"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	caller := middleware.CallerFromContext(ctx)
	event, err := c.eventService.Create(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// UpdateEvent handles updating an existing event
// @Summary Update an event
// @Description Partially updates an event. Only the organizer may update it; absent fields keep their stored values.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or event times"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the organizer"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "event ID")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	caller := middleware.CallerFromContext(ctx)
	event, err := c.eventService.Update(ctx.Request.Context(), caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// DeleteEvent handles deleting an event
// @Summary Delete an event
// @Description Deletes an event and everything attached to it. Only the organizer may delete it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the organizer"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "event ID")
	if !ok {
		return
	}

	caller := middleware.CallerFromContext(ctx)
	if err := c.eventService.Delete(ctx.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event deleted successfully"}))
}

// parseIDParam reads a positive int64 path parameter or writes a 400 response.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		errorDetail = errorDetail.WithDetails("The " + label + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
