package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/app/services"
	"github.com/deniz/eventhub/internal/middleware"
	"github.com/deniz/eventhub/internal/pkg/helpers"
)

// RSVPController handles RSVP related operations
type RSVPController struct {
	rsvpService services.RSVPService
}

// NewRSVPController creates a new RSVPController
func NewRSVPController(rsvpService services.RSVPService) *RSVPController {
	return &RSVPController{
		rsvpService: rsvpService,
	}
}

// RespondToEvent handles creating or updating the caller's RSVP
// @Summary RSVP to an event
// @Description Creates the caller's RSVP for an event, or updates it if one already exists. Status defaults to Maybe when omitted.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.RSVPRequest true "RSVP status"
// @Success 200 {object} dto.APIResponse{data=models.RSVP} "RSVP updated"
// @Success 201 {object} dto.APIResponse{data=models.RSVP} "RSVP created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/rsvp [post]
func (c *RSVPController) RespondToEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id", "event ID")
	if !ok {
		return
	}

	var req dto.RSVPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	caller := middleware.CallerFromContext(ctx)
	rsvp, created, err := c.rsvpService.Respond(ctx.Request.Context(), caller, eventID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewSuccessResponse(rsvp))
}

// GetMyEventRSVP handles retrieving the caller's RSVP for one event
// @Summary Get own RSVP for an event
// @Description Retrieves the caller's RSVP status for a specific event, if any.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.RSVPRequest} "RSVP status, null when none exists"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/rsvp [get]
func (c *RSVPController) GetMyEventRSVP(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id", "event ID")
	if !ok {
		return
	}

	caller := middleware.CallerFromContext(ctx)
	status, err := c.rsvpService.CallerStatus(ctx.Request.Context(), caller, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": status}))
}

// ListMyRSVPs handles listing the caller's RSVPs
// @Summary List own RSVPs
// @Description Retrieves all events the caller has responded to, with pagination.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "RSVPs retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rsvps [get]
func (c *RSVPController) ListMyRSVPs(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	caller := middleware.CallerFromContext(ctx)
	rsvps, total, err := c.rsvpService.ListMine(ctx.Request.Context(), caller, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewPaginatedResponse(rsvps, helpers.NewPaginationInfo(total, page, pageSize))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
