package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/app/services"
	"github.com/deniz/eventhub/internal/middleware"
	"github.com/deniz/eventhub/internal/pkg/helpers"
)

// ReviewController handles review related operations
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// ListEventReviews handles listing the reviews of an event
// @Summary List event reviews
// @Description Retrieves the reviews of an event, newest first, with pagination.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Reviews retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/reviews [get]
func (c *ReviewController) ListEventReviews(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id", "event ID")
	if !ok {
		return
	}

	page, pageSize := helpers.ParsePaginationParams(ctx)

	caller := middleware.CallerFromContext(ctx)
	reviews, total, err := c.reviewService.ListByEvent(ctx.Request.Context(), caller, eventID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewPaginatedResponse(reviews, helpers.NewPaginationInfo(total, page, pageSize))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// CreateReview handles creating a review for an event
// @Summary Review an event
// @Description Creates a review for an event. Each user may review an event once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.CreateReviewRequest true "Review content"
// @Success 201 {object} dto.APIResponse{data=models.Review} "Review created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or rating"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Caller already reviewed this event"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id", "event ID")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	caller := middleware.CallerFromContext(ctx)
	review, err := c.reviewService.Create(ctx.Request.Context(), caller, eventID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(review))
}

// UpdateReview handles updating an existing review
// @Summary Update a review
// @Description Partially updates a review. Only its author may update it.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Review} "Review updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or rating"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the author"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [put]
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "review ID")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	caller := middleware.CallerFromContext(ctx)
	review, err := c.reviewService.Update(ctx.Request.Context(), caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(review))
}

// DeleteReview handles deleting a review
// @Summary Delete a review
// @Description Deletes a review. Only its author may delete it.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Review deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the author"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "review ID")
	if !ok {
		return
	}

	caller := middleware.CallerFromContext(ctx)
	if err := c.reviewService.Delete(ctx.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Review deleted successfully"}))
}
