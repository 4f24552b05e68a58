package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/eventhub/internal/app/models/dto"
	"github.com/deniz/eventhub/internal/app/services"
	"github.com/deniz/eventhub/internal/middleware"
	"github.com/deniz/eventhub/internal/pkg/helpers"
)

// ProfileController handles user profile operations
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// ListProfiles handles listing user profiles
// @Summary List profiles
// @Description Retrieves user profiles ordered by username, with pagination.
// @Tags profiles
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Profiles retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles [get]
func (c *ProfileController) ListProfiles(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	profiles, total, err := c.profileService.List(ctx.Request.Context(), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewPaginatedResponse(profiles, helpers.NewPaginationInfo(total, page, pageSize))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetProfile handles retrieving a user's profile
// @Summary Get profile
// @Description Retrieves the profile of a user by the user's ID.
// @Tags profiles
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{userId} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId", "user ID")
	if !ok {
		return
	}

	profile, err := c.profileService.GetByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile handles updating a user's profile
// @Summary Update profile
// @Description Partially updates a profile. Only the owning user may update it.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Failure 403 {object} dto.ErrorResponse "Caller does not own this profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{userId} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId", "user ID")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	caller := middleware.CallerFromContext(ctx)
	profile, err := c.profileService.Update(ctx.Request.Context(), caller, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
