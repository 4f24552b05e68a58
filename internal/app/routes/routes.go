package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deniz/eventhub/internal/app/controllers"
	"github.com/deniz/eventhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	rsvpController *controllers.RSVPController,
	reviewController *controllers.ReviewController,
	profileController *controllers.ProfileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Event routes ---
	// Reads are open to anonymous callers; the optional auth middleware
	// resolves the identity so private events and RSVP status show up for
	// their owner.
	events := v1.Group("/events")
	events.Use(authMiddleware.OptionalJWTAuth())
	{
		events.GET("", eventController.ListEvents)
		events.GET("/:id", eventController.GetEventByID)
		events.GET("/:id/reviews", reviewController.ListEventReviews)
	}

	eventsProtected := v1.Group("/events")
	eventsProtected.Use(authMiddleware.JWTAuth())
	{
		eventsProtected.POST("", eventController.CreateEvent)
		eventsProtected.PUT("/:id", eventController.UpdateEvent)
		eventsProtected.DELETE("/:id", eventController.DeleteEvent)

		eventsProtected.POST("/:id/rsvp", rsvpController.RespondToEvent)
		eventsProtected.GET("/:id/rsvp", rsvpController.GetMyEventRSVP)

		eventsProtected.POST("/:id/reviews", reviewController.CreateReview)
	}

	// --- Review routes (by review ID) ---
	reviews := v1.Group("/reviews")
	reviews.Use(authMiddleware.JWTAuth())
	{
		reviews.PUT("/:id", reviewController.UpdateReview)
		reviews.DELETE("/:id", reviewController.DeleteReview)
	}

	// --- RSVP routes ---
	rsvps := v1.Group("/rsvps")
	rsvps.Use(authMiddleware.JWTAuth())
	{
		rsvps.GET("", rsvpController.ListMyRSVPs)
	}

	// --- Profile routes ---
	profiles := v1.Group("/profiles")
	{
		profiles.GET("", profileController.ListProfiles)
		profiles.GET("/:userId", profileController.GetProfile)
		profiles.PUT("/:userId", authMiddleware.JWTAuth(), profileController.UpdateProfile)
	}
}
