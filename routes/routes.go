package routes

import (
	"net/http"
	"time"

	"courtshare/handlers"
	"courtshare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/profile", hb.UserHandler.EnsureProfileHandler)
		api.GET("/profile", hb.UserHandler.GetProfileHandler)
		api.PUT("/profile", hb.UserHandler.UpdateProfileHandler)
		api.PUT("/fcm-token", hb.UserHandler.UpdateFCMTokenHandler)
		api.DELETE("/profile", hb.UserHandler.DeleteProfileHandler)
	}
}

// RegisterCourtRoutes registers court listing endpoints. Search and
// detail views are public; everything that mutates a listing requires
// the owner's token.
func RegisterCourtRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courts")
	{
		// Public discovery endpoints.
		api.GET("", hb.CourtHandler.SearchCourtsHandler)
		api.GET("/:id", hb.CourtHandler.GetCourtHandler)
		api.GET("/:id/slots", hb.BookingHandler.ListSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("", hb.CourtHandler.CreateCourtHandler)
		protected.GET("/mine", hb.CourtHandler.MyCourtsHandler)
		protected.PUT("/:id", hb.CourtHandler.UpdateCourtHandler)
		protected.DELETE("/:id", hb.CourtHandler.DeleteCourtHandler)
		protected.PUT("/:id/availability", hb.CourtHandler.SetAvailabilityHandler)
		protected.POST("/:id/photos", hb.CourtHandler.UploadPhotoHandler)
		protected.DELETE("/:id/photos/:photoId", hb.CourtHandler.DeletePhotoHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.BookingHandler.CreateBookingHandler)
		api.GET("/mine", hb.BookingHandler.MyBookingsHandler)
		api.GET("/owner", hb.BookingHandler.OwnerBookingsHandler)
		api.POST("/:id/confirm", hb.BookingHandler.ConfirmBookingHandler)
		api.POST("/:id/reject", hb.BookingHandler.RejectBookingHandler)
		api.POST("/:id/cancel", hb.BookingHandler.CancelBookingHandler)
	}
}

// RegisterWebhookRoutes mounts payment webhooks. No auth middleware;
// the Stripe signature is verified in the handler.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.WebhookHandler.StripeWebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CourtShare"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterCourtRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
}
