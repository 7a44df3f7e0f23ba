package routes

import (
	"net/http"
	"time"

	"quickcourt/handlers"
	"quickcourt/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVenueRoutes registers the venue catalog endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.Venues.ListVenues)
		api.GET("/:id", hb.Venues.GetVenue)
	}
}

// RegisterAuthRoutes registers registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterBookingRoutes registers slot availability and booking listings.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/available-slots", hb.Booking.GetAvailableSlots)
		api.GET("/my", middleware.JWTAuthMiddleware(true), hb.Booking.ListMyBookings)
	}
}

// RegisterPaymentRoutes registers checkout session creation. Auth is
// optional: an anonymous demo user can still walk the payment flow, a
// signed-in one gets the booking attributed.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/create-checkout-session", middleware.JWTAuthMiddleware(false), hb.Payment.CreateCheckoutSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "QuickCourt demo server"})
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

	RegisterVenueRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
