// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	providerRepo "bookline/database/repository/provider"
	"bookline/handlers"
	"bookline/middleware"
)

// HandlerBundle groups the handlers needed for route registration.
type HandlerBundle struct {
	ProviderRepo providerRepo.ProviderRepository

	Validation *handlers.ValidationHandler
	Booking    *handlers.BookingHandler
	Provider   *handlers.ProviderHandler
	Intent     *handlers.IntentHandler
	Speech     *handlers.SpeechHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "bookline"})
	})

	api := r.Group("/api")
	{
		// Validation and booking core.
		api.POST("/validate-intent", hb.Validation.ValidateIntentHandler)
		api.POST("/book-slot", hb.Booking.BookSlotHandler)
		api.GET("/bookings/:reference", hb.Booking.GetBookingHandler)

		// Provider accounts and lookups.
		providers := api.Group("/providers")
		{
			providers.POST("/register", hb.Provider.RegisterProviderHandler)
			providers.POST("/login", hb.Provider.AuthenticateProviderHandler)
			providers.GET("/:name", hb.Provider.GetProviderByNameHandler)

			protected := providers.Group("")
			protected.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
			protected.PUT("/slots", hb.Provider.SetupSlotsHandler)
		}

		// Slot availability.
		api.GET("/slots/:name/:date", hb.Provider.GetAvailableSlotsHandler)

		// Free-text and voice front doors.
		ai := api.Group("/intent")
		{
			ai.POST("/extract", hb.Intent.ExtractIntentHandler)
			ai.POST("/assist", hb.Intent.AssistHandler)
		}
		api.POST("/stt", hb.Speech.STTHandler)
	}
}
