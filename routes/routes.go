package routes

import (
	"net/http"
	"time"

	"realtorbot/handlers"
	"realtorbot/middleware"
	"realtorbot/models"
	"realtorbot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the conversational surface. Session
// teardown stays unauthenticated so expired clients can still release
// their engine session.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.DELETE("/session/:sessionId", hb.Assistant.DeleteSessionHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/session", hb.Assistant.CreateSessionHandler)
		api.POST("/message", hb.Assistant.MessageHandler)
		api.POST("/create-listing", middleware.RequireRole(models.RoleSeller), hb.Assistant.CreateListingHandler)
		api.POST("/webhook/search", hb.Assistant.WebhookSearchHandler)
	}
}

// RegisterConversationalRoutes registers the recommendation endpoint.
func RegisterConversationalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conversational")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/recommendations", hb.Assistant.RecommendationsHandler)
	}
}

// RegisterPropertyRoutes registers the plain listing CRUD surface.
// Reads are public; writes require a seller credential.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("", hb.Property.ListPropertiesHandler)
		api.GET("/:id", hb.Property.GetPropertyHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleSeller))
		protected.POST("", hb.Property.CreatePropertyHandler)
		protected.PUT("/:id", hb.Property.UpdatePropertyHandler)
		protected.DELETE("/:id", hb.Property.DeletePropertyHandler)
	}
}

// RegisterTourRoutes registers the buyer tour-scheduling surface.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleBuyer))
		api.POST("", hb.Tours.CreateTourHandler)
		api.GET("", hb.Tours.ListToursHandler)
		api.GET("/:id", hb.Tours.GetTourHandler)
		api.PUT("/:id", hb.Tours.UpdateTourHandler)
		api.DELETE("/:id", hb.Tours.DeleteTourHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and
// global middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	RegisterAssistantRoutes(r, hb)
	RegisterConversationalRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterHealthRoute(r)
}
