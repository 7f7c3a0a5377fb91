package routes

import (
	"net/http"
	"time"

	"movelink/handlers"
	"movelink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes sets up the endpoints for the quote wizard.
func RegisterQuoteRoutes(r *gin.Engine, qh *handlers.QuoteHandler) {
	quoteGroup := r.Group("/api/quote")
	{
		quoteGroup.GET("/catalog", qh.GetCatalog)
		quoteGroup.POST("/session", qh.StartSession)
		quoteGroup.GET("/session/:sessionID", qh.GetSession)
		quoteGroup.POST("/session/:sessionID/actions", qh.ApplyAction)
		quoteGroup.GET("/session/:sessionID/vehicles", qh.GetVehicles)
		quoteGroup.GET("/session/:sessionID/suggest", qh.SuggestLocations)
		quoteGroup.POST("/session/:sessionID/confirm", qh.ConfirmQuote)
		quoteGroup.DELETE("/session/:sessionID", qh.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm MoveLink",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, qh *handlers.QuoteHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterQuoteRoutes(r, qh)
}
