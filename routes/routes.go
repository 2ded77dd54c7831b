package routes

import (
	"time"

	"brewvoice/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Assistant *handlers.AssistantHandler
	Order     *handlers.OrderHandler
	Menu      *handlers.MenuHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/healthz", handlers.HealthHandler)
	r.GET("/api/menu", hb.Menu.GetMenuHandler)

	// Voice assistant endpoints.
	api := r.Group("/api/assistant")
	{
		api.POST("/session", hb.Assistant.StartSessionHandler)
		api.POST("/reset", hb.Assistant.ResetSessionHandler)
		api.POST("/capture", hb.Assistant.ToggleCaptureHandler)
		api.POST("/transcript", hb.Assistant.TranscriptHandler)
		api.POST("/stt", hb.Assistant.STTHandler)
	}

	// Order service endpoints, kept at the paths the front end calls.
	r.POST("/place_order", hb.Order.PlaceOrderHandler)
	r.POST("/cancel_order", hb.Order.CancelOrderHandler)
}
