package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(handler *ModerationHandler) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1/moderation")
	{
		api.POST("/actions", handler.Moderate)
		api.POST("/warnings", handler.Warn)
		api.GET("/users/:user_id/actions", handler.GetActiveActions)
		api.GET("/users/:user_id/warnings", handler.GetActiveWarnings)
		api.POST("/actions/:id/deactivate", handler.DeactivateAction)
		api.POST("/actions/:id/activate", handler.ActivateAction)
	}

	return router
}
