package routes

import (
	"dentalai_backend/internal/handlers"
	"dentalai_backend/ws"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts the HTTP API, swagger UI and websocket endpoint.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, wsHandler *ws.Handler) {
	api := router.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Patient.RegisterRoutes(api)
		appHandlers.Note.RegisterRoutes(api)
		appHandlers.Appointment.RegisterRoutes(api)
		appHandlers.Recording.RegisterRoutes(api)
		appHandlers.Code.RegisterRoutes(api)
	}

	router.GET("/ws", wsHandler.ServeWS)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
