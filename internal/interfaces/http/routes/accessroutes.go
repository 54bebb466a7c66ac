package routes

import (
	"github.com/gin-gonic/gin"

	"clubgate/internal/interfaces/http/handlers"
	"clubgate/internal/interfaces/http/middleware"
)

type AccessRouteConfig struct {
	AccessHandler    *handlers.AccessHandler
	CommitteeHandler *handlers.CommitteeHandler
	CommitteeKey     string
}

func SetupAccessRoutes(engine *gin.Engine, config *AccessRouteConfig) {
	engine.GET("/join", config.AccessHandler.JoinPage)

	api := engine.Group("/api")
	{
		api.POST("/verify", config.AccessHandler.RequestAccess)
		api.POST("/requests", config.AccessHandler.RequestManualAccess)
		api.POST("/join", config.AccessHandler.Join)
	}

	committee := api.Group("/committee")
	committee.Use(middleware.CommitteeAuth(config.CommitteeKey))
	{
		committee.POST("/requests/:id/approve", config.CommitteeHandler.ApproveRequest)
		committee.POST("/requests/:id/reject", config.CommitteeHandler.RejectRequest)
	}
}
