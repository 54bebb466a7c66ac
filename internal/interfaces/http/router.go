// Package http wires handlers, middleware and routes into a gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubgate/internal/infrastructure/config"
	"clubgate/internal/interfaces/http/handlers"
	"clubgate/internal/interfaces/http/middleware"
	"clubgate/internal/interfaces/http/routes"
	"clubgate/internal/shared/logger"
)

type Router struct {
	engine           *gin.Engine
	cfg              *config.Config
	accessHandler    *handlers.AccessHandler
	committeeHandler *handlers.CommitteeHandler
	logger           logger.Interface
}

func NewRouter(
	cfg *config.Config,
	accessHandler *handlers.AccessHandler,
	committeeHandler *handlers.CommitteeHandler,
	log logger.Interface,
) *Router {
	return &Router{
		engine:           gin.New(),
		cfg:              cfg,
		accessHandler:    accessHandler,
		committeeHandler: committeeHandler,
		logger:           log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAccessRoutes(r.engine, &routes.AccessRouteConfig{
		AccessHandler:    r.accessHandler,
		CommitteeHandler: r.committeeHandler,
		CommitteeKey:     r.cfg.Verification.CommitteeKey,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
