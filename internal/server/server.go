// Package server exposes the converter over HTTP so library maintainers
// can upload a workbook and get the generated data file back without a
// local toolchain.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/config"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/store"
)

// Server is the converter HTTP service.
type Server struct {
	router *gin.Engine
	store  *store.Store
	cfg    *config.AppConfig
}

// NewServer creates the service. st may be nil when history is disabled.
func NewServer(cfg *config.AppConfig, st *store.Store) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router: gin.Default(),
		store:  st,
		cfg:    cfg,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.GET("/status", s.GetStatus)
		api.POST("/convert", s.Convert)
		api.GET("/runs", s.ListRuns)
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router returns the underlying engine, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
