package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yt-topic-search/internal/config"
)

// Server represents the API server
type Server struct {
	router  *gin.Engine
	youtube *YouTubeAPI
	cfg     *config.Config
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, yt *YouTubeAPI) *Server {
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	server := &Server{
		router:  router,
		youtube: yt,
		cfg:     cfg,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	s.router.GET("/search", s.youtube.SearchSongs)

	// Everything else is the frontend
	if s.cfg.StaticDir != "" {
		s.router.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.cfg.StaticDir))))
	}
}

// Handler returns the underlying http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server on the configured port
func (s *Server) Start() error {
	log.Printf("API running at http://localhost:%s", s.cfg.Port)
	return s.router.Run(s.cfg.Addr())
}
