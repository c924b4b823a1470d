package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alkime/notices/internal/config"
	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/recommend"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Recommender answers filter selections. *app.App satisfies it.
type Recommender interface {
	Options() options.Options
	Recommend(ctx context.Context, c notice.Criteria) (recommend.Result, error)
}

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine
	rec    Recommender
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, rec Recommender) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Configure proxy trust for production (Fly.io)
	if cfg.Env == config.EnvProduction {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}

	server := &Server{
		config: cfg,
		logger: logger,
		router: router,
		rec:    rec,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/options", s.handleOptions)
		api.POST("/recommendations", s.handleRecommend)
	}
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "notices",
	})
}

func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.rec.Options())
}

type recommendRequest struct {
	Tags     []string        `json:"tags"`
	Tone     notice.Tone     `json:"tone" binding:"required"`
	Category string          `json:"category"`
	Weather  notice.Weather  `json:"weather" binding:"required"`
	Calendar notice.Calendar `json:"calendar" binding:"required"`
}

type recommendResponse struct {
	RequestID string              `json:"request_id"`
	Outcome   string              `json:"outcome"`
	Notice    string              `json:"notice"`
	Messages  []recommend.Message `json:"messages"`
}

func (s *Server) handleRecommend(c *gin.Context) {
	requestID := uuid.NewString()

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Rejected recommendation request", "request_id", requestID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"request_id": requestID, "error": err.Error()})
		return
	}

	res, err := s.rec.Recommend(c.Request.Context(), notice.Criteria{
		Tags:     req.Tags,
		Tone:     req.Tone,
		Category: req.Category,
		Weather:  req.Weather,
		Calendar: req.Calendar,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, notice.ErrInvalidCriteria) {
			status = http.StatusBadRequest
		}
		s.logger.Debug("Recommendation failed", "request_id", requestID, "error", err)
		c.JSON(status, gin.H{"request_id": requestID, "error": err.Error()})
		return
	}

	s.logger.Info("Recommendation served",
		"request_id", requestID,
		"outcome", res.Outcome.String(),
		"count", len(res.Messages),
	)

	messages := res.Messages
	if messages == nil {
		messages = []recommend.Message{}
	}

	c.JSON(http.StatusOK, recommendResponse{
		RequestID: requestID,
		Outcome:   res.Outcome.String(),
		Notice:    res.Banner(),
		Messages:  messages,
	})
}
