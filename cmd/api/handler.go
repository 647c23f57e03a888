package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdelivery "blog-backend/internal/auth/delivery"
	authusecase "blog-backend/internal/auth/usecase"
	postdelivery "blog-backend/internal/post/delivery"
	userdelivery "blog-backend/internal/user/delivery"
	"blog-backend/pkg/metrics"
)

// Handler owns the Gin engine and the HTTP-facing dependencies.
type Handler struct {
	authHandler *authdelivery.AuthHandler
	userHandler *userdelivery.UserHandler
	postHandler *postdelivery.PostHandler
	tokens      authusecase.TokenVerifier
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewHandler(
	authHandler *authdelivery.AuthHandler,
	userHandler *userdelivery.UserHandler,
	postHandler *postdelivery.PostHandler,
	tokens authusecase.TokenVerifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		postHandler: postHandler,
		tokens:      tokens,
		metrics:     m,
		logger:      logger,
	}
}

// Engine builds the configured Gin engine. Split out from Start so tests
// can drive it through httptest.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(h.logger))
	r.Use(h.metrics.Middleware())
	r.Use(corsMiddleware())

	SetupRoutes(r, h)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

// requestLogger emits one structured line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
