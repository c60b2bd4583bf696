package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"octofit.backend/internal/interfaces/http/response"
	"octofit.backend/pkg/logger"
)

// Resources lists the collection names served under /api/, in discovery
// order.
var Resources = []string{"users", "teams", "activities", "leaderboard", "workouts"}

const apiIndexMessage = "Welcome to OctoFit Tracker API"

// RootHandler serves the API index and the health probe.
type RootHandler struct {
	publicBaseURL string
	ping          func(ctx context.Context) error
}

// NewRootHandler creates the index handler. publicBaseURL, when set, is used
// instead of the request origin. ping checks the database for /health.
func NewRootHandler(publicBaseURL string, ping func(ctx context.Context) error) *RootHandler {
	return &RootHandler{
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		ping:          ping,
	}
}

// APIIndex lists the absolute URL of every collection.
// GET / and GET /api/
func (h *RootHandler) APIIndex(c *gin.Context) {
	base := h.baseURL(c) + "/api/"
	endpoints := make(gin.H, len(Resources))
	for _, name := range Resources {
		endpoints[name] = base + name + "/"
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":   apiIndexMessage,
		"endpoints": endpoints,
	})
}

// Health reports whether the service can reach its database.
// GET /health
func (h *RootHandler) Health(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			logger.Warn(ctx, "Health check failed", zap.Error(err))
			response.Success(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

func (h *RootHandler) baseURL(c *gin.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	host := c.Request.Host
	if fwd := c.GetHeader("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return scheme + "://" + host
}
