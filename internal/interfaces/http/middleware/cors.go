package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig builds the cross-origin policy for the browser front-end. "*"
// (or an empty list) admits every origin without credentials; an explicit
// list is matched exactly and allows credentials.
func CORSConfig(allowed []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	cfg.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept", "Authorization",
		IdempotencyHeader, RequestIDHeader,
	}
	cfg.ExposeHeaders = []string{RequestIDHeader, IdempotencyHitHeader}
	cfg.MaxAge = 12 * time.Hour

	var origins []string
	for _, o := range allowed {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if o == "*" {
			origins = nil
			break
		}
		origins = append(origins, o)
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// CORSMiddleware applies CORSConfig(allowed).
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	return cors.New(CORSConfig(allowed))
}
