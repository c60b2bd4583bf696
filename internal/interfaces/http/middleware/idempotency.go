package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"octofit.backend/pkg/logger"
	"octofit.backend/pkg/redis"
)

const (
	IdempotencyHeader    = "Idempotency-Key"
	IdempotencyHitHeader = "X-Idempotency-Hit"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

var (
	redisEnabled = redis.Enabled
	redisGet     = redis.Get
	redisSet     = redis.Set
	redisSetNX   = redis.SetNX
	redisDel     = redis.Del
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// storedResponse is what a replay sends back.
type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// IdempotencyMiddleware replays the stored response when a client retries a
// write with the same Idempotency-Key. Without Redis it is a no-op.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || !redisEnabled() {
			c.Next()
			return
		}

		// a key only dedupes requests to the same endpoint
		storageKey := "octofit:idempotency:" + c.Request.Method + ":" + c.Request.URL.Path + ":" + key
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		switch {
		case err == nil && val == processingMarker:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "IDEMPOTENCY_CONFLICT",
				"message": "Request already in progress",
			})
			return
		case err == nil:
			replay(c, val)
			return
		case !redis.IsNil(err):
			logger.Warn(ctx, "Idempotency lookup failed, processing without it", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "IDEMPOTENCY_CONFLICT",
				"message": "Request in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 || !json.Valid(w.body.Bytes()) {
			// failed requests may be retried with the same key
			_ = redisDel(ctx, storageKey)
			return
		}
		stored, err := json.Marshal(storedResponse{Status: status, Body: w.body.Bytes()})
		if err == nil {
			err = redisSet(ctx, storageKey, string(stored), RetentionDuration)
		}
		if err != nil {
			logger.Warn(ctx, "Failed to store idempotent response", zap.Error(err))
			_ = redisDel(ctx, storageKey)
		}
	}
}

func replay(c *gin.Context, val string) {
	var stored storedResponse
	if err := json.Unmarshal([]byte(val), &stored); err != nil || stored.Status == 0 {
		// entries written without a status are bare bodies
		stored = storedResponse{Status: http.StatusOK, Body: json.RawMessage(val)}
	}
	c.Header(IdempotencyHitHeader, "true")
	c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
	c.Abort()
}
