package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoparts/storefront/models"
)

const limitedKey = "rl:192.0.2.1:GET:/ping"

func limitedRouter(t *testing.T, maxRequests int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	logger, _ := logtest.NewNullLogger()

	r := gin.New()
	r.GET("/ping", RateLimiter(client, maxRequests, window, logger), func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "pong", nil))
	})
	return r, mr
}

func ping(r *gin.Engine) (*httptest.ResponseRecorder, models.ApiResponse) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.1:40000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.ApiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	r, mr := limitedRouter(t, 2, time.Minute)

	w, resp := ping(r)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 2, resp.Rate.Limit)
	assert.Equal(t, 1, resp.Rate.Remaining)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w, resp = ping(r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Rate.Remaining)

	w, resp = ping(r)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.True(t, resp.Error)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 0, resp.Rate.Remaining)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	count, err := mr.Get(limitedKey)
	require.NoError(t, err)
	assert.Equal(t, "3", count)
}

func TestRateLimiterWindowExpires(t *testing.T) {
	r, mr := limitedRouter(t, 1, time.Minute)

	w, _ := ping(r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Minute, mr.TTL(limitedKey))
	assert.Equal(t, time.Minute, mr.TTL(limitedKey+":resetAt"))

	w, _ = ping(r)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	// later hits in the window do not extend it
	mr.FastForward(30 * time.Second)
	ping(r)
	assert.Equal(t, 30*time.Second, mr.TTL(limitedKey))

	mr.FastForward(31 * time.Second)
	w, resp := ping(r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Rate.Remaining)
}

func TestRateLimiterRedisDown(t *testing.T) {
	r, mr := limitedRouter(t, 5, time.Minute)
	mr.Close()

	w, resp := ping(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, resp.Error)
}
