package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/autoparts/storefront/models"
)

// RateLimiter is a fixed-window limit per client IP, method and route,
// counted in Redis.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := hit(c.Request.Context(), client, key, window)
		if err != nil {
			logger.WithError(err).Error("rate limiter unavailable")
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			return
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(count), 0),
			ResetAt:        resetAt,
			ResetInSeconds: max(int(time.Until(resetAt).Seconds()), 0),
		}
		c.Set(models.RateLimiterKey, rate)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rate.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(rate.Remaining))

		if int(count) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(rate.ResetInSeconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			return
		}
		c.Next()
	}
}

// hit counts one request against key and returns the count so far and the
// end of the current window. The counter and its reset marker are created
// with their TTL in the same transaction as the increment, so a window
// always expires.
func hit(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, time.Time, error) {
	resetKey := key + ":resetAt"
	var (
		count *redis.IntCmd
		reset *redis.StringCmd
	)
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, window)
		pipe.SetNX(ctx, resetKey, time.Now().Add(window).Unix(), window)
		count = pipe.Incr(ctx, key)
		reset = pipe.Get(ctx, resetKey)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, errors.Wrap(err, "count request")
	}
	resetUnix, err := reset.Int64()
	if err != nil {
		return 0, time.Time{}, errors.Wrap(err, "read window reset")
	}
	return count.Val(), time.Unix(resetUnix, 0), nil
}
