package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"medicine-shop/models"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis. When
// Redis is unavailable requests pass through unlimited, matching the
// cache's graceful-degradation behavior.
func RateLimiter(name string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if models.RedisClient == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := models.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			models.RedisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Success: false,
				Message: "Too many requests, please try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Windows mirror the storefront's published limits.
func APILimiter() gin.HandlerFunc {
	return RateLimiter("api", 100, 15*time.Minute)
}

func AuthLimiter() gin.HandlerFunc {
	return RateLimiter("auth", 5, 15*time.Minute)
}

func CartLimiter() gin.HandlerFunc {
	return RateLimiter("cart", 20, time.Minute)
}

func OrderLimiter() gin.HandlerFunc {
	return RateLimiter("order", 10, time.Hour)
}
