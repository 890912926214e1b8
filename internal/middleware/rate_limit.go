package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// IsWrite selects the requests the form rate limit applies to.
func IsWrite(c *fiber.Ctx) bool {
	switch c.Method() {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		return true
	}
	return false
}

func tooManyRequests(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"message":   "Too many requests. Please try again shortly.",
		"retryable": true,
	})
}

// LocalRateLimit keeps counters in process memory. Used when no Redis is
// configured.
func LocalRateLimit(limit int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		Next: func(c *fiber.Ctx) bool {
			return !IsWrite(c)
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Method() + ":" + c.Path()
		},
		LimitReached: tooManyRequests,
	})
}

// RedisRateLimit counts writes per client IP, method and path in fixed
// windows shared by every instance. Redis failures let the request through.
func RedisRateLimit(client *redis.Client, limit int, window time.Duration, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsWrite(c) {
			return c.Next()
		}
		ctx := c.UserContext()
		key := "rl:" + c.IP() + ":" + c.Method() + ":" + c.Path()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Error("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}
		ttl, err := client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		remaining := limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.Itoa(int(ttl.Seconds())))

		if int(count) > limit {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(ttl.Seconds())))
			return tooManyRequests(c)
		}
		return c.Next()
	}
}

// ConnectRedis parses a redis:// URL and checks the server answers.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
