package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"courtshare/config"
	"courtshare/utils"
)

// rateLimiterStore holds per-IP local limiters used when Redis is down.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

func (s *rateLimiterStore) getLimiter(ip string, perMinute int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per client IP. Counters live in
// Redis so every server instance enforces the same budget; if Redis is
// unreachable the per-process limiter takes over rather than letting
// traffic through unchecked.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := getClientIP(c)
		perMinute := config.AppConfig.MaxRequestsPerMin

		allowed, err := allowRedis(c.Request.Context(), ip, perMinute)
		if err != nil {
			logger.Warn("rate limit store unavailable, using local limiter", zap.Error(err))
			allowed = limiterStore.getLimiter(ip, perMinute).Allow()
		}

		if !allowed {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}

// allowRedis runs a fixed one-minute window counter keyed by IP.
func allowRedis(ctx context.Context, ip string, perMinute int) (bool, error) {
	client := utils.GetRateLimitClient()

	window := time.Now().Unix() / 60
	key := "ratelimit:" + ip + ":" + strconv.FormatInt(window, 10)

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit in this window sets the expiry.
		if err := client.Expire(ctx, key, time.Minute).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(perMinute), nil
}
