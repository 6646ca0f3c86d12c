package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"movie-booking/internal/pkg/clock"
	"movie-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// token bucket kept in a Redis hash; refills whole intervals only
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type RateLimiter struct {
	cfg   config.RateLimitConfig
	rdb   *redis.Client
	clock clock.Clock
}

func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client, clk clock.Clock) *RateLimiter {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &RateLimiter{cfg: cfg, rdb: rdb, clock: clk}
}

func (r *RateLimiter) Enabled() bool {
	return r != nil && r.cfg.Enabled && r.rdb != nil
}

// Limit throttles per client IP and route. Redis failures let the request through.
func (r *RateLimiter) Limit() gin.HandlerFunc {
	if !r.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := r.key(c)
		args := []any{
			r.clock.Now().UnixMilli(),
			r.cfg.Capacity,
			r.cfg.RefillTokens,
			r.cfg.RefillInterval.Milliseconds(),
			int64(r.cfg.TTL / time.Second),
		}

		vals, err := tokenBucketScript.Run(c.Request.Context(), r.rdb, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", fmt.Sprint(err))
			c.Next()
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		c.Header("X-RateLimit-Limit", strconv.Itoa(r.cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many requests"},
			})
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) key(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return strings.Join([]string{r.cfg.Prefix, "ip", ip, "route", c.Request.Method + " " + c.FullPath()}, ":")
}
