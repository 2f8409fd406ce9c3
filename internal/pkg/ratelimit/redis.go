package ratelimit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and consumes atomically.
// KEYS[1] = bucket key, ARGV = rate/sec, capacity, cost, now (seconds, fractional)
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local cost = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local state = redis.call("HMGET", key, "tokens", "last_refill")
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if not tokens or not last_refill then
    tokens = capacity
    last_refill = now
end

local elapsed = now - last_refill
if elapsed > 0 then
    tokens = math.min(capacity, tokens + elapsed * rate)
    last_refill = now
end

local allowed = 0
if tokens >= cost then
    tokens = tokens - cost
    allowed = 1
end

redis.call("HSET", key, "tokens", tokens, "last_refill", last_refill)
redis.call("EXPIRE", key, 120)

return {allowed, tostring(tokens)}
`)

// RedisLimiter shares buckets across API replicas.
type RedisLimiter struct {
	client redis.Scripter
	policy Policy
	prefix string
}

func NewRedisLimiter(client redis.Scripter, policy Policy) *RedisLimiter {
	return &RedisLimiter{client: client, policy: policy, prefix: "ratelimit:"}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	rate := l.policy.perSecond()
	now := float64(time.Now().UnixMicro()) / 1e6

	res, err := tokenBucketScript.Run(ctx, l.client, []string{l.prefix + key}, rate, l.policy.burst(), 1, now).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis limiter error: %w", err)
	}

	results, ok := res.([]any)
	if !ok || len(results) != 2 {
		return Decision{}, fmt.Errorf("invalid response from token bucket script")
	}
	allowed, _ := results[0].(int64)
	if allowed == 1 {
		return Decision{Allowed: true}, nil
	}

	var remaining float64
	if s, ok := results[1].(string); ok {
		_, _ = fmt.Sscanf(s, "%g", &remaining)
	}
	wait := math.Max(0, 1-remaining) / rate
	return Decision{Allowed: false, RetryAfter: time.Duration(wait * float64(time.Second))}, nil
}
