package ratelimiter

import (
	"net/http"
	"strings"
	"time"
)

const defaultSourceKey = "X-RateLimit-Key"

type Limiter interface {
	Allow(sourceKey string) bool
	Remaining(sourceKey string) int
	GetSourceKey(r *http.Request) string
	GetMaxBurst() int
}

type Options struct {
	MaxRatePerSecond int
	MaxBurst         int
	CacheTTL         time.Duration
	SourceHeaderKey  string
}

// RateLimiter is a per-source token bucket. Buckets live in an in-memory
// store with a TTL so idle sources do not accumulate forever.
type RateLimiter struct {
	ratePerSecond   float64
	maxBurst        int
	buckets         *bucketStore
	sourceHeaderKey string
}

func New(opts Options) *RateLimiter {
	if opts.MaxRatePerSecond <= 0 {
		opts.MaxRatePerSecond = 10
	}
	if opts.MaxBurst <= 0 {
		opts.MaxBurst = opts.MaxRatePerSecond * 2
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	return &RateLimiter{
		ratePerSecond:   float64(opts.MaxRatePerSecond),
		maxBurst:        opts.MaxBurst,
		buckets:         newBucketStore(opts.CacheTTL),
		sourceHeaderKey: opts.SourceHeaderKey,
	}
}

func (rl *RateLimiter) Allow(sourceKey string) bool {
	return rl.buckets.take(sourceKey, rl.ratePerSecond, rl.maxBurst)
}

func (rl *RateLimiter) Remaining(sourceKey string) int {
	return rl.buckets.remaining(sourceKey, rl.ratePerSecond, rl.maxBurst)
}

// GetSourceKey identifies the caller: configured header first (first entry
// for comma separated X-Forwarded-For chains), then the remote address.
func (rl *RateLimiter) GetSourceKey(r *http.Request) string {
	headerKey := rl.sourceHeaderKey
	if headerKey == "" {
		headerKey = defaultSourceKey
	}

	if v := r.Header.Get(headerKey); v != "" {
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = v[:i]
		}
		return strings.TrimSpace(v)
	}

	return r.RemoteAddr
}

func (rl *RateLimiter) GetMaxBurst() int {
	return rl.maxBurst
}
