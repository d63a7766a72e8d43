package middleware

import (
	"questlog/pkg/log"
)

// Config holds the API protection settings.
type Config struct {
	AccessToken     string // empty disables Auth
	RateLimitPerMin int    // non-positive disables RateLimit
}

type Middleware struct {
	l           log.Logger
	accessToken string
	limiter     *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:           l,
		accessToken: cfg.AccessToken,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
