package middleware

import (
	"tasklist-widget/config"
	"tasklist-widget/pkg/log"
)

type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig
	limiter   *rateLimiter
}

func New(l log.Logger, rateLimit config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:         l,
		rateLimit: rateLimit,
	}
	if rateLimit.Enabled && rateLimit.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rateLimit.RequestsPerMin)
	}
	return mw
}
