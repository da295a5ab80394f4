package middleware

import (
	"item-details-service/config"
	"item-details-service/internal/model"
	"item-details-service/pkg/log"
)

type Middleware struct {
	l       log.Logger
	keys    map[string]model.Scope
	limiter *rateLimiter
}

// New builds the middleware set. An empty key list leaves the API open with
// an anonymous admin scope; requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, apiKeys []config.APIKeyConfig, requestsPerMin int) Middleware {
	keys := make(map[string]model.Scope, len(apiKeys))
	for _, k := range apiKeys {
		keys[k.Key] = model.Scope{UserID: k.UserID, Role: model.Role(k.Role)}
	}

	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}

	return Middleware{
		l:       l,
		keys:    keys,
		limiter: limiter,
	}
}
