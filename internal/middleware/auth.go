package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"item-details-service/internal/model"
	"item-details-service/pkg/response"
	"item-details-service/pkg/scope"
)

// Auth resolves the caller's scope from "Authorization: Bearer <key>" or
// "X-API-Key" and stores it in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := m.resolveScope(c)
		if !ok {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request to %s", c.FullPath())
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

func (m Middleware) resolveScope(c *gin.Context) (model.Scope, bool) {
	if len(m.keys) == 0 {
		return model.Scope{UserID: model.AnonymousUserID, Role: model.RoleAdmin}, true
	}

	key := c.GetHeader("X-API-Key")
	if auth := c.GetHeader("Authorization"); key == "" && auth != "" {
		if token, found := strings.CutPrefix(auth, "Bearer "); found {
			key = strings.TrimSpace(token)
		}
	}
	if key == "" {
		return model.Scope{}, false
	}

	for k, sc := range m.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return sc, true
		}
	}
	return model.Scope{}, false
}
