package middleware

import (
	"net/http"
	"strings"

	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase"
	"ordemfacil/pkg"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "session"
	tokenKey   = "token"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin privileges required", http.StatusForbidden)
)

// RequireAuth resolves the bearer token into a session and stores it on the
// request context. Requests without a valid session are rejected.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(tokenKey, token)
		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Authorization is decided by the role
// field alone, never by the account name.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Session(c).Tipo != entities.RoleAdmin {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// Session returns the authenticated session, zero when unauthenticated.
func Session(c *gin.Context) entities.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}
	}
	s, _ := v.(entities.Session)
	return s
}

// Actor returns the display name used for audit entries, empty when the
// request carries no session.
func Actor(c *gin.Context) string {
	return Session(c).Nome
}

// Token returns the raw bearer token of the request.
func Token(c *gin.Context) string {
	if v, ok := c.Get(tokenKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return bearerToken(c)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
