package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marinedata/auth"
)

// claimsKey is the gin context key holding the verified session claims.
const claimsKey = "sessionClaims"

// RequireAuth verifies the bearer token and stashes its claims in the request
// context. Missing, malformed, and expired tokens all get the same 401.
func RequireAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			writeError(c, http.StatusUnauthorized, "Authorization required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(c, http.StatusUnauthorized, "Invalid authorization format")
			c.Abort()
			return
		}

		claims, err := svc.VerifyToken(parts[1])
		if err != nil {
			writeError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// sessionClaims retrieves the claims stored by RequireAuth.
func sessionClaims(c *gin.Context) (auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}
