// Package httpapi wires the domain services into the JSON HTTP surface.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marinedata/auth"
)

// Services bundles everything the router needs.
type Services struct {
	Auth      *AuthHandlers
	Species   *SpeciesHandlers
	Sequences *SequenceHandlers
	Dashboard *DashboardHandlers

	// AuthService backs the bearer-token middleware.
	AuthService *auth.Service
}

// NewRouter assembles the gin engine. Reads on the entity collections are
// public; writes and session endpoints require a bearer token.
func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/register", s.Auth.Register)
	r.POST("/auth/login", s.Auth.Login)

	authed := r.Group("/")
	authed.Use(RequireAuth(s.AuthService))
	{
		authed.GET("/auth/session", s.Auth.Session)
		authed.POST("/auth/logout", s.Auth.Logout)
		authed.POST("/species", s.Species.Create)
		authed.POST("/genetic-sequences", s.Sequences.Create)
	}

	r.GET("/species", s.Species.List)
	r.GET("/genetic-sequences", s.Sequences.List)
	r.GET("/dashboard/stats", s.Dashboard.Stats)

	return r
}
