package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marinedata/dashboard"
)

// DashboardHandlers exposes the aggregate statistics endpoint.
type DashboardHandlers struct {
	svc *dashboard.Service
	log *slog.Logger
}

func NewDashboardHandlers(svc *dashboard.Service, log *slog.Logger) *DashboardHandlers {
	if log == nil {
		log = slog.Default()
	}
	return &DashboardHandlers{svc: svc, log: log}
}

// Stats handles GET /dashboard/stats. The resilience wrapper guarantees a
// snapshot, so this path is always success-shaped.
func (h *DashboardHandlers) Stats(c *gin.Context) {
	snap, source := h.svc.GetStats(c.Request.Context())
	if source == dashboard.SourceFallback {
		h.log.Info("dashboard stats served from fallback")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    snap,
	})
}
