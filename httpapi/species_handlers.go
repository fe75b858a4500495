package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marinedata/species"
)

// SpeciesHandlers exposes the species listing and write endpoints.
type SpeciesHandlers struct {
	svc *species.Service
	log *slog.Logger
}

func NewSpeciesHandlers(svc *species.Service, log *slog.Logger) *SpeciesHandlers {
	if log == nil {
		log = slog.Default()
	}
	return &SpeciesHandlers{svc: svc, log: log}
}

// List handles GET /species. Absent query parameters impose no constraint.
func (h *SpeciesHandlers) List(c *gin.Context) {
	filters := species.Filters{
		Search:             c.Query("search"),
		Genus:              c.Query("genus"),
		Family:             c.Query("family"),
		MarineZone:         species.MarineZone(c.Query("marineZone")),
		ConservationStatus: species.ConservationStatus(c.Query("conservationStatus")),
		Page:               queryInt(c, "page"),
		Limit:              queryInt(c, "limit"),
	}

	result, err := h.svc.List(c.Request.Context(), filters)
	if err != nil {
		// Listing paths have no fallback; store failures surface as opaque 500s.
		h.log.Error("species list failed", "err", err)
		writeError(c, http.StatusInternalServerError, genericServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"species":    result.Items,
		"pagination": result.Meta,
	})
}

type createSpeciesRequest struct {
	ScientificName     string `json:"scientificName"`
	CommonName         string `json:"commonName"`
	Genus              string `json:"genus"`
	Family             string `json:"family"`
	MarineZone         string `json:"marineZone"`
	ConservationStatus string `json:"conservationStatus"`
	Description        string `json:"description"`
}

// Create handles POST /species.
func (h *SpeciesHandlers) Create(c *gin.Context) {
	var req createSpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), species.CreateParams{
		ScientificName:     req.ScientificName,
		CommonName:         req.CommonName,
		Genus:              req.Genus,
		Family:             req.Family,
		MarineZone:         species.MarineZone(req.MarineZone),
		ConservationStatus: species.ConservationStatus(req.ConservationStatus),
		Description:        req.Description,
	})
	if err != nil {
		if errors.Is(err, species.ErrMissingScientificName) {
			writeError(c, http.StatusBadRequest, "Scientific name is required")
			return
		}
		h.log.Error("species create failed", "err", err)
		writeError(c, http.StatusInternalServerError, genericServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"species": rec})
}

func queryInt(c *gin.Context, key string) int {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
