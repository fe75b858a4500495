package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marinedata/gensequence"
)

// SequenceHandlers exposes the genetic-sequence listing and write endpoints.
type SequenceHandlers struct {
	svc *gensequence.Service
	log *slog.Logger
}

func NewSequenceHandlers(svc *gensequence.Service, log *slog.Logger) *SequenceHandlers {
	if log == nil {
		log = slog.Default()
	}
	return &SequenceHandlers{svc: svc, log: log}
}

// List handles GET /genetic-sequences. Items never include the sequence blob.
func (h *SequenceHandlers) List(c *gin.Context) {
	filters := gensequence.Filters{
		Organism:     c.Query("organism"),
		Gene:         c.Query("gene"),
		SequenceType: gensequence.SequenceType(c.Query("sequenceType")),
		Page:         queryInt(c, "page"),
		Limit:        queryInt(c, "limit"),
	}

	result, err := h.svc.List(c.Request.Context(), filters)
	if err != nil {
		h.log.Error("sequence list failed", "err", err)
		writeError(c, http.StatusInternalServerError, genericServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sequences":  result.Items,
		"pagination": result.Meta,
	})
}

type createSequenceRequest struct {
	Organism     string `json:"organism"`
	Gene         string `json:"gene"`
	SequenceType string `json:"sequenceType"`
	Sequence     string `json:"sequence"`
	Description  string `json:"description"`
}

// Create handles POST /genetic-sequences.
func (h *SequenceHandlers) Create(c *gin.Context) {
	var req createSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), gensequence.CreateParams{
		Organism:     req.Organism,
		Gene:         req.Gene,
		SequenceType: gensequence.SequenceType(req.SequenceType),
		Sequence:     req.Sequence,
		Description:  req.Description,
	})
	if err != nil {
		if errors.Is(err, gensequence.ErrMissingFields) {
			writeError(c, http.StatusBadRequest, "Organism and gene are required")
			return
		}
		h.log.Error("sequence create failed", "err", err)
		writeError(c, http.StatusInternalServerError, genericServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sequence": rec})
}
