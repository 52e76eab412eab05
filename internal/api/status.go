package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// StatusResponse estado del sistema
type StatusResponse struct {
	Initialized    bool              `json:"initialized"`    // hay cartera importada
	TotalRecords   int               `json:"totalRecords"`   // registros de cartera
	LettersInBatch int               `json:"lettersInBatch"` // cartas del lote actual
	LetterStats    model.LetterStats `json:"letterStats"`
	LastImport     *model.ImportLog  `json:"lastImport,omitempty"`
}

// GetStatus estado del sistema
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountRecords()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Initialized: false})
		return
	}

	lastImport, err := h.store.LastImport()
	if err != nil {
		lastImport = nil
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    count > 0,
		TotalRecords:   count,
		LettersInBatch: h.letters.Count(),
		LetterStats:    h.letters.Stats(),
		LastImport:     lastImport,
	})
}
