package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/letter"
	"github.com/innova67/cartas-vencimiento/internal/model"
	"github.com/innova67/cartas-vencimiento/internal/store"
)

// BuildLettersRequest solicitud de generación de lote
type BuildLettersRequest struct {
	// RecordIDs registros a incluir; vacío usa la cartera completa
	RecordIDs []string `json:"recordIds"`
}

// rejectedRecord un registro excluido del lote con sus motivos
type rejectedRecord struct {
	RecordID  string   `json:"recordId"`
	RowNo     int      `json:"rowNo"`
	Asegurado string   `json:"asegurado"`
	NoPoliza  string   `json:"noPoliza"`
	Errors    []string `json:"errors"`
}

type buildLettersResponse struct {
	Letters  []*model.Letter   `json:"letters"`
	Stats    model.LetterStats `json:"stats"`
	Rejected []rejectedRecord  `json:"rejected"`
}

// BuildLetters genera el lote de cartas a partir de la cartera. Los
// registros que no pasan la validación mínima se excluyen y se devuelven
// con sus motivos; el lote anterior se reemplaza completo.
// POST /api/letters/build
func (h *Handler) BuildLetters(c *gin.Context) {
	var req BuildLettersRequest
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
			return
		}
	}

	var records []*model.InsuranceRecord
	var err error
	if len(req.RecordIDs) > 0 {
		records, err = h.store.GetRecordsByIDs(req.RecordIDs)
	} else {
		records, err = h.store.ListRecords(store.RecordQueryOptions{})
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay registros para generar cartas"})
		return
	}

	valid := make([]*model.InsuranceRecord, 0, len(records))
	rejected := []rejectedRecord{}
	for _, r := range records {
		result := letter.ValidateRecord(r)
		if !result.Valid {
			rejected = append(rejected, rejectedRecord{
				RecordID:  r.ID,
				RowNo:     r.RowNo,
				Asegurado: r.Asegurado,
				NoPoliza:  r.NoPoliza,
				Errors:    result.Errors,
			})
			continue
		}
		valid = append(valid, r)
	}

	letters := letter.GroupRecords(valid, letter.GroupOptions{
		DefaultCurrency: h.defaultCurrency,
	})
	h.letters.SetLetters(letters)

	c.JSON(http.StatusOK, buildLettersResponse{
		Letters:  h.letters.List(),
		Stats:    h.letters.Stats(),
		Rejected: rejected,
	})
}

type listLettersResponse struct {
	Items []*model.Letter   `json:"items"`
	Stats model.LetterStats `json:"stats"`
}

// ListLetters devuelve el lote actual en orden de generación
// GET /api/letters
func (h *Handler) ListLetters(c *gin.Context) {
	c.JSON(http.StatusOK, listLettersResponse{
		Items: h.letters.List(),
		Stats: h.letters.Stats(),
	})
}

// GetLetter devuelve una carta por ID
// GET /api/letters/:id
func (h *Handler) GetLetter(c *gin.Context) {
	l, ok := h.letters.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carta no encontrada"})
		return
	}
	c.JSON(http.StatusOK, l)
}
