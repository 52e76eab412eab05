package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/model"
	"github.com/innova67/cartas-vencimiento/internal/store"
)

type listRecordsResponse struct {
	Items    []*model.InsuranceRecord `json:"items"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"pageSize"`
}

// ListRecords consulta la cartera importada
// GET /api/records
func (h *Handler) ListRecords(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))

	page := parseIntWithDefault(c.Query("page"), 1)
	pageSize := parseIntWithDefault(c.Query("pageSize"), 200)
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 200
	}
	if pageSize > 2000 {
		pageSize = 2000
	}

	total, err := h.store.CountRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := h.store.ListRecords(store.RecordQueryOptions{
		Keyword: keyword,
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listRecordsResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ClearRecords elimina la cartera importada y el lote de cartas
// POST /api/records/clear
func (h *Handler) ClearRecords(c *gin.Context) {
	if err := h.store.ClearRecords(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.letters.Clear()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func parseIntWithDefault(v string, d int) int {
	if v == "" {
		return d
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return i
}
