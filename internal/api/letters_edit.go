package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/store"
)

// UpdateLetter aplica una actualización parcial a una carta. Un ID que
// ya no existe (el lote fue regenerado) no es un error: se responde
// updated=false y la interfaz recarga el lote.
// PATCH /api/letters/:id
func (h *Handler) UpdateLetter(c *gin.Context) {
	var patch store.LetterPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}

	l, ok := h.letters.UpdateLetter(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true, "letter": l})
}

// policyFieldRequest edición puntual de un campo de póliza
type policyFieldRequest struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

// UpdatePolicyField reemplaza un campo editable de una póliza y devuelve
// la carta con el estado derivado recalculado
// PATCH /api/letters/:id/policies/:index
func (h *Handler) UpdatePolicyField(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Índice de póliza inválido"})
		return
	}

	var req policyFieldRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}

	l, err := h.letters.UpdatePolicyField(c.Param("id"), index, store.PolicyField(req.Field), req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if l == nil {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true, "letter": l})
}

// clientFieldRequest edición de un dato de contacto del cliente
type clientFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateClientField reemplaza un dato de contacto del cliente
// PATCH /api/letters/:id/client
func (h *Handler) UpdateClientField(c *gin.Context) {
	var req clientFieldRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}

	l, err := h.letters.UpdateClientField(c.Param("id"), store.ClientField(req.Field), req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if l == nil {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true, "letter": l})
}
