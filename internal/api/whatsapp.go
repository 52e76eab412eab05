package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/handoff"
)

// GetWhatsAppHandoff arma la entrega por WhatsApp de una carta
// GET /api/letters/:id/whatsapp
func (h *Handler) GetWhatsAppHandoff(c *gin.Context) {
	l, ok := h.letters.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carta no encontrada"})
		return
	}

	wa, ok := handoff.Build(l, h.countryCode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El cliente no tiene teléfono registrado"})
		return
	}

	c.JSON(http.StatusOK, wa)
}
