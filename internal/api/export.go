package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/export"
)

const zipContentType = "application/zip"

// DownloadLetterDocument genera y descarga el documento de una carta
// GET /api/letters/:id/document
func (h *Handler) DownloadLetterDocument(c *gin.Context) {
	l, ok := h.letters.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carta no encontrada"})
		return
	}

	data, err := h.renderer.Render(l)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el documento: " + err.Error()})
		return
	}

	fileName := export.GenerateFileName(l.Client.Name, l.TemplateType, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, h.renderer.ContentType(), data)
}

// DownloadSummary descarga la planilla de control del lote
// GET /api/export/summary
func (h *Handler) DownloadSummary(c *gin.Context) {
	letters := h.letters.List()
	if len(letters) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay cartas generadas"})
		return
	}

	wb, err := export.BuildSummaryWorkbook(letters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="Control_Cartas.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

type exportProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// ExportStream exporta el lote completo en un ZIP (SSE de avance y
// enlace de descarga de un solo uso al terminar)
// POST /api/export/stream
func (h *Handler) ExportStream(c *gin.Context) {
	letters := h.letters.List()
	if len(letters) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay cartas generadas"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Respuesta en flujo no soportada"})
		return
	}

	send := func(event exportProgressEvent) {
		b, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}

	send(exportProgressEvent{
		Type:      "start",
		Message:   "Iniciando exportación",
		Data:      map[string]any{"letters": len(letters)},
		Timestamp: time.Now(),
	})

	now := time.Now()
	files := make([]export.BundleFile, 0, len(letters)+1)
	for i, l := range letters {
		data, err := h.renderer.Render(l)
		if err != nil {
			send(exportProgressEvent{
				Type:      "error",
				Message:   fmt.Sprintf("No se pudo generar la carta de %s: %v", l.Client.Name, err),
				Data:      map[string]any{},
				Timestamp: time.Now(),
			})
			return
		}
		files = append(files, export.BundleFile{
			Name: export.GenerateFileName(l.Client.Name, l.TemplateType, now),
			Data: data,
		})

		send(exportProgressEvent{
			Type:      "progress",
			Message:   l.Client.Name,
			Data:      map[string]any{"percent": (i + 1) * 100 / (len(letters) + 1)},
			Timestamp: time.Now(),
		})
	}

	// La planilla de control viaja dentro del mismo ZIP
	wb, err := export.BuildSummaryWorkbook(letters)
	if err == nil {
		if buf, werr := wb.WriteToBuffer(); werr == nil {
			files = append(files, export.BundleFile{Name: "Control_Cartas.xlsx", Data: buf.Bytes()})
		}
	}

	zipData, err := export.BuildZip(files)
	if err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "No se pudo armar el ZIP: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		return
	}

	token := h.downloads.put(export.BundleFileName(now), zipContentType, zipData, 10*time.Minute)
	downloadURL := fmt.Sprintf("/api/export/download/%s", token)

	send(exportProgressEvent{
		Type:    "done",
		Message: "Exportación completada",
		Data: map[string]any{
			"percent":     100,
			"downloadUrl": downloadURL,
		},
		Timestamp: time.Now(),
	})
}

// DownloadExport descarga el ZIP exportado (un solo uso)
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el token"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "El enlace de descarga expiró"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.fileName))
	c.Data(http.StatusOK, item.contentType, item.data)

	h.downloads.delete(token)
}
