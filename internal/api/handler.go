package api

import (
	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/model"
	"github.com/innova67/cartas-vencimiento/internal/render"
	"github.com/innova67/cartas-vencimiento/internal/store"
)

// Options parámetros del API
type Options struct {
	// DefaultCurrency moneda inicial de deducibles/extraterritorialidad
	DefaultCurrency string
	// CountryCode prefijo telefónico para la entrega por WhatsApp
	CountryCode string
	// Renderer backend de documentos; nil usa el render de texto
	Renderer render.Renderer
}

// Handler procesador del API HTTP
type Handler struct {
	store           *store.Store
	letters         *store.LetterStore
	renderer        render.Renderer
	downloads       *exportDownloadStore
	defaultCurrency string
	countryCode     string
}

// NewHandler crea el procesador del API
func NewHandler(st *store.Store, opts Options) *Handler {
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = model.CurrencyBs
	}
	if opts.CountryCode == "" {
		opts.CountryCode = "591"
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewTextRenderer()
	}

	return &Handler{
		store:           st,
		letters:         store.NewLetterStore(),
		renderer:        opts.Renderer,
		downloads:       newExportDownloadStore(),
		defaultCurrency: opts.DefaultCurrency,
		countryCode:     opts.CountryCode,
	}
}

// RegisterRoutes registra las rutas del API
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Estado del sistema
	router.GET("/status", h.GetStatus)

	// Importación de cartera
	router.POST("/import", h.Import)

	// Registros de cartera
	router.GET("/records", h.ListRecords)
	router.POST("/records/clear", h.ClearRecords)

	// Generación de cartas
	router.POST("/letters/build", h.BuildLetters)
	router.GET("/letters", h.ListLetters)
	router.GET("/letters/:id", h.GetLetter)

	// Edición de cartas
	router.PATCH("/letters/:id", h.UpdateLetter)
	router.PATCH("/letters/:id/policies/:index", h.UpdatePolicyField)
	router.PATCH("/letters/:id/client", h.UpdateClientField)

	// Entrega y exportación
	router.GET("/letters/:id/document", h.DownloadLetterDocument)
	router.GET("/letters/:id/whatsapp", h.GetWhatsAppHandoff)
	router.GET("/export/summary", h.DownloadSummary)
	router.POST("/export/stream", h.ExportStream)
	router.GET("/export/download/:token", h.DownloadExport)
}
