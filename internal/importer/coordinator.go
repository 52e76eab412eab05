package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/innova67/cartas-vencimiento/internal/store"
)

// Coordinator coordina una importación de cartera: parseo, persistencia
// y bitácora, reportando el avance por un canal de eventos.
type Coordinator struct {
	store *store.Store
}

// NewCoordinator crea el coordinador
func NewCoordinator(store *store.Store) *Coordinator {
	return &Coordinator{store: store}
}

// ImportOptions opciones de importación
type ImportOptions struct {
	FilePath      string
	ClearExisting bool // limpiar la cartera antes de importar
}

// ProgressEvent evento de avance de la importación
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Import ejecuta la importación y devuelve el canal de avance
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	filename := filepath.Base(opts.FilePath)

	send := func(eventType, message string, data interface{}) {
		progressChan <- ProgressEvent{
			Type:      eventType,
			Message:   message,
			Data:      data,
			Timestamp: time.Now(),
		}
	}

	send("start", "Iniciando importación de cartera", map[string]string{"filename": filename})

	var fileSize int64
	if info, err := os.Stat(opts.FilePath); err == nil {
		fileSize = info.Size()
	}

	logID, err := c.store.StartImportLog(filename, fileSize)
	if err != nil {
		send("error", fmt.Sprintf("No se pudo registrar la importación: %v", err), nil)
		return
	}

	fail := func(message string) {
		_ = c.store.FinishImportLog(logID, 0, 0, 0, store.ImportStatusFailed, message)
		send("error", message, nil)
	}

	f, err := os.Open(opts.FilePath)
	if err != nil {
		fail(fmt.Sprintf("No se pudo abrir el archivo: %v", err))
		return
	}
	defer f.Close()

	parser := NewParser()
	if err := parser.LoadFile(f); err != nil {
		fail(fmt.Sprintf("Archivo Excel inválido: %v", err))
		return
	}
	defer parser.Close()

	result, err := parser.Parse(filename)
	if err != nil {
		fail(fmt.Sprintf("No se reconoció el formato de cartera: %v", err))
		return
	}

	send("info", fmt.Sprintf("Hoja %q: %d filas leídas", result.Sheet, result.TotalRows),
		map[string]interface{}{"sheet": result.Sheet, "totalRows": result.TotalRows})

	if opts.ClearExisting {
		if err := c.store.ClearRecords(); err != nil {
			fail(fmt.Sprintf("No se pudo limpiar la cartera existente: %v", err))
			return
		}
		send("info", "Cartera existente eliminada", nil)
	}

	if err := c.store.BatchInsertRecords(result.Records); err != nil {
		fail(fmt.Sprintf("No se pudieron guardar los registros: %v", err))
		return
	}

	if err := c.store.FinishImportLog(logID, result.TotalRows, result.ParsedRows,
		result.SkippedRows, store.ImportStatusCompleted, ""); err != nil {
		send("error", fmt.Sprintf("No se pudo cerrar la bitácora: %v", err), nil)
		return
	}

	send("done", "Importación completada", map[string]interface{}{
		"totalRows":    result.TotalRows,
		"importedRows": result.ParsedRows,
		"skippedRows":  result.SkippedRows,
	})
}
