package model

import "time"

// InsuranceRecord registro de cartera tal como se ingesta desde el Excel.
// Es inmutable para el núcleo: las cartas trabajan sobre copias editables
// (ver ManualFields), nunca sobre el registro original.
type InsuranceRecord struct {
	ID               string  `json:"id"`
	Asegurado        string  `json:"asegurado"`     // nombre del cliente
	NoPoliza         string  `json:"noPoliza"`      // número de póliza
	Compania         string  `json:"compania"`      // aseguradora emisora
	Ramo             string  `json:"ramo"`          // ramo / categoría de cobertura
	FinDeVigencia    string  `json:"finDeVigencia"` // fecha de vencimiento, como viene del archivo
	ValorAsegurado   float64 `json:"valorAsegurado"`
	Prima            float64 `json:"prima"`
	MateriaAsegurada string  `json:"materiaAsegurada"`
	Beneficiario     string  `json:"beneficiario"` // asegurado dependiente (solo salud), puede venir vacío
	Telefono         string  `json:"telefono"`
	Correo           string  `json:"correo"`
	Ejecutivo        string  `json:"ejecutivo"` // ejecutivo responsable de la cuenta

	// Metadatos de ingesta
	SourceFile string    `json:"sourceFile"`
	RowNo      int       `json:"rowNo"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ValidationResult resultado de validar un registro antes de generar carta
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ImportLog registro de una importación de cartera
type ImportLog struct {
	ID           int64      `json:"id"`
	Filename     string     `json:"filename"`
	FileSize     int64      `json:"fileSize"`
	TotalRows    int        `json:"totalRows"`
	ImportedRows int        `json:"importedRows"`
	SkippedRows  int        `json:"skippedRows"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt"`
}
