// Package render define el contrato con el colaborador de generación de
// documentos. El núcleo garantiza que toda carta que llega aquí está
// completamente construida (con marcadores "No especificado" donde
// falten datos); la maquetación PDF final es un backend intercambiable.
package render

import "github.com/innova67/cartas-vencimiento/internal/model"

// Renderer produce el documento binario de una carta
type Renderer interface {
	// Render genera el documento de la carta. Lee un snapshot: el
	// llamador no debe mutar la carta mientras el render está en curso.
	Render(l *model.Letter) ([]byte, error)
	// ContentType tipo MIME del documento generado
	ContentType() string
}
