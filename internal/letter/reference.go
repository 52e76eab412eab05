package letter

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ReferencePrefix prefijo fijo de los números de referencia de la corredora
	ReferencePrefix = "SCPSA-"
	// ReferencePlaceholder marcador que el operador reemplaza a mano.
	// Mientras siga presente, la carta se reporta como dato faltante.
	ReferencePlaceholder = "____"
)

// GenerateReferenceNumber construye el número de referencia de una carta:
// "SCPSA-____/2025". El marcador nunca se completa automáticamente.
func GenerateReferenceNumber(now time.Time) string {
	return fmt.Sprintf("%s%s/%d", ReferencePrefix, ReferencePlaceholder, now.Year())
}

// HasManualReference indica si la referencia todavía tiene el marcador manual
func HasManualReference(reference string) bool {
	return strings.Contains(reference, ReferencePlaceholder)
}
