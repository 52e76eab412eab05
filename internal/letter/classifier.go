package letter

import (
	"strings"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// Palabras clave del ramo que dirigen un registro a la plantilla de salud
var healthKeywords = []string{"salud", "vida", "medic"}

// DetermineTemplateType clasifica un ramo en una de las dos plantillas.
// La comparación es por substring, sin distinguir mayúsculas; cualquier
// ramo que no coincida va a la plantilla general.
func DetermineTemplateType(ramo string) model.TemplateType {
	lower := strings.ToLower(ramo)
	for _, kw := range healthKeywords {
		if strings.Contains(lower, kw) {
			return model.TemplateSalud
		}
	}
	return model.TemplateGeneral
}
