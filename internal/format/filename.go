package format

import (
	"regexp"
	"strings"
)

// Caracteres admitidos en el nombre de archivo: letras latinas (incluidas
// las acentuadas y la ñ) y espacios. Todo lo demás se elimina.
var fileNameAllowed = regexp.MustCompile(`[^a-zA-ZÀ-ÿñÑ\s]`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeClientName limpia un nombre de cliente para usarlo en nombres
// de archivo: elimina dígitos y signos, colapsa espacios internos a un
// guion bajo y pasa a mayúsculas.
func SanitizeClientName(name string) string {
	clean := fileNameAllowed.ReplaceAllString(name, "")
	clean = strings.TrimSpace(clean)
	clean = whitespaceRun.ReplaceAllString(clean, "_")
	return strings.ToUpper(clean)
}
