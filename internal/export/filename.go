package export

import (
	"fmt"
	"time"

	"github.com/innova67/cartas-vencimiento/internal/format"
	"github.com/innova67/cartas-vencimiento/internal/model"
)

// GenerateFileName construye el nombre de archivo de una carta:
// "20250502-AVISO_VCMTO_JUAN_PEREZ.pdf". El prefijo depende de la
// plantilla y el nombre del cliente va saneado para el sistema de
// archivos.
func GenerateFileName(clientName string, templateType model.TemplateType, now time.Time) string {
	typePrefix := "VCMTO"
	if templateType == model.TemplateSalud {
		typePrefix = "SALUD"
	}
	return fmt.Sprintf("%s-AVISO_%s_%s.pdf",
		format.FormatDateCompact(now), typePrefix, format.SanitizeClientName(clientName))
}

// BundleFileName nombre del archivo ZIP del lote: "Cartas_Vencimiento_2025-05-02.zip"
func BundleFileName(now time.Time) string {
	return fmt.Sprintf("Cartas_Vencimiento_%s.zip", now.Format("2006-01-02"))
}
