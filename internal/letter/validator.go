package letter

import (
	"strings"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// ValidateRecord verifica que un registro tenga los datos mínimos para
// generar carta. Devuelve los motivos de rechazo en el orden de los
// chequeos; un registro inválido se excluye del agrupado pero sus motivos
// se muestran al operador.
func ValidateRecord(r *model.InsuranceRecord) model.ValidationResult {
	var errors []string

	if len(strings.TrimSpace(r.Asegurado)) < 2 {
		errors = append(errors, "Nombre del asegurado requerido")
	}
	if len(strings.TrimSpace(r.NoPoliza)) < 2 {
		errors = append(errors, "Número de póliza requerido")
	}
	if len(strings.TrimSpace(r.Compania)) < 2 {
		errors = append(errors, "Compañía aseguradora requerida")
	}
	if len(strings.TrimSpace(r.Ramo)) < 2 {
		errors = append(errors, "Ramo del seguro requerido")
	}
	if strings.TrimSpace(r.FinDeVigencia) == "" {
		errors = append(errors, "Fecha de vencimiento requerida")
	}
	if len(strings.TrimSpace(r.Ejecutivo)) < 2 {
		errors = append(errors, "Ejecutivo responsable requerido")
	}

	return model.ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}
