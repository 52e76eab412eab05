package letter

import (
	"fmt"
	"strings"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// DetectMissingData enumera los datos faltantes de una carta en un orden
// estable: primero la referencia manual a nivel carta, después cada póliza
// en orden de lista con sus campos en el orden fijo de chequeo. Es una
// función pura: mismo estado de carta, misma lista.
func DetectMissingData(l *model.Letter) []string {
	var missing []string

	if HasManualReference(l.ReferenceNumber) {
		missing = append(missing, "Número de Referencia manual")
	}

	for i, p := range l.Policies {
		label := fmt.Sprintf("Póliza %d (%s)", i+1, p.PolicyNumber)
		mf := p.ManualFields

		if mf.InsuredValue <= 0 {
			missing = append(missing, label+": Valor Asegurado")
		}
		if mf.Premium <= 0 {
			missing = append(missing, label+": Prima")
		}

		if l.TemplateType == model.TemplateSalud {
			if mf.RenewalPremium <= 0 {
				missing = append(missing, label+": Prima de renovación anual")
			}
			continue
		}

		if strings.TrimSpace(mf.InsuredMatter) == "" {
			missing = append(missing, label+": Materia Asegurada")
		}
		if mf.Deductibles <= 0 {
			missing = append(missing, label+": Información de deducibles")
		}
		if mf.Territoriality <= 0 {
			missing = append(missing, label+": Información de extraterritorialidad")
		}
		if strings.TrimSpace(mf.SpecificConditions) == "" {
			missing = append(missing, label+": Condiciones específicas")
		}
	}

	return missing
}

// AnnotateInitial fija el estado derivado de una carta recién agrupada.
// Las cartas generales nacen marcadas para revisión aunque los chequeos
// pasen: arrancan con obligaciones de texto libre que ningún valor por
// defecto satisface.
func AnnotateInitial(l *model.Letter) {
	l.MissingData = DetectMissingData(l)
	l.NeedsReview = len(l.MissingData) > 0 || l.TemplateType == model.TemplateGeneral
}

// Reevaluate recalcula el estado derivado después de una edición. A
// diferencia del agrupado inicial, aquí solo manda la lista de faltantes:
// una carta general editada hasta quedar completa deja de pedir revisión.
func Reevaluate(l *model.Letter) {
	l.MissingData = DetectMissingData(l)
	l.NeedsReview = len(l.MissingData) > 0
}
