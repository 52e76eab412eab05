package render

import (
	"fmt"
	"strings"

	"github.com/innova67/cartas-vencimiento/internal/format"
	"github.com/innova67/cartas-vencimiento/internal/model"
)

// TextRenderer render de texto plano de la carta. Es el backend por
// defecto del servicio; la maquetación PDF corre por cuenta del
// colaborador externo que se conecte en su lugar.
type TextRenderer struct{}

// NewTextRenderer crea el render de texto
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// ContentType tipo MIME del documento
func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render arma el cuerpo completo de la carta de aviso de vencimiento
func (r *TextRenderer) Render(l *model.Letter) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Ref.: %s\n", l.ReferenceNumber)
	fmt.Fprintf(&b, "La Paz, %s\n\n", l.Date)

	fmt.Fprintf(&b, "Señor(a)\n%s\n", l.Client.Name)
	if l.Client.Address != "" {
		fmt.Fprintf(&b, "%s\n", l.Client.Address)
	}
	b.WriteString("Presente.-\n\n")

	b.WriteString("Ref.: AVISO DE VENCIMIENTO DE POLIZA\n\n")
	b.WriteString("De nuestra mayor consideración:\n\n")
	fmt.Fprintf(&b, "Por medio de la presente le recordamos el próximo vencimiento de la(s) siguiente(s) póliza(s):\n\n")

	for i, p := range l.Policies {
		fmt.Fprintf(&b, "Póliza %d\n", i+1)
		fmt.Fprintf(&b, "  No. de Póliza:    %s\n", p.PolicyNumber)
		fmt.Fprintf(&b, "  Compañía:         %s\n", p.Company)
		fmt.Fprintf(&b, "  Ramo:             %s\n", p.Branch)
		fmt.Fprintf(&b, "  Fin de vigencia:  %s\n", p.ExpiryDate)
		fmt.Fprintf(&b, "  Valor asegurado:  %s\n", amountOrPlaceholder(p.ManualFields.InsuredValue, format.FormatUSD))
		fmt.Fprintf(&b, "  Prima:            %s\n", amountOrPlaceholder(p.ManualFields.Premium, format.FormatBs))

		if l.TemplateType == model.TemplateSalud {
			fmt.Fprintf(&b, "  Prima de renovación anual: %s\n", amountOrPlaceholder(p.ManualFields.RenewalPremium, format.FormatUSD))
			if len(p.ManualFields.InsuredMembers) > 0 {
				b.WriteString("  Asegurados:\n")
				for _, member := range p.ManualFields.InsuredMembers {
					fmt.Fprintf(&b, "    - %s\n", member)
				}
			}
		} else {
			if matter := strings.TrimSpace(p.ManualFields.InsuredMatter); matter != "" {
				fmt.Fprintf(&b, "  Materia asegurada: %s\n", matter)
			}
			fmt.Fprintf(&b, "  Deducibles:       %s\n",
				amountWithCurrency(p.ManualFields.Deductibles, p.ManualFields.DeductiblesCurrency))
			fmt.Fprintf(&b, "  Extraterritorialidad: %s\n",
				amountWithCurrency(p.ManualFields.Territoriality, p.ManualFields.TerritorialityCurrency))
			if cond := strings.TrimSpace(p.ManualFields.SpecificConditions); cond != "" {
				fmt.Fprintf(&b, "  Condiciones específicas: %s\n", cond)
			}
		}
		b.WriteString("\n")
	}

	if l.AdditionalConditions != "" {
		b.WriteString(l.AdditionalConditions)
		b.WriteString("\n\n")
	}

	b.WriteString("Agradecemos su confirmación para gestionar la renovación correspondiente.\n\n")
	b.WriteString("Atentamente,\n\n")
	fmt.Fprintf(&b, "%s\n", l.Executive)
	b.WriteString("Ejecutivo de Cuentas\n")

	return []byte(b.String()), nil
}

func amountOrPlaceholder(amount float64, formatFn func(float64) string) string {
	if amount <= 0 {
		return format.NotSpecified
	}
	return formatFn(amount)
}

func amountWithCurrency(amount float64, currency string) string {
	if amount <= 0 {
		return format.NotSpecified
	}
	return format.FormatWithCurrency(amount, currency)
}
