// Package handoff arma los datos para entregar una carta por un canal de
// mensajería: número limpio, mensaje compuesto y enlace wa.me. El envío
// en sí corre por el dispositivo del operador.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// DefaultCountryCode prefijo telefónico de Bolivia
const DefaultCountryCode = "591"

// WhatsAppHandoff datos listos para abrir la conversación
type WhatsAppHandoff struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// CleanPhone deja solo dígitos y antepone el código de país cuando el
// número viene en formato local (8 dígitos). Devuelve vacío si no hay
// número utilizable.
func CleanPhone(raw, countryCode string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	if phone == "" {
		return ""
	}
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	if len(phone) == 8 && !strings.HasPrefix(phone, countryCode) {
		phone = countryCode + phone
	}
	return phone
}

// ComposeMessage arma el texto del aviso para mensajería
func ComposeMessage(l *model.Letter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Estimado(a) %s,\n\n", l.Client.Name)
	if len(l.Policies) == 1 {
		fmt.Fprintf(&b, "Le recordamos el próximo vencimiento de su póliza %s (%s) el %s.\n",
			l.Policies[0].PolicyNumber, l.Policies[0].Branch, l.Policies[0].ExpiryDate)
	} else {
		fmt.Fprintf(&b, "Le recordamos el próximo vencimiento de sus %d pólizas:\n", len(l.Policies))
		for _, p := range l.Policies {
			fmt.Fprintf(&b, "- %s (%s): vence el %s\n", p.PolicyNumber, p.Branch, p.ExpiryDate)
		}
	}
	fmt.Fprintf(&b, "\nPor favor contáctenos para coordinar la renovación.\n\nAtentamente,\n%s", l.Executive)

	return b.String()
}

// Build arma la entrega completa de una carta. Devuelve false si el
// cliente no tiene teléfono utilizable.
func Build(l *model.Letter, countryCode string) (WhatsAppHandoff, bool) {
	phone := CleanPhone(l.Client.Phone, countryCode)
	if phone == "" {
		return WhatsAppHandoff{}, false
	}

	message := ComposeMessage(l)
	return WhatsAppHandoff{
		Phone:   phone,
		Message: message,
		URL:     fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message)),
	}, true
}
