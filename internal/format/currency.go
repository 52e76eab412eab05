package format

import (
	"fmt"
	"math"
	"strings"
)

// NotSpecified texto que muestra la carta cuando falta un monto
const NotSpecified = "No especificado"

// FormatAmount formatea un monto con separadores del locale es-BO:
// punto para miles y coma para decimales ("12.345,67").
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NotSpecified
	}

	negative := amount < 0
	s := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(decPart)
	return b.String()
}

// FormatBs formatea un monto en bolivianos: "Bs 12.345,67"
func FormatBs(amount float64) string {
	if math.IsNaN(amount) {
		return NotSpecified
	}
	return "Bs " + FormatAmount(amount)
}

// FormatUSD formatea un monto en dólares: "$us. 12.345,67"
func FormatUSD(amount float64) string {
	if math.IsNaN(amount) {
		return NotSpecified
	}
	return "$us. " + FormatAmount(amount)
}

// FormatWithCurrency formatea un monto con su unidad monetaria ("Bs." o "$us.")
func FormatWithCurrency(amount float64, currency string) string {
	switch currency {
	case "$us.":
		return FormatUSD(amount)
	default:
		return FormatBs(amount)
	}
}
