package format

import (
	"fmt"
	"strings"
	"time"
)

// Nombres de mes según el locale es-BO
var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Formatos de fecha que puede traer la columna de vencimiento del Excel
var expiryLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// FormatDateLong formatea una fecha para el cuerpo de la carta: "2 de mayo de 2025"
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatDateCompact formatea una fecha para nombres de archivo: "20250502"
func FormatDateCompact(t time.Time) string {
	return t.Format("20060102")
}

// ParseExpiryDate interpreta la fecha de vencimiento tal como viene del archivo.
// Devuelve false si no coincide con ninguno de los formatos conocidos.
func ParseExpiryDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatExpiryDate formatea la fecha de vencimiento para la carta.
// Si el valor no es interpretable se conserva tal cual: mejor mostrar el
// dato crudo que perderlo.
func FormatExpiryDate(raw string) string {
	if t, ok := ParseExpiryDate(raw); ok {
		return FormatDateLong(t)
	}
	return strings.TrimSpace(raw)
}
