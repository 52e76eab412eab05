package render

import (
	"strings"
	"testing"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

func TestRender_SaludLetter(t *testing.T) {
	l := &model.Letter{
		TemplateType:    model.TemplateSalud,
		ReferenceNumber: "SCPSA-0042/2025",
		Date:            "2 de mayo de 2025",
		Client:          model.Client{Name: "Ana Gómez"},
		Policies: []model.Policy{
			{
				PolicyNumber: "SAL-001",
				Company:      "Nacional Vida",
				Branch:       "SALUD",
				ExpiryDate:   "1 de julio de 2025",
				ManualFields: model.ManualFields{
					Premium:        300,
					InsuredValue:   10000,
					RenewalPremium: 350,
					InsuredMembers: []string{"Ana Gómez", "Pedro Gómez"},
				},
			},
		},
		Executive: "María Rojas",
	}

	r := NewTextRenderer()
	data, err := r.Render(l)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(data)

	for _, want := range []string{
		"Ref.: SCPSA-0042/2025",
		"La Paz, 2 de mayo de 2025",
		"Ana Gómez",
		"SAL-001",
		"Prima de renovación anual: $us. 350,00",
		"- Pedro Gómez",
		"María Rojas",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q\n%s", want, body)
		}
	}
}

func TestRender_GeneralLetterPlaceholders(t *testing.T) {
	l := &model.Letter{
		TemplateType:    model.TemplateGeneral,
		ReferenceNumber: "SCPSA-____/2025",
		Date:            "2 de mayo de 2025",
		Client:          model.Client{Name: "Juan Pérez"},
		Policies: []model.Policy{
			{
				PolicyNumber: "AUT-001",
				Company:      "Alianza",
				Branch:       "Automotores",
				ExpiryDate:   "15 de junio de 2025",
				ManualFields: model.ManualFields{
					Premium:      420,
					InsuredValue: 15000,
					// Deducibles y extraterritorialidad sin dato
				},
			},
		},
		Executive:            "María Rojas",
		AdditionalConditions: "Condiciones adicionales de prueba",
	}

	r := NewTextRenderer()
	data, err := r.Render(l)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(data)

	// Los montos ausentes salen con el marcador, nunca en blanco
	if strings.Count(body, "No especificado") != 2 {
		t.Errorf("expected 2 placeholders, body:\n%s", body)
	}
	if !strings.Contains(body, "Condiciones adicionales de prueba") {
		t.Errorf("additional conditions missing:\n%s", body)
	}
	if !strings.Contains(body, "Prima:            Bs 420,00") {
		t.Errorf("premium line missing:\n%s", body)
	}
}

func TestTextRenderer_ContentType(t *testing.T) {
	r := NewTextRenderer()
	if got := r.ContentType(); got != "text/plain; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
}
