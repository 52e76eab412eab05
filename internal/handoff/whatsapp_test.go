package handoff

import (
	"strings"
	"testing"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

func TestCleanPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"71234567", "59171234567"},          // local de 8 dígitos
		{"(591) 712-34567", "59171234567"},   // con signos
		{"59171234567", "59171234567"},       // ya con código de país
		{"+591 71234567", "59171234567"},
		{"sin teléfono", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CleanPhone(tc.in, DefaultCountryCode); got != tc.want {
			t.Errorf("CleanPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuild(t *testing.T) {
	l := &model.Letter{
		Client: model.Client{Name: "Juan Pérez", Phone: "71234567"},
		Policies: []model.Policy{
			{PolicyNumber: "AUT-001", Branch: "Automotores", ExpiryDate: "15 de junio de 2025"},
		},
		Executive: "María Rojas",
	}

	wa, ok := Build(l, "591")
	if !ok {
		t.Fatal("expected handoff")
	}
	if wa.Phone != "59171234567" {
		t.Fatalf("phone = %q", wa.Phone)
	}
	if !strings.HasPrefix(wa.URL, "https://wa.me/59171234567?text=") {
		t.Fatalf("url = %q", wa.URL)
	}
	if !strings.Contains(wa.Message, "AUT-001") || !strings.Contains(wa.Message, "Juan Pérez") {
		t.Fatalf("message = %q", wa.Message)
	}
}

func TestBuild_NoPhone(t *testing.T) {
	l := &model.Letter{Client: model.Client{Name: "Juan Pérez"}}
	if _, ok := Build(l, "591"); ok {
		t.Fatal("expected no handoff without phone")
	}
}

func TestComposeMessage_MultiplePolicies(t *testing.T) {
	l := &model.Letter{
		Client: model.Client{Name: "Ana Gómez"},
		Policies: []model.Policy{
			{PolicyNumber: "AUT-001", Branch: "Automotores", ExpiryDate: "15 de junio de 2025"},
			{PolicyNumber: "INC-002", Branch: "Incendio", ExpiryDate: "1 de julio de 2025"},
		},
		Executive: "María Rojas",
	}

	msg := ComposeMessage(l)
	if !strings.Contains(msg, "sus 2 pólizas") {
		t.Fatalf("message = %q", msg)
	}
	if !strings.Contains(msg, "- AUT-001 (Automotores)") || !strings.Contains(msg, "- INC-002 (Incendio)") {
		t.Fatalf("message = %q", msg)
	}
}
