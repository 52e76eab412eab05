package export

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

func TestGenerateFileName(t *testing.T) {
	now := time.Date(2025, 5, 2, 15, 30, 0, 0, time.UTC)

	got := GenerateFileName("María López", model.TemplateSalud, now)
	if got != "20250502-AVISO_SALUD_MARÍA_LÓPEZ.pdf" {
		t.Errorf("salud filename = %q", got)
	}

	got = GenerateFileName("Juan Pérez", model.TemplateGeneral, now)
	if got != "20250502-AVISO_VCMTO_JUAN_PÉREZ.pdf" {
		t.Errorf("general filename = %q", got)
	}
}

func TestBundleFileName(t *testing.T) {
	now := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	if got := BundleFileName(now); got != "Cartas_Vencimiento_2025-05-02.zip" {
		t.Errorf("BundleFileName = %q", got)
	}
}

func TestBuildZip_RoundTrip(t *testing.T) {
	files := []BundleFile{
		{Name: "a.txt", Data: []byte("uno")},
		{Name: "b.txt", Data: []byte("dos")},
	}

	data, err := BuildZip(files)
	if err != nil {
		t.Fatalf("BuildZip: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if len(r.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(r.File))
	}

	rc, err := r.File[0].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	content, _ := io.ReadAll(rc)
	if string(content) != "uno" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestBuildZip_DuplicateNames(t *testing.T) {
	files := []BundleFile{
		{Name: "carta.pdf", Data: []byte("primera")},
		{Name: "carta.pdf", Data: []byte("segunda")},
	}

	data, err := BuildZip(files)
	if err != nil {
		t.Fatalf("BuildZip: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	names := map[string]bool{}
	for _, f := range r.File {
		if names[f.Name] {
			t.Fatalf("duplicate entry name: %q", f.Name)
		}
		names[f.Name] = true
	}
	if !names["carta.pdf"] || !names["2_carta.pdf"] {
		t.Fatalf("unexpected entry names: %v", names)
	}
}

func TestBuildSummaryWorkbook(t *testing.T) {
	letters := []*model.Letter{
		{
			ID:              "l1",
			TemplateType:    model.TemplateSalud,
			ReferenceNumber: "SCPSA-____/2025",
			Client:          model.Client{Name: "Ana Gómez"},
			Policies:        []model.Policy{{PolicyNumber: "SAL-001"}},
			Executive:       "María Rojas",
			NeedsReview:     true,
			MissingData:     []string{"Número de Referencia manual"},
		},
	}

	wb, err := BuildSummaryWorkbook(letters)
	if err != nil {
		t.Fatalf("BuildSummaryWorkbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Cartas")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[1][0] != "Ana Gómez" {
		t.Fatalf("unexpected client cell: %q", rows[1][0])
	}
	if rows[1][5] != "Sí" {
		t.Fatalf("unexpected review cell: %q", rows[1][5])
	}
}
