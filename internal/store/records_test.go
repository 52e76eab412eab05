package store

import (
	"path/filepath"
	"testing"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "cartas.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleRecords() []*model.InsuranceRecord {
	return []*model.InsuranceRecord{
		{
			ID: "r1", Asegurado: "Juan Pérez", NoPoliza: "AUT-001",
			Compania: "Alianza Seguros", Ramo: "Automotores",
			FinDeVigencia: "2025-06-15", ValorAsegurado: 15000, Prima: 420,
			Ejecutivo: "María Rojas", SourceFile: "cartera.xlsx", RowNo: 2,
		},
		{
			ID: "r2", Asegurado: "Ana Gómez", NoPoliza: "SAL-001",
			Compania: "Nacional Vida", Ramo: "SALUD",
			FinDeVigencia: "2025-07-01", Prima: 300,
			Ejecutivo: "María Rojas", SourceFile: "cartera.xlsx", RowNo: 3,
		},
		{
			ID: "r3", Asegurado: "Carlos Gómez", NoPoliza: "INC-009",
			Compania: "La Boliviana", Ramo: "Incendio",
			FinDeVigencia: "2025-08-20", ValorAsegurado: 80000, Prima: 900,
			Ejecutivo: "Pedro Salas", SourceFile: "cartera.xlsx", RowNo: 4,
		},
	}
}

func TestBatchInsertAndList(t *testing.T) {
	st := newTestStore(t)

	if err := st.BatchInsertRecords(sampleRecords()); err != nil {
		t.Fatalf("batch insert: %v", err)
	}

	count, err := st.CountRecords()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 records, got %d", count)
	}

	records, err := st.ListRecords(RecordQueryOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	// El orden de ingesta se conserva
	if records[0].ID != "r1" || records[2].ID != "r3" {
		t.Fatalf("unexpected order: %s, %s", records[0].ID, records[2].ID)
	}
	if records[0].Asegurado != "Juan Pérez" || records[0].Prima != 420 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestListRecords_Keyword(t *testing.T) {
	st := newTestStore(t)
	if err := st.BatchInsertRecords(sampleRecords()); err != nil {
		t.Fatalf("batch insert: %v", err)
	}

	records, err := st.ListRecords(RecordQueryOptions{Keyword: "Gómez"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	records, err = st.ListRecords(RecordQueryOptions{Keyword: "SAL-001"})
	if err != nil {
		t.Fatalf("list by policy: %v", err)
	}
	if len(records) != 1 || records[0].ID != "r2" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestGetRecordsByIDs(t *testing.T) {
	st := newTestStore(t)
	if err := st.BatchInsertRecords(sampleRecords()); err != nil {
		t.Fatalf("batch insert: %v", err)
	}

	// Se consulta fuera de orden; los resultados vuelven en orden de ingesta
	records, err := st.GetRecordsByIDs([]string{"r3", "r1"})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "r1" || records[1].ID != "r3" {
		t.Fatalf("unexpected order: %s, %s", records[0].ID, records[1].ID)
	}

	records, err = st.GetRecordsByIDs(nil)
	if err != nil {
		t.Fatalf("get by empty ids: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestClearRecords(t *testing.T) {
	st := newTestStore(t)
	if err := st.BatchInsertRecords(sampleRecords()); err != nil {
		t.Fatalf("batch insert: %v", err)
	}

	if err := st.ClearRecords(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	count, err := st.CountRecords()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d", count)
	}
}

func TestImportLogLifecycle(t *testing.T) {
	st := newTestStore(t)

	id, err := st.StartImportLog("cartera.xlsx", 2048)
	if err != nil {
		t.Fatalf("start log: %v", err)
	}

	if err := st.FinishImportLog(id, 10, 8, 2, ImportStatusCompleted, ""); err != nil {
		t.Fatalf("finish log: %v", err)
	}

	last, err := st.LastImport()
	if err != nil {
		t.Fatalf("last import: %v", err)
	}
	if last == nil {
		t.Fatal("expected an import log")
	}
	if last.Filename != "cartera.xlsx" || last.ImportedRows != 8 || last.Status != ImportStatusCompleted {
		t.Fatalf("unexpected log: %+v", last)
	}
	if last.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}
}

func TestLastImport_Empty(t *testing.T) {
	st := newTestStore(t)

	last, err := st.LastImport()
	if err != nil {
		t.Fatalf("last import: %v", err)
	}
	if last != nil {
		t.Fatalf("expected nil log, got %+v", last)
	}
}
