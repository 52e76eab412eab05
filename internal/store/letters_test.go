package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

func seedLetter() *model.Letter {
	return &model.Letter{
		ID:              "l1",
		TemplateType:    model.TemplateGeneral,
		ReferenceNumber: "SCPSA-____/2025",
		Client:          model.Client{Name: "Juan Pérez", Phone: "70000000"},
		Policies: []model.Policy{
			{
				PolicyNumber: "AUT-001",
				ManualFields: model.ManualFields{
					Premium:                420,
					OriginalPremium:        420,
					InsuredValue:           15000,
					OriginalInsuredValue:   15000,
					InsuredMatter:          "Toyota Corolla 2022",
					OriginalInsuredMatter:  "Toyota Corolla 2022",
					DeductiblesCurrency:    model.CurrencyBs,
					TerritorialityCurrency: model.CurrencyBs,
				},
			},
		},
		Executive:   "María Rojas",
		NeedsReview: true,
	}
}

func newSeededLetterStore() *LetterStore {
	s := NewLetterStore()
	s.SetLetters([]*model.Letter{seedLetter()})
	return s
}

func TestLetterStore_CloneIsolation(t *testing.T) {
	s := newSeededLetterStore()

	l, ok := s.Get("l1")
	if !ok {
		t.Fatal("letter not found")
	}
	l.Policies[0].ManualFields.Premium = 999

	again, _ := s.Get("l1")
	if again.Policies[0].ManualFields.Premium != 420 {
		t.Fatal("mutating a returned letter must not affect the store")
	}
}

func TestUpdatePolicyField_RecomputesDerivedState(t *testing.T) {
	s := newSeededLetterStore()

	l, err := s.UpdatePolicyField("l1", 0, FieldDeductibles, 150.0)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if l == nil {
		t.Fatal("expected updated letter")
	}

	if l.Policies[0].ManualFields.Deductibles != 150 {
		t.Fatalf("deductibles = %v", l.Policies[0].ManualFields.Deductibles)
	}
	for _, m := range l.MissingData {
		if m == "Póliza 1 (AUT-001): Información de deducibles" {
			t.Fatalf("deductibles still reported missing: %v", l.MissingData)
		}
	}
}

func TestUpdatePolicyField_IndexOutOfRange(t *testing.T) {
	s := newSeededLetterStore()

	_, err := s.UpdatePolicyField("l1", 5, FieldPremium, 100.0)
	if !errors.Is(err, ErrPolicyIndexOutOfRange) {
		t.Fatalf("expected ErrPolicyIndexOutOfRange, got %v", err)
	}

	// La carta queda intacta después del error
	l, _ := s.Get("l1")
	if l.Policies[0].ManualFields.Premium != 420 {
		t.Fatalf("letter was modified: %v", l.Policies[0].ManualFields.Premium)
	}
}

func TestUpdatePolicyField_StaleIDIsNoOp(t *testing.T) {
	s := newSeededLetterStore()

	l, err := s.UpdatePolicyField("gone", 0, FieldPremium, 100.0)
	if err != nil {
		t.Fatalf("stale id must not error: %v", err)
	}
	if l != nil {
		t.Fatal("stale id must return nil letter")
	}
}

func TestUpdatePolicyField_RejectsUnknownAndOriginalFields(t *testing.T) {
	s := newSeededLetterStore()

	if _, err := s.UpdatePolicyField("l1", 0, "colorFavorito", "azul"); !errors.Is(err, ErrUnknownPolicyField) {
		t.Fatalf("expected ErrUnknownPolicyField, got %v", err)
	}
	// Los campos originales no forman parte del conjunto editable
	if _, err := s.UpdatePolicyField("l1", 0, "originalPremium", 1.0); !errors.Is(err, ErrUnknownPolicyField) {
		t.Fatalf("original field must be rejected, got %v", err)
	}
}

func TestUpdatePolicyField_ValidatesCurrency(t *testing.T) {
	s := newSeededLetterStore()

	if _, err := s.UpdatePolicyField("l1", 0, FieldDeductiblesCurrency, "EUR"); !errors.Is(err, ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
	if _, err := s.UpdatePolicyField("l1", 0, FieldDeductiblesCurrency, model.CurrencyUSD); err != nil {
		t.Fatalf("valid currency rejected: %v", err)
	}
}

func TestUpdatePolicyField_MembersFromJSONSlice(t *testing.T) {
	s := newSeededLetterStore()

	// El decoder JSON entrega []interface{}
	value := []interface{}{"Ana Gómez", "Pedro Gómez"}
	l, err := s.UpdatePolicyField("l1", 0, FieldInsuredMembers, value)
	if err != nil {
		t.Fatalf("update members: %v", err)
	}
	want := []string{"Ana Gómez", "Pedro Gómez"}
	if !reflect.DeepEqual(l.Policies[0].ManualFields.InsuredMembers, want) {
		t.Fatalf("unexpected members: %v", l.Policies[0].ManualFields.InsuredMembers)
	}
}

func TestUpdateLetter_PreservesOriginals(t *testing.T) {
	s := newSeededLetterStore()

	// Un patch de pólizas que intenta pisar los valores originales
	policies := []model.Policy{
		{
			PolicyNumber: "AUT-001",
			ManualFields: model.ManualFields{
				Premium:               500,
				OriginalPremium:       1, // intento de adulterar el original
				InsuredValue:          20000,
				OriginalInsuredValue:  1,
				InsuredMatter:         "Toyota Corolla 2023",
				OriginalInsuredMatter: "otro",
			},
		},
	}
	l, ok := s.UpdateLetter("l1", LetterPatch{Policies: &policies})
	if !ok {
		t.Fatal("expected update")
	}

	mf := l.Policies[0].ManualFields
	if mf.Premium != 500 || mf.InsuredValue != 20000 {
		t.Fatalf("current values not applied: %+v", mf)
	}
	if mf.OriginalPremium != 420 || mf.OriginalInsuredValue != 15000 || mf.OriginalInsuredMatter != "Toyota Corolla 2022" {
		t.Fatalf("originals were overwritten: %+v", mf)
	}
}

func TestUpdateLetter_StaleID(t *testing.T) {
	s := newSeededLetterStore()

	ref := "SCPSA-0042/2025"
	if _, ok := s.UpdateLetter("gone", LetterPatch{ReferenceNumber: &ref}); ok {
		t.Fatal("stale id must report ok=false")
	}
}

func TestUpdateLetter_ReferenceClearsManualFlag(t *testing.T) {
	s := newSeededLetterStore()

	ref := "SCPSA-0042/2025"
	l, ok := s.UpdateLetter("l1", LetterPatch{ReferenceNumber: &ref})
	if !ok {
		t.Fatal("expected update")
	}
	for _, m := range l.MissingData {
		if m == "Número de Referencia manual" {
			t.Fatalf("manual reference still reported: %v", l.MissingData)
		}
	}
}

func TestUpdateClientField(t *testing.T) {
	s := newSeededLetterStore()

	l, err := s.UpdateClientField("l1", ClientFieldPhone, "71234567")
	if err != nil {
		t.Fatalf("update phone: %v", err)
	}
	if l.Client.Phone != "71234567" {
		t.Fatalf("phone = %q", l.Client.Phone)
	}

	if _, err := s.UpdateClientField("l1", "direccion", "x"); !errors.Is(err, ErrUnknownClientField) {
		t.Fatalf("expected ErrUnknownClientField, got %v", err)
	}
}

func TestLetterStore_Stats(t *testing.T) {
	s := NewLetterStore()
	salud := seedLetter()
	salud.ID = "l2"
	salud.TemplateType = model.TemplateSalud
	salud.NeedsReview = false
	s.SetLetters([]*model.Letter{seedLetter(), salud})

	stats := s.Stats()
	if stats.TotalLetters != 2 || stats.SaludCount != 1 || stats.GeneralCount != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.NeedReviewCount != 1 || stats.TotalPolicies != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
