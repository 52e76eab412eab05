package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/innova67/cartas-vencimiento/internal/letter"
	"github.com/innova67/cartas-vencimiento/internal/model"
)

// Errores del API de mutación. Un índice fuera de rango o un campo
// desconocido son bugs del llamador y se reportan; un ID de carta
// inexistente es una referencia vieja y se ignora en silencio.
var (
	ErrPolicyIndexOutOfRange = errors.New("policy index out of range")
	ErrUnknownPolicyField    = errors.New("unknown policy field")
	ErrUnknownClientField    = errors.New("unknown client field")
	ErrInvalidFieldValue     = errors.New("invalid field value")
)

// PolicyField campos editables de una póliza. Es un conjunto cerrado:
// los campos "original" nunca son editables y no aparecen aquí.
type PolicyField string

const (
	FieldPremium                PolicyField = "premium"
	FieldInsuredValue           PolicyField = "insuredValue"
	FieldInsuredMatter          PolicyField = "insuredMatter"
	FieldInsuredMembers         PolicyField = "insuredMembers"
	FieldRenewalPremium         PolicyField = "renewalPremium"
	FieldDeductibles            PolicyField = "deductibles"
	FieldDeductiblesCurrency    PolicyField = "deductiblesCurrency"
	FieldTerritoriality         PolicyField = "territoriality"
	FieldTerritorialityCurrency PolicyField = "territorialityCurrency"
	FieldSpecificConditions     PolicyField = "specificConditions"
)

// ClientField campos de contacto editables del cliente
type ClientField string

const (
	ClientFieldPhone ClientField = "phone"
	ClientFieldEmail ClientField = "email"
)

// LetterPatch actualización parcial de una carta: solo los campos
// presentes (no nulos) reemplazan a los actuales
type LetterPatch struct {
	ReferenceNumber *string         `json:"referenceNumber"`
	Client          *ClientPatch    `json:"client"`
	Policies        *[]model.Policy `json:"policies"`
	Executive       *string         `json:"executive"`
}

// ClientPatch actualización parcial de los datos del cliente
type ClientPatch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// LetterStore almacén en memoria de las cartas de la sesión. El lote se
// reemplaza completo cuando cambia la selección de registros; dentro de
// una sesión las cartas solo cambian a través del API de mutación, que
// recalcula el estado derivado después de cada edición.
type LetterStore struct {
	mu      sync.RWMutex
	letters map[string]*model.Letter
	order   []string
}

// NewLetterStore crea un almacén vacío
func NewLetterStore() *LetterStore {
	return &LetterStore{
		letters: make(map[string]*model.Letter),
	}
}

// SetLetters reemplaza el lote completo de cartas
func (s *LetterStore) SetLetters(letters []*model.Letter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.letters = make(map[string]*model.Letter, len(letters))
	s.order = make([]string, 0, len(letters))
	for _, l := range letters {
		s.letters[l.ID] = l.Clone()
		s.order = append(s.order, l.ID)
	}
}

// List devuelve las cartas en orden de generación
func (s *LetterStore) List() []*model.Letter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Letter, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.letters[id].Clone())
	}
	return result
}

// Get devuelve una carta por ID
func (s *LetterStore) Get(id string) (*model.Letter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.letters[id]
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// Count cantidad de cartas del lote
func (s *LetterStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.letters)
}

// Clear vacía el lote
func (s *LetterStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.letters = make(map[string]*model.Letter)
	s.order = nil
}

// Stats resumen del lote para la cabecera del generador
func (s *LetterStore) Stats() model.LetterStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.LetterStats{}
	for _, id := range s.order {
		l := s.letters[id]
		stats.TotalLetters++
		stats.TotalPolicies += len(l.Policies)
		if l.TemplateType == model.TemplateSalud {
			stats.SaludCount++
		} else {
			stats.GeneralCount++
		}
		if l.NeedsReview {
			stats.NeedReviewCount++
		}
	}
	return stats
}

// UpdateLetter aplica una actualización parcial y recalcula el estado
// derivado sobre el resultado. Un ID desconocido es una referencia vieja
// de la interfaz, no un error: la operación se ignora y ok es false.
func (s *LetterStore) UpdateLetter(id string, patch LetterPatch) (*model.Letter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.letters[id]
	if !ok {
		return nil, false
	}

	if patch.ReferenceNumber != nil {
		l.ReferenceNumber = *patch.ReferenceNumber
	}
	if patch.Executive != nil {
		l.Executive = *patch.Executive
	}
	if patch.Client != nil {
		if patch.Client.Name != nil {
			l.Client.Name = *patch.Client.Name
		}
		if patch.Client.Phone != nil {
			l.Client.Phone = *patch.Client.Phone
		}
		if patch.Client.Email != nil {
			l.Client.Email = *patch.Client.Email
		}
		if patch.Client.Address != nil {
			l.Client.Address = *patch.Client.Address
		}
	}
	if patch.Policies != nil {
		prev := l.Policies
		policies := make([]model.Policy, len(*patch.Policies))
		for i, p := range *patch.Policies {
			policies[i] = p.Clone()
			// Los originales se fijan al agrupar y no son blanco de
			// ninguna mutación: se conservan los almacenados
			if i < len(prev) {
				restoreOriginals(&policies[i].ManualFields, prev[i].ManualFields)
			}
		}
		l.Policies = policies
	}

	letter.Reevaluate(l)
	return l.Clone(), true
}

// UpdatePolicyField reemplaza un campo editable de una póliza y recalcula
// el estado derivado. El índice fuera de rango es una violación de
// contrato del llamador y se reporta como error sin tocar la carta.
func (s *LetterStore) UpdatePolicyField(id string, policyIndex int, field PolicyField, value interface{}) (*model.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.letters[id]
	if !ok {
		// Referencia vieja: no-op
		return nil, nil
	}

	if policyIndex < 0 || policyIndex >= len(l.Policies) {
		return nil, fmt.Errorf("%w: %d (letter has %d policies)", ErrPolicyIndexOutOfRange, policyIndex, len(l.Policies))
	}

	mf := &l.Policies[policyIndex].ManualFields
	if err := setManualField(mf, field, value); err != nil {
		return nil, err
	}

	letter.Reevaluate(l)
	return l.Clone(), nil
}

// UpdateClientField reemplaza un campo de contacto del cliente. Los datos
// de contacto no afectan la completitud, pero el recálculo después de
// cada mutación es parte del contrato del almacén.
func (s *LetterStore) UpdateClientField(id string, field ClientField, value string) (*model.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.letters[id]
	if !ok {
		return nil, nil
	}

	switch field {
	case ClientFieldPhone:
		l.Client.Phone = value
	case ClientFieldEmail:
		l.Client.Email = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClientField, field)
	}

	letter.Reevaluate(l)
	return l.Clone(), nil
}

// restoreOriginals copia los campos originales almacenados sobre los del
// patch entrante
func restoreOriginals(dst *model.ManualFields, stored model.ManualFields) {
	dst.OriginalPremium = stored.OriginalPremium
	dst.OriginalInsuredValue = stored.OriginalInsuredValue
	dst.OriginalInsuredMatter = stored.OriginalInsuredMatter
	dst.OriginalInsuredMembers = append([]string(nil), stored.OriginalInsuredMembers...)
}

// setManualField asigna un valor tipado a un campo editable. Los nombres
// se rechazan fuera del conjunto cerrado, de modo que los campos
// originales quedan inalcanzables desde el API.
func setManualField(mf *model.ManualFields, field PolicyField, value interface{}) error {
	switch field {
	case FieldPremium:
		return setFloatField(&mf.Premium, field, value)
	case FieldInsuredValue:
		return setFloatField(&mf.InsuredValue, field, value)
	case FieldInsuredMatter:
		return setStringField(&mf.InsuredMatter, field, value)
	case FieldInsuredMembers:
		members, err := toStringSlice(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
		}
		mf.InsuredMembers = members
		return nil
	case FieldRenewalPremium:
		return setFloatField(&mf.RenewalPremium, field, value)
	case FieldDeductibles:
		return setFloatField(&mf.Deductibles, field, value)
	case FieldDeductiblesCurrency:
		return setCurrencyField(&mf.DeductiblesCurrency, field, value)
	case FieldTerritoriality:
		return setFloatField(&mf.Territoriality, field, value)
	case FieldTerritorialityCurrency:
		return setCurrencyField(&mf.TerritorialityCurrency, field, value)
	case FieldSpecificConditions:
		return setStringField(&mf.SpecificConditions, field, value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicyField, field)
	}
}

func setFloatField(dst *float64, field PolicyField, value interface{}) error {
	switch v := value.(type) {
	case float64:
		*dst = v
	case float32:
		*dst = float64(v)
	case int:
		*dst = float64(v)
	case int64:
		*dst = float64(v)
	default:
		return fmt.Errorf("%w: %s expects a number", ErrInvalidFieldValue, field)
	}
	return nil
}

func setStringField(dst *string, field PolicyField, value interface{}) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects a string", ErrInvalidFieldValue, field)
	}
	*dst = v
	return nil
}

func setCurrencyField(dst *string, field PolicyField, value interface{}) error {
	v, ok := value.(string)
	if !ok || (v != model.CurrencyBs && v != model.CurrencyUSD) {
		return fmt.Errorf("%w: %s expects %q or %q", ErrInvalidFieldValue, field, model.CurrencyBs, model.CurrencyUSD)
	}
	*dst = v
	return nil
}

// toStringSlice acepta []string directo o el []interface{} que produce
// el decoder JSON
func toStringSlice(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("not a string slice")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("not a string slice")
	}
}
