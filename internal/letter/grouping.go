package letter

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/innova67/cartas-vencimiento/internal/format"
	"github.com/innova67/cartas-vencimiento/internal/model"
)

// GroupOptions parámetros del agrupado de registros en cartas
type GroupOptions struct {
	// Now fecha de emisión de las cartas; cero usa la hora actual
	Now time.Time
	// DefaultCurrency moneda inicial de deducibles/extraterritorialidad;
	// vacío usa Bs.
	DefaultCurrency string
	// NewID generador de identificadores de carta; nil usa uuid
	NewID func() string
}

func (o *GroupOptions) fill() {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = model.CurrencyBs
	}
	if o.NewID == nil {
		o.NewID = func() string { return uuid.New().String() }
	}
}

// GroupRecords agrupa registros ya validados en cartas.
//
// La clave de agrupado es (asegurado recortado, tipo de plantilla) y las
// cartas salen en el orden en que aparece cada clave por primera vez.
// En la plantilla general cada registro produce una póliza; en salud los
// registros de una misma póliza se fusionan en una sola entrada con la
// lista de asegurados deduplicada (el titular siempre primero).
func GroupRecords(records []*model.InsuranceRecord, opts GroupOptions) []*model.Letter {
	opts.fill()

	groups := make(map[string][]*model.InsuranceRecord)
	var order []string

	for _, r := range records {
		templateType := DetermineTemplateType(r.Ramo)
		key := strings.TrimSpace(r.Asegurado) + "|" + string(templateType)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	letters := make([]*model.Letter, 0, len(order))
	for _, key := range order {
		letters = append(letters, buildLetter(groups[key], opts))
	}
	return letters
}

// buildLetter construye la carta de un grupo (cliente + plantilla)
func buildLetter(records []*model.InsuranceRecord, opts GroupOptions) *model.Letter {
	first := records[0]
	templateType := DetermineTemplateType(first.Ramo)

	sourceIDs := make([]string, 0, len(records))
	for _, r := range records {
		if r.ID != "" {
			sourceIDs = append(sourceIDs, r.ID)
		}
	}

	var policies []model.Policy
	if templateType == model.TemplateSalud {
		policies = buildHealthPolicies(records, opts)
	} else {
		policies = buildGeneralPolicies(records, opts)
	}

	l := &model.Letter{
		ID:              opts.NewID(),
		SourceRecordIDs: sourceIDs,
		TemplateType:    templateType,
		ReferenceNumber: GenerateReferenceNumber(opts.Now),
		Date:            format.FormatDateLong(opts.Now),
		Client: model.Client{
			Name:  first.Asegurado,
			Phone: first.Telefono,
			Email: first.Correo,
		},
		Policies:             policies,
		Executive:            first.Ejecutivo,
		AdditionalConditions: ConditionsFor(templateType),
	}

	AnnotateInitial(l)
	return l
}

// buildGeneralPolicies una póliza por registro, con los campos manuales
// inicializados desde el propio registro
func buildGeneralPolicies(records []*model.InsuranceRecord, opts GroupOptions) []model.Policy {
	policies := make([]model.Policy, 0, len(records))
	for _, r := range records {
		policies = append(policies, model.Policy{
			PolicyNumber: r.NoPoliza,
			Company:      r.Compania,
			Branch:       r.Ramo,
			ExpiryDate:   format.FormatExpiryDate(r.FinDeVigencia),
			InsuredValue: r.ValorAsegurado,
			Premium:      r.Prima,
			ManualFields: model.ManualFields{
				Premium:                r.Prima,
				OriginalPremium:        r.Prima,
				InsuredValue:           r.ValorAsegurado,
				OriginalInsuredValue:   r.ValorAsegurado,
				InsuredMatter:          r.MateriaAsegurada,
				OriginalInsuredMatter:  r.MateriaAsegurada,
				DeductiblesCurrency:    opts.DefaultCurrency,
				TerritorialityCurrency: opts.DefaultCurrency,
			},
		})
	}
	return policies
}

// buildHealthPolicies fusiona los registros de salud por número de póliza:
// un asegurado titular más sus dependientes producen una sola entrada
func buildHealthPolicies(records []*model.InsuranceRecord, opts GroupOptions) []model.Policy {
	byPolicy := make(map[string][]*model.InsuranceRecord)
	var order []string
	for _, r := range records {
		if _, ok := byPolicy[r.NoPoliza]; !ok {
			order = append(order, r.NoPoliza)
		}
		byPolicy[r.NoPoliza] = append(byPolicy[r.NoPoliza], r)
	}

	policies := make([]model.Policy, 0, len(order))
	for _, policyNumber := range order {
		group := byPolicy[policyNumber]
		main := pickMainRecord(group)
		members := collectInsuredMembers(group, main.Asegurado)

		policies = append(policies, model.Policy{
			PolicyNumber:   main.NoPoliza,
			Company:        main.Compania,
			Branch:         main.Ramo,
			ExpiryDate:     format.FormatExpiryDate(main.FinDeVigencia),
			InsuredValue:   main.ValorAsegurado,
			Premium:        main.Prima,
			InsuredMembers: members,
			ManualFields: model.ManualFields{
				Premium:                main.Prima,
				OriginalPremium:        main.Prima,
				InsuredValue:           main.ValorAsegurado,
				OriginalInsuredValue:   main.ValorAsegurado,
				InsuredMatter:          main.MateriaAsegurada,
				OriginalInsuredMatter:  main.MateriaAsegurada,
				InsuredMembers:         append([]string(nil), members...),
				OriginalInsuredMembers: append([]string(nil), members...),
			},
		})
	}
	return policies
}

// pickMainRecord elige el registro del titular dentro de una póliza de
// salud: beneficiario vacío o igual al asegurado; si ninguno califica se
// usa el primero del grupo
func pickMainRecord(group []*model.InsuranceRecord) *model.InsuranceRecord {
	for _, r := range group {
		beneficiario := strings.TrimSpace(r.Beneficiario)
		if beneficiario == "" || strings.EqualFold(beneficiario, strings.TrimSpace(r.Asegurado)) {
			return r
		}
	}
	return group[0]
}

// collectInsuredMembers arma la lista deduplicada de asegurados de la
// póliza: el titular siempre va primero y nunca se repite; se descarta el
// marcador "TITULAR" y los vacíos. La comparación ignora mayúsculas pero
// se conserva la grafía del primer registro visto.
func collectInsuredMembers(group []*model.InsuranceRecord, titularRaw string) []string {
	titular := strings.TrimSpace(titularRaw)

	members := []string{titular}
	seen := map[string]bool{strings.ToUpper(titular): true, "TITULAR": true}

	for _, r := range group {
		name := strings.TrimSpace(r.Beneficiario)
		if name == "" {
			continue
		}
		upper := strings.ToUpper(name)
		if seen[upper] {
			continue
		}
		seen[upper] = true
		members = append(members, name)
	}
	return members
}
