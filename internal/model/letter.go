package model

// TemplateType tipo de plantilla de carta según el ramo
type TemplateType string

const (
	// TemplateSalud plantilla para ramos de salud / vida / asistencia médica
	TemplateSalud TemplateType = "salud"
	// TemplateGeneral plantilla para el resto de los ramos
	TemplateGeneral TemplateType = "general"
)

// Monedas admitidas para deducibles y extraterritorialidad
const (
	CurrencyBs  = "Bs."
	CurrencyUSD = "$us."
)

// ManualFields campos editables de una póliza dentro de la carta.
// Cada campo "actual" va acompañado de su valor original de ingesta:
// el original se fija una sola vez al agrupar y nunca se vuelve a tocar,
// de modo que toda edición del operador queda visible como override.
type ManualFields struct {
	Premium         float64 `json:"premium"`
	OriginalPremium float64 `json:"originalPremium"`

	InsuredValue         float64 `json:"insuredValue"`
	OriginalInsuredValue float64 `json:"originalInsuredValue"`

	InsuredMatter         string `json:"insuredMatter"`
	OriginalInsuredMatter string `json:"originalInsuredMatter"`

	InsuredMembers         []string `json:"insuredMembers,omitempty"`
	OriginalInsuredMembers []string `json:"originalInsuredMembers,omitempty"`

	// Solo plantilla salud
	RenewalPremium float64 `json:"renewalPremium,omitempty"`

	// Solo plantilla general
	Deductibles            float64 `json:"deductibles,omitempty"`
	DeductiblesCurrency    string  `json:"deductiblesCurrency,omitempty"`
	Territoriality         float64 `json:"territoriality,omitempty"`
	TerritorialityCurrency string  `json:"territorialityCurrency,omitempty"`
	SpecificConditions     string  `json:"specificConditions,omitempty"`
}

// Policy una póliza dentro de una carta generada
type Policy struct {
	PolicyNumber   string       `json:"policyNumber"`
	Company        string       `json:"company"`
	Branch         string       `json:"branch"`
	ExpiryDate     string       `json:"expiryDate"` // ya formateada para la carta
	InsuredValue   float64      `json:"insuredValue"`
	Premium        float64      `json:"premium"`
	InsuredMembers []string     `json:"insuredMembers,omitempty"` // solo salud
	ManualFields   ManualFields `json:"manualFields"`
}

// Client datos de contacto del cliente de la carta
type Client struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Letter una carta de aviso de vencimiento: agrupa las pólizas de un
// cliente bajo una plantilla. NeedsReview y MissingData son estado
// derivado y se recalculan después de cada mutación.
type Letter struct {
	ID                   string       `json:"id"`
	SourceRecordIDs      []string     `json:"sourceRecordIds"`
	TemplateType         TemplateType `json:"templateType"`
	ReferenceNumber      string       `json:"referenceNumber"`
	Date                 string       `json:"date"` // fecha de emisión formateada
	Client               Client       `json:"client"`
	Policies             []Policy     `json:"policies"`
	Executive            string       `json:"executive"`
	AdditionalConditions string       `json:"additionalConditions"`
	NeedsReview          bool         `json:"needsReview"`
	MissingData          []string     `json:"missingData"`
}

// LetterStats resumen del lote de cartas generado en la sesión
type LetterStats struct {
	TotalLetters    int `json:"totalLetters"`
	SaludCount      int `json:"saludCount"`
	GeneralCount    int `json:"generalCount"`
	NeedReviewCount int `json:"needReviewCount"`
	TotalPolicies   int `json:"totalPolicies"`
}
