package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// Alias de encabezado aceptados por campo. La comparación se hace sobre
// el encabezado normalizado (minúsculas, sin acentos ni signos), así el
// mismo archivo funciona venga como "No. Póliza", "NO POLIZA" o "Poliza".
var headerAliases = map[string][]string{
	"asegurado":        {"asegurado", "cliente", "nombre asegurado", "nombre del asegurado"},
	"noPoliza":         {"no poliza", "n poliza", "nro poliza", "numero poliza", "numero de poliza", "poliza"},
	"compania":         {"compania", "compania aseguradora", "aseguradora"},
	"ramo":             {"ramo", "ramo del seguro"},
	"finDeVigencia":    {"fin de vigencia", "fin vigencia", "vencimiento", "fecha vencimiento", "fecha de vencimiento"},
	"valorAsegurado":   {"valor asegurado", "suma asegurada", "capital asegurado"},
	"prima":            {"prima", "prima total", "prima anual"},
	"materiaAsegurada": {"materia asegurada", "materia", "detalle"},
	"beneficiario":     {"beneficiario", "dependiente", "asegurado dependiente", "afiliado"},
	"telefono":         {"telefono", "celular", "tel"},
	"correo":           {"correo", "correo o direccion", "email", "mail", "direccion"},
	"ejecutivo":        {"ejecutivo", "ejecutivo responsable", "ejecutivo de cuenta"},
}

// Parser lector del Excel de cartera
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser crea el lector
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile carga el archivo Excel
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// LoadWorkbook usa un workbook ya abierto (para pruebas)
func (p *Parser) LoadWorkbook(file *excelize.File) {
	p.file = file
}

// Close libera el archivo
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseResult resultado de interpretar una hoja
type ParseResult struct {
	Sheet       string                   `json:"sheet"`
	TotalRows   int                      `json:"totalRows"`
	ParsedRows  int                      `json:"parsedRows"`
	SkippedRows int                      `json:"skippedRows"`
	Records     []*model.InsuranceRecord `json:"-"`
}

// Parse interpreta la primera hoja con encabezados reconocibles.
// Una fila sin asegurado ni número de póliza se considera vacía y se
// salta; el resto de las filas se importa tal cual (la validación para
// carta ocurre recién al generar el lote).
func (p *Parser) Parse(sourceFile string) (*ParseResult, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	for _, sheet := range p.file.GetSheetList() {
		rows, err := p.file.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}

		colIndex := mapHeaders(rows[0])
		if _, ok := colIndex["asegurado"]; !ok {
			continue
		}
		if _, ok := colIndex["noPoliza"]; !ok {
			continue
		}

		return p.parseSheet(sheet, rows, colIndex, sourceFile), nil
	}

	return nil, errors.New("no sheet with recognizable headers")
}

func (p *Parser) parseSheet(sheet string, rows [][]string, colIndex map[string]int, sourceFile string) *ParseResult {
	result := &ParseResult{
		Sheet:     sheet,
		TotalRows: len(rows) - 1,
	}

	for i, row := range rows[1:] {
		getValue := func(field string) string {
			if idx, ok := colIndex[field]; ok && idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		asegurado := getValue("asegurado")
		noPoliza := getValue("noPoliza")
		if asegurado == "" && noPoliza == "" {
			result.SkippedRows++
			continue
		}

		record := &model.InsuranceRecord{
			ID:               uuid.New().String(),
			Asegurado:        asegurado,
			NoPoliza:         noPoliza,
			Compania:         getValue("compania"),
			Ramo:             getValue("ramo"),
			FinDeVigencia:    getValue("finDeVigencia"),
			ValorAsegurado:   parseAmount(getValue("valorAsegurado")),
			Prima:            parseAmount(getValue("prima")),
			MateriaAsegurada: getValue("materiaAsegurada"),
			Beneficiario:     getValue("beneficiario"),
			Telefono:         getValue("telefono"),
			Correo:           getValue("correo"),
			Ejecutivo:        getValue("ejecutivo"),
			SourceFile:       sourceFile,
			RowNo:            i + 2,
		}

		result.Records = append(result.Records, record)
		result.ParsedRows++
	}

	return result
}

// mapHeaders resuelve el índice de columna de cada campo conocido
func mapHeaders(header []string) map[string]int {
	colIndex := make(map[string]int)
	for i, col := range header {
		normalized := normalizeHeader(col)
		for field, aliases := range headerAliases {
			if _, done := colIndex[field]; done {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					colIndex[field] = i
					break
				}
			}
		}
	}
	return colIndex
}

// normalizeHeader normaliza un encabezado: minúsculas, sin acentos, sin
// signos, espacios colapsados
func normalizeHeader(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
		"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
		"ñ", "n", "Ñ", "n",
	)
	s = replacer.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)

	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// parseAmount interpreta un monto con posibles separadores de miles.
// Acepta tanto "1,234.56" como "1.234,56"; un valor ilegible queda en 0
// y lo atrapa después el motor de completitud.
func parseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	raw = strings.TrimPrefix(raw, "Bs")
	raw = strings.TrimPrefix(raw, "$us.")
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.TrimSpace(raw)

	lastComma := strings.LastIndex(raw, ",")
	lastDot := strings.LastIndex(raw, ".")
	if lastComma > lastDot {
		// formato latino: la coma es el separador decimal
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	} else {
		raw = strings.ReplaceAll(raw, ",", "")
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}
