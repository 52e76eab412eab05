package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

const summarySheet = "Cartas"

// BuildSummaryWorkbook arma la planilla de control del lote: una fila
// por carta con su estado de revisión y los datos faltantes, para que el
// operador trabaje la lista antes de exportar.
func BuildSummaryWorkbook(letters []*model.Letter) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headers := []string{
		"Cliente", "Plantilla", "Referencia", "Pólizas",
		"Ejecutivo", "Revisar", "Datos faltantes",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, l := range letters {
		review := "No"
		if l.NeedsReview {
			review = "Sí"
		}
		values := []interface{}{
			l.Client.Name,
			strings.ToUpper(string(l.TemplateType)),
			l.ReferenceNumber,
			len(l.Policies),
			l.Executive,
			review,
			strings.Join(l.MissingData, "; "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 35); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summarySheet, "G", "G", 60); err != nil {
		return nil, err
	}

	return f, nil
}
