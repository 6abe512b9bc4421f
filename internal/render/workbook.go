package render

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/depastori/clinica-psi/internal/dto"
)

const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const chargesSheet = "Cobranças"

var chargesHeader = []any{
	"Número", "Paciente", "Descrição", "Valor", "Moeda",
	"Vencimento", "Status", "Pago em", "Forma de pagamento",
}

// ChargesWorkbook exporta a listagem de cobranças como planilha. Valor vai
// como número para o contador conseguir somar.
func ChargesWorkbook(items []dto.ChargeListItem, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", chargesSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(chargesSheet, "A1", &chargesHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(chargesSheet, "A1", "I1", bold); err != nil {
		return nil, err
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		paidAt := ""
		if it.PaidAt != nil {
			paidAt = formatDate(it.PaidAt.In(loc))
		}

		row := []any{
			it.Number,
			it.PatientName,
			it.Description,
			it.Amount.InexactFloat64(),
			it.Currency,
			formatDate(it.DueDate.In(loc)),
			statusLabel(it.Status),
			paidAt,
			it.PaymentMethod,
		}
		if err := f.SetSheetRow(chargesSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(chargesSheet, "B", "C", 32); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WorkbookFilename: cobrancas-AAAA-MM-DD.xlsx
func WorkbookFilename(now time.Time) string {
	return fmt.Sprintf("cobrancas-%s.xlsx", now.Format("2006-01-02"))
}
