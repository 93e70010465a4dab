package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
)

// utf8BOM makes spreadsheet applications detect the encoding of the accented headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write csv bom: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// WriteSalesCSV writes one row per sale. Amounts are plain decimals so the
// file re-imports without locale parsing.
func WriteSalesCSV(w io.Writer, sales []domain.Sale) error {
	rows := make([][]string, len(sales))
	for i, s := range sales {
		rows[i] = []string{
			locale.FormatDate(s.Date),
			s.PharmacyName,
			locale.RecordTypeLabel(s.RecordType),
			s.Amount.StringFixed(2),
		}
	}
	return writeCSV(w, []string{"Fecha", "Farmacia", "Tipo", "Monto"}, rows)
}

// WriteExpensesCSV writes one row per expense.
func WriteExpensesCSV(w io.Writer, expenses []domain.Expense) error {
	rows := make([][]string, len(expenses))
	for i, e := range expenses {
		folio := ""
		if e.Folio != nil {
			folio = *e.Folio
		}
		rows[i] = []string{
			locale.FormatDate(e.Date),
			e.PharmacyName,
			locale.ExpenseTypeLabel(e.ExpenseType),
			string(e.Category),
			e.Description,
			folio,
			e.Amount.StringFixed(2),
		}
	}
	return writeCSV(w, []string{"Fecha", "Farmacia", "Tipo", "Categoría", "Descripción", "Folio", "Monto"}, rows)
}
