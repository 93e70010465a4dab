package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	rowHeight   = 7.0
	fontFamily  = "Helvetica"
	maxDescChar = 40
)

// document wraps fpdf with the shared header, footer and table helpers.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(title, company string, data *domain.ReportData) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetTitle(title, true)
	pdf.SetAuthor(company, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, d.tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, d.tr(company), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(0, 8, d.tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, d.tr("Periodo: "+locale.PeriodTitle(data.Period)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, d.tr("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	return d
}

func (d *document) section(title string) {
	d.pdf.Ln(2)
	d.pdf.SetFont(fontFamily, "B", 12)
	d.pdf.CellFormat(0, 8, d.tr(title), "B", 1, "L", false, 0, "")
	d.pdf.Ln(1)
}

func (d *document) paragraph(text string) {
	d.pdf.SetFont(fontFamily, "", 10)
	d.pdf.MultiCell(0, 5, d.tr(text), "", "J", false)
	d.pdf.Ln(2)
}

// table renders a header row and body rows. The first textCols columns are
// left-aligned text, the rest right-aligned amounts. A non-nil footer is
// printed in bold.
func (d *document) table(widths []float64, textCols int, header []string, rows [][]string, footer []string) {
	pdf := d.pdf
	align := func(i int) string {
		if i < textCols {
			return "L"
		}
		return "R"
	}

	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(31, 78, 120)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		pdf.CellFormat(widths[i], rowHeight, d.tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetFillColor(235, 241, 247)
	for r, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], rowHeight, d.tr(cell), "1", 0, align(i), r%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}

	if footer != nil {
		pdf.SetFont(fontFamily, "B", 9)
		for i, cell := range footer {
			pdf.CellFormat(widths[i], rowHeight, d.tr(cell), "1", 0, align(i), false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
}

func (d *document) write(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func money(v decimal.Decimal) string {
	return locale.FormatMoney(v)
}

// WriteFinancialPDF renders the financial report: executive summary, income
// statement and profit by pharmacy.
func WriteFinancialPDF(w io.Writer, data *domain.ReportData, company string) error {
	d := newDocument("Reporte Financiero", company, data)
	s := data.Summary

	d.section("Resumen ejecutivo")
	result := "una utilidad"
	if s.Profit.IsNegative() {
		result = "una pérdida"
	}
	d.paragraph(fmt.Sprintf(
		"En el periodo %s se registraron ventas por %s y gastos por %s, con %s de %s y un margen de %s.",
		locale.PeriodTitle(data.Period), money(s.SalesTotal), money(s.ExpensesTotal),
		result, money(s.Profit.Abs()), locale.FormatPercent(s.MarginPercent)))

	d.section("Estado de resultados")
	d.table([]float64{120, 70}, 1,
		[]string{"Concepto", "Monto"},
		[][]string{
			{"Ventas", money(s.SalesTotal)},
			{"Gastos fijos", money(data.ExpenseSummary.Fixed)},
			{"Gastos variables", money(data.ExpenseSummary.Variable)},
			{"Total de gastos", money(s.ExpensesTotal)},
		},
		[]string{"Utilidad neta", money(s.Profit)},
	)

	d.section("Utilidad por farmacia")
	d.breakdownTable(data)
	return d.write(w)
}

func (d *document) breakdownTable(data *domain.ReportData) {
	rows := make([][]string, len(data.Breakdown))
	for i, b := range data.Breakdown {
		rows[i] = []string{b.PharmacyName, money(b.Sales), money(b.Expenses), money(b.Profit)}
	}
	s := data.Summary
	d.table([]float64{70, 40, 40, 40}, 1,
		[]string{"Farmacia", "Ventas", "Gastos", "Utilidad"},
		rows,
		[]string{"Total", money(s.SalesTotal), money(s.ExpensesTotal), money(s.Profit)},
	)
}

// WriteSummaryPDF renders the KPI summary with fixed versus variable expenses
// and the top expense categories.
func WriteSummaryPDF(w io.Writer, data *domain.ReportData, company string) error {
	d := newDocument("Resumen de Indicadores", company, data)
	s := data.Summary

	d.section("Indicadores")
	d.table([]float64{120, 70}, 1,
		[]string{"Indicador", "Valor"},
		[][]string{
			{"Ventas", money(s.SalesTotal)},
			{"Gastos", money(s.ExpensesTotal)},
			{"Utilidad", money(s.Profit)},
			{"Margen", locale.FormatPercent(s.MarginPercent)},
		},
		nil,
	)

	es := data.ExpenseSummary
	d.section("Gastos fijos y variables")
	d.table([]float64{120, 70}, 1,
		[]string{"Tipo", "Monto"},
		[][]string{
			{locale.ExpenseTypeLabel(domain.ExpenseFixed), money(es.Fixed)},
			{locale.ExpenseTypeLabel(domain.ExpenseVariable), money(es.Variable)},
		},
		[]string{"Total", money(es.Fixed.Add(es.Variable))},
	)

	d.section("Principales categorías de gasto")
	rows := make([][]string, len(es.TopCategories))
	for i, c := range es.TopCategories {
		rows[i] = []string{fmt.Sprintf("%d. %s", i+1, c.Category), money(c.Total)}
	}
	d.table([]float64{120, 70}, 1, []string{"Categoría", "Monto"}, rows, nil)

	d.section("Por farmacia")
	d.breakdownTable(data)
	return d.write(w)
}

// WriteExpensesPDF renders the expense detail table.
func WriteExpensesPDF(w io.Writer, data *domain.ReportData, company string) error {
	d := newDocument("Detalle de Gastos", company, data)

	rows := make([][]string, len(data.Expenses))
	for i, e := range data.Expenses {
		desc := e.Description
		if runes := []rune(desc); len(runes) > maxDescChar {
			desc = string(runes[:maxDescChar-3]) + "..."
		}
		folio := ""
		if e.Folio != nil {
			folio = *e.Folio
		}
		rows[i] = []string{
			locale.FormatDate(e.Date),
			e.PharmacyName,
			string(e.Category),
			desc,
			folio,
			money(e.Amount),
		}
	}

	d.section(fmt.Sprintf("Gastos registrados: %d", len(data.Expenses)))
	d.table([]float64{22, 35, 26, 62, 18, 27}, 5,
		[]string{"Fecha", "Farmacia", "Categoría", "Descripción", "Folio", "Monto"},
		rows,
		[]string{"Total", "", "", "", "", money(data.Summary.ExpensesTotal)},
	)
	return d.write(w)
}
