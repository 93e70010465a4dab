package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/analytics"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/xuri/excelize/v2"
)

const breakdownSheet = "Farmacias"

// moneyFormat is the built-in "#,##0.00" number format.
const moneyFormat = 4

// WritePharmaciesXLSX writes the per-pharmacy breakdown as a workbook with a
// totals row.
func WritePharmaciesXLSX(w io.Writer, data *domain.ReportData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", breakdownSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E78"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create total style: %w", err)
	}

	set := func(cell string, value interface{}) {
		if err == nil {
			err = f.SetCellValue(breakdownSheet, cell, value)
		}
	}

	set("A1", locale.PeriodTitle(data.Period))
	set("A2", "Generado: "+locale.FormatDate(data.GeneratedAt))

	headers := []string{"Farmacia", "Ventas", "Gastos", "Utilidad", "Margen %"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		set(cell, h)
	}

	row := 5
	for _, b := range data.Breakdown {
		set(fmt.Sprintf("A%d", row), b.PharmacyName)
		set(fmt.Sprintf("B%d", row), b.Sales.InexactFloat64())
		set(fmt.Sprintf("C%d", row), b.Expenses.InexactFloat64())
		set(fmt.Sprintf("D%d", row), b.Profit.InexactFloat64())
		set(fmt.Sprintf("E%d", row), analytics.Percent(b.Profit, b.Sales).InexactFloat64())
		row++
	}
	set(fmt.Sprintf("A%d", row), "Total")
	set(fmt.Sprintf("B%d", row), data.Summary.SalesTotal.InexactFloat64())
	set(fmt.Sprintf("C%d", row), data.Summary.ExpensesTotal.InexactFloat64())
	set(fmt.Sprintf("D%d", row), data.Summary.Profit.InexactFloat64())
	set(fmt.Sprintf("E%d", row), data.Summary.MarginPercent.InexactFloat64())
	if err != nil {
		return fmt.Errorf("failed to write cells: %w", err)
	}

	steps := []error{
		f.SetCellStyle(breakdownSheet, "A4", "E4", headerStyle),
		f.SetCellStyle(breakdownSheet, "B5", fmt.Sprintf("E%d", row-1), moneyStyle),
		f.SetCellStyle(breakdownSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), totalStyle),
		f.SetColWidth(breakdownSheet, "A", "A", 32),
		f.SetColWidth(breakdownSheet, "B", "E", 16),
	}
	for _, e := range steps {
		if e != nil {
			return fmt.Errorf("failed to format sheet: %w", e)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
