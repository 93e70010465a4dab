package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/SscSPs/pharmacy_dashboard/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.ReportData {
	year, month := 2025, 3
	folio := "F-001"
	return &domain.ReportData{
		Period:      domain.PeriodDescriptor{Year: &year, Month: &month},
		GeneratedAt: time.Date(2025, 3, 20, 10, 30, 0, 0, time.UTC),
		Summary: domain.FinancialSummary{
			SalesTotal:    decimal.NewFromInt(1500),
			ExpensesTotal: decimal.NewFromInt(500),
			Profit:        decimal.NewFromInt(1000),
			MarginPercent: decimal.RequireFromString("66.67"),
		},
		Breakdown: []domain.PharmacyBreakdownRow{
			{PharmacyID: "p1", PharmacyName: "Centro", Sales: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(500), Profit: decimal.NewFromInt(500)},
			{PharmacyID: "p2", PharmacyName: "Norte", Sales: decimal.NewFromInt(500), Expenses: decimal.Zero, Profit: decimal.NewFromInt(500)},
		},
		ExpenseSummary: domain.ExpenseSummary{
			Fixed:         decimal.NewFromInt(300),
			Variable:      decimal.NewFromInt(200),
			ByCategory:    []domain.CategoryTotal{{Category: domain.CategoryRent, Total: decimal.NewFromInt(300)}, {Category: domain.CategoryMerchandise, Total: decimal.NewFromInt(200)}},
			TopCategories: []domain.CategoryTotal{{Category: domain.CategoryRent, Total: decimal.NewFromInt(300)}, {Category: domain.CategoryMerchandise, Total: decimal.NewFromInt(200)}},
		},
		Sales: []domain.Sale{
			{SaleID: "s1", PharmacyName: "Centro", Amount: decimal.NewFromInt(1000), RecordType: domain.RecordDaily, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
			{SaleID: "s2", PharmacyName: "Norte", Amount: decimal.NewFromInt(500), RecordType: domain.RecordWeekly, Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", PharmacyName: "Centro", Amount: decimal.NewFromInt(300), ExpenseType: domain.ExpenseFixed, Category: domain.CategoryRent, Description: "Renta de marzo", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ExpenseID: "e2", PharmacyName: "Centro", Amount: decimal.NewFromInt(200), ExpenseType: domain.ExpenseVariable, Category: domain.CategoryMerchandise, Description: "Compra de medicamento con una descripción bastante larga", Folio: &folio, Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestWriteSalesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSalesCSV(&buf, sampleReport().Sales))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "missing BOM")

	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Fecha", "Farmacia", "Tipo", "Monto"}, records[0])
	assert.Equal(t, "01/03/2025", records[1][0])
	assert.Equal(t, "Centro", records[1][1])
	assert.Equal(t, "1000.00", records[1][3])
}

func TestWriteExpensesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteExpensesCSV(&buf, sampleReport().Expenses))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Categoría", records[0][3])
	assert.Equal(t, "", records[1][5])
	assert.Equal(t, "F-001", records[2][5])
	assert.Equal(t, "200.00", records[2][6])
}

func TestWriteSalesCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSalesCSV(&buf, nil))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWritePharmaciesXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WritePharmaciesXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Farmacias", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Marzo 2025", title)

	header, err := f.GetCellValue("Farmacias", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Ventas", header)

	name, err := f.GetCellValue("Farmacias", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Norte", name)

	total, err := f.GetCellValue("Farmacias", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)
}

func TestWritePDFs(t *testing.T) {
	writers := map[string]func(*bytes.Buffer) error{
		"financial": func(b *bytes.Buffer) error { return export.WriteFinancialPDF(b, sampleReport(), "Farmacias GI") },
		"summary":   func(b *bytes.Buffer) error { return export.WriteSummaryPDF(b, sampleReport(), "Farmacias GI") },
		"expenses":  func(b *bytes.Buffer) error { return export.WriteExpensesPDF(b, sampleReport(), "Farmacias GI") },
	}
	for name, write := range writers {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, write(&buf))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
			assert.Greater(t, buf.Len(), 500)
		})
	}
}
