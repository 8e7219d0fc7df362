package reporting

import (
	"io"

	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Riepilogo"
	salesSheet    = "Vendite"
	expensesSheet = "Spese"

	dateLayout     = "02/01/2006"
	currencyFormat = "€ #,##0.00"
)

type workbook struct {
	f        *excelize.File
	header   int
	currency int
}

// writeWorkbook gera o XLSX do relatório com as abas Riepilogo, Vendite e Spese
func writeWorkbook(report *domain.PeriodReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	wb := &workbook{f: f}
	if err := wb.createStyles(); err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	for _, sheet := range []string{salesSheet, expensesSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	if err := wb.writeSummary(report); err != nil {
		return err
	}
	if err := wb.writeSales(report.Days); err != nil {
		return err
	}
	if err := wb.writeExpenses(report.Expenses); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func (wb *workbook) createStyles() error {
	var err error

	wb.header, err = wb.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9EAD3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	format := currencyFormat
	wb.currency, err = wb.f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	return err
}

func (wb *workbook) writeSummary(report *domain.PeriodReport) error {
	sm := report.Summary
	rows := [][]any{
		{"Periodo", report.Start.Format(dateLayout) + " - " + report.End.Format(dateLayout)},
		{"Totale Incassi", sm.TotalTakings},
		{"Incassi Contanti", sm.CashTakings},
		{"Incassi Bancari", sm.BankTakings},
		{"Totale Spese", sm.TotalExpenses},
		{"Spese Contanti", sm.CashExpenses},
		{"Spese Bancarie", sm.BankExpenses},
		{"Profitto Netto", sm.NetProfit},
		{"Giorni con Vendite", sm.DaysCount},
		{"Media Giornaliera", sm.AverageDailyTakings},
	}

	for i, row := range rows {
		if err := wb.setRow(summarySheet, i+1, row); err != nil {
			return err
		}
	}

	if err := wb.f.SetCellStyle(summarySheet, "A1", "A10", wb.header); err != nil {
		return err
	}
	if err := wb.f.SetCellStyle(summarySheet, "B2", "B8", wb.currency); err != nil {
		return err
	}
	if err := wb.f.SetCellStyle(summarySheet, "B10", "B10", wb.currency); err != nil {
		return err
	}
	return wb.f.SetColWidth(summarySheet, "A", "B", 24)
}

func (wb *workbook) writeSales(days []*domain.DailyReportRow) error {
	headers := []any{"Data", "Contanti", "Bancario", "Commissioni", "Corrispettivo", "Spese", "Netto", "Note"}
	if err := wb.writeHeader(salesSheet, headers); err != nil {
		return err
	}

	for i, day := range days {
		row := []any{
			day.Date.Format(dateLayout), day.Cash, day.Bank, day.Fees,
			day.Takings, day.Expenses, day.Net, day.Notes,
		}
		if err := wb.setRow(salesSheet, i+2, row); err != nil {
			return err
		}
	}

	if len(days) > 0 {
		last, err := excelize.CoordinatesToCellName(7, len(days)+1)
		if err != nil {
			return err
		}
		if err := wb.f.SetCellStyle(salesSheet, "B2", last, wb.currency); err != nil {
			return err
		}
	}
	return wb.f.SetColWidth(salesSheet, "A", "H", 16)
}

func (wb *workbook) writeExpenses(expenses []*domain.SupplierExpense) error {
	headers := []any{"Fornitore", "Contanti", "Bancario", "Totale", "Acquisti"}
	if err := wb.writeHeader(expensesSheet, headers); err != nil {
		return err
	}

	for i, expense := range expenses {
		row := []any{expense.SupplierName, expense.Cash, expense.Bank, expense.Total, expense.PurchaseCount}
		if err := wb.setRow(expensesSheet, i+2, row); err != nil {
			return err
		}
	}

	if len(expenses) > 0 {
		last, err := excelize.CoordinatesToCellName(4, len(expenses)+1)
		if err != nil {
			return err
		}
		if err := wb.f.SetCellStyle(expensesSheet, "B2", last, wb.currency); err != nil {
			return err
		}
	}
	return wb.f.SetColWidth(expensesSheet, "A", "E", 18)
}

func (wb *workbook) writeHeader(sheet string, headers []any) error {
	if err := wb.setRow(sheet, 1, headers); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return wb.f.SetCellStyle(sheet, "A1", last, wb.header)
}

func (wb *workbook) setRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.f.SetSheetRow(sheet, cell, &values)
}
