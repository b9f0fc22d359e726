package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bank_statement_gen_go/models"
)

const (
	sheetTransactions = "Transactions"
	sheetSummary      = "Summary"
)

// ExportStatementXLSX writes the statement register and its summary to an
// xlsx workbook, one sheet for the transaction rows and one for the
// aggregate scalars.
func ExportStatementXLSX(rec *models.StatementRecord) ([]byte, error) {
	fx := excelize.NewFile()
	defer fx.Close()

	fx.SetSheetName("Sheet1", sheetTransactions)
	if _, err := fx.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDDDDD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Date", "Description", "Credit", "Debit", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := fx.SetCellValue(sheetTransactions, cell, h); err != nil {
			return nil, err
		}
	}
	if err := fx.SetCellStyle(sheetTransactions, "A1", "E1", headerStyle); err != nil {
		return nil, err
	}

	for i, t := range rec.Transactions {
		row := i + 2
		values := []string{t.Date, t.Description, t.Credit, t.Debit, t.Balance}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := fx.SetCellValue(sheetTransactions, cell, v); err != nil {
				return nil, err
			}
		}
	}
	if err := fx.SetColWidth(sheetTransactions, "B", "B", 36); err != nil {
		return nil, err
	}

	s := rec.Summary
	summaryRows := [][2]string{
		{"Bank", rec.BankName},
		{"Account holder", rec.AccountHolder},
		{"Account number", rec.AccountNumber},
		{"Account type", rec.AccountType},
		{"Statement period", rec.StatementPeriod},
		{"Beginning balance", s.BeginningBalance},
		{"Deposits and credits", s.DepositsTotal},
		{"Withdrawals and debits", s.WithdrawalsTotal},
		{"Ending balance", s.EndingBalance},
		{"Transaction count", s.TransactionsCount},
	}
	for i, kv := range summaryRows {
		row := i + 1
		if err := fx.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), kv[0]); err != nil {
			return nil, err
		}
		if err := fx.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), kv[1]); err != nil {
			return nil, err
		}
	}
	if err := fx.SetColWidth(sheetSummary, "A", "B", 28); err != nil {
		return nil, err
	}

	buf, err := fx.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
