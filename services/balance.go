package services

import (
	"fmt"
	"strconv"
	"strings"

	"bank_statement_gen_go/models"
)

// ParseAmount converts a currency-formatted string ("$1,234.56", "£87.00")
// back to a number. A string that cannot be parsed is a fatal condition for
// the render: downstream totals would be silently wrong otherwise.
func ParseAmount(s string) (float64, error) {
	// Keep digits, the decimal point, and the sign; drop the currency
	// symbol (multi-byte ones like £ included), thousands separators, and
	// whitespace wherever they sit, so "-$42.10" and "$-42.10" both parse.
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	return v, nil
}

// FormatAmount renders a number with the statement currency symbol.
func FormatAmount(currency string, v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	return fmt.Sprintf("%s%s%.2f", neg, currency, v)
}

// RecomputeBalances walks the chronological transaction list, rewrites each
// running balance from the beginning balance, and overwrites the summary
// totals and counts so the printed document is internally consistent.
// Caller-supplied summary values are advisory only. The walk is
// deterministic, so recomputing twice yields identical results.
//
// A transaction with neither credit nor debit keeps the previous balance
// and is logged; one with both is rejected.
func RecomputeBalances(rec *models.StatementRecord, logger RenderLog) error {
	balance, err := ParseAmount(rec.Summary.BeginningBalance)
	if err != nil {
		return fmt.Errorf("beginning_balance: %w", err)
	}

	var depositsTotal, withdrawalsTotal float64
	var depositsCount, withdrawalsCount int
	for i := range rec.Transactions {
		t := &rec.Transactions[i]
		switch {
		case t.Credit != "" && t.Debit != "":
			return fmt.Errorf("transaction %d (%s) has both credit and debit", i, t.Description)
		case t.Credit != "":
			amount, err := ParseAmount(t.Credit)
			if err != nil {
				return fmt.Errorf("transaction %d credit: %w", i, err)
			}
			balance += amount
			depositsTotal += amount
			depositsCount++
		case t.Debit != "":
			amount, err := ParseAmount(t.Debit)
			if err != nil {
				return fmt.Errorf("transaction %d debit: %w", i, err)
			}
			balance -= amount
			withdrawalsTotal += amount
			withdrawalsCount++
		default:
			logger.Warnf("Transaction missing both credit and debit fields: %s %s", t.Date, t.Description)
		}
		t.Balance = FormatAmount(rec.Currency, balance)
	}

	rec.Summary.DepositsTotal = FormatAmount(rec.Currency, depositsTotal)
	rec.Summary.WithdrawalsTotal = FormatAmount(rec.Currency, withdrawalsTotal)
	rec.Summary.DepositsCount = strconv.Itoa(depositsCount)
	rec.Summary.WithdrawalsCount = strconv.Itoa(withdrawalsCount)
	rec.Summary.TransactionsCount = strconv.Itoa(len(rec.Transactions))
	rec.Summary.EndingBalance = FormatAmount(rec.Currency, balance)
	return nil
}
