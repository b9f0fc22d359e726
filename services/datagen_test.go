package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankNames(t *testing.T) {
	assert.Equal(t, []string{"Chase", "Citibank", "PNC", "Wells Fargo"}, BankNames())
}

func TestGenerateStatement(t *testing.T) {
	t.Run("Same Seed Same Record", func(t *testing.T) {
		a, err := GenerateStatement("Chase", "", 1234)
		require.NoError(t, err)
		b, err := GenerateStatement("Chase", "", 1234)
		require.NoError(t, err)

		assert.Equal(t, a.AccountHolder, b.AccountHolder)
		assert.Equal(t, a.AccountNumber, b.AccountNumber)
		assert.Equal(t, a.AccountType, b.AccountType)
		assert.Equal(t, a.Summary.BeginningBalance, b.Summary.BeginningBalance)
		require.Equal(t, len(a.Transactions), len(b.Transactions))
		for i := range a.Transactions {
			assert.Equal(t, a.Transactions[i].Description, b.Transactions[i].Description)
			assert.Equal(t, a.Transactions[i].Credit, b.Transactions[i].Credit)
			assert.Equal(t, a.Transactions[i].Debit, b.Transactions[i].Debit)
		}
	})

	t.Run("Different Seeds Differ", func(t *testing.T) {
		a, err := GenerateStatement("Chase", "", 1)
		require.NoError(t, err)
		b, err := GenerateStatement("Chase", "", 2)
		require.NoError(t, err)
		assert.NotEqual(t, a.AccountNumber, b.AccountNumber)
	})

	t.Run("Transactions Are Chronological", func(t *testing.T) {
		rec, err := GenerateStatement("Wells Fargo", "", 77)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rec.Transactions), 10)
		assert.LessOrEqual(t, len(rec.Transactions), 20)
		for i := 1; i < len(rec.Transactions); i++ {
			prev, err := time.Parse("01/02", rec.Transactions[i-1].Date)
			require.NoError(t, err)
			cur, err := time.Parse("01/02", rec.Transactions[i].Date)
			require.NoError(t, err)
			// The only permitted inversion is the December to January wrap,
			// where parsing without a year loses the ordering.
			if cur.Before(prev) {
				assert.Equal(t, time.December, prev.Month())
				assert.Equal(t, time.January, cur.Month())
			}
		}
	})

	t.Run("Summary Totals Match The Register", func(t *testing.T) {
		rec, err := GenerateStatement("PNC", "", 42)
		require.NoError(t, err)

		deposits, withdrawals := 0.0, 0.0
		for _, tx := range rec.Transactions {
			if tx.Credit != "" {
				v, err := ParseAmount(tx.Credit)
				require.NoError(t, err)
				deposits += v
			}
			if tx.Debit != "" {
				v, err := ParseAmount(tx.Debit)
				require.NoError(t, err)
				withdrawals += v
			}
		}
		gotDeposits, err := ParseAmount(rec.Summary.DepositsTotal)
		require.NoError(t, err)
		gotWithdrawals, err := ParseAmount(rec.Summary.WithdrawalsTotal)
		require.NoError(t, err)
		assert.InDelta(t, deposits, gotDeposits, 0.01)
		assert.InDelta(t, withdrawals, gotWithdrawals, 0.01)

		beginning, err := ParseAmount(rec.Summary.BeginningBalance)
		require.NoError(t, err)
		ending, err := ParseAmount(rec.Summary.EndingBalance)
		require.NoError(t, err)
		assert.InDelta(t, beginning+deposits-withdrawals, ending, 0.01)
	})

	t.Run("Citibank Records Carry IBAN Details", func(t *testing.T) {
		rec, err := GenerateStatement("Citibank", "", 9)
		require.NoError(t, err)
		assert.True(t, len(rec.IBAN) > 8)
		assert.Equal(t, "GB", rec.IBAN[:2])
		assert.NotEmpty(t, rec.ClientNumber)
		assert.NotEmpty(t, rec.DateOfBirth)
		assert.Equal(t, "£", rec.Currency)
	})

	t.Run("Other Banks Skip IBAN Details", func(t *testing.T) {
		rec, err := GenerateStatement("Chase", "", 9)
		require.NoError(t, err)
		assert.Empty(t, rec.IBAN)
		assert.Empty(t, rec.ClientNumber)
	})

	t.Run("Bank Name Is Case Insensitive", func(t *testing.T) {
		rec, err := GenerateStatement("wells fargo", "", 5)
		require.NoError(t, err)
		assert.Equal(t, "Wells Fargo", rec.BankName)
	})

	t.Run("Unsupported Bank Rejected", func(t *testing.T) {
		_, err := GenerateStatement("Monzo", "", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported bank")
	})

	t.Run("Missing Logo Dir Leaves Path Empty", func(t *testing.T) {
		rec, err := GenerateStatement("Chase", "", 5)
		require.NoError(t, err)
		assert.Empty(t, rec.LogoPath)
	})

	t.Run("Generated Record Renders", func(t *testing.T) {
		rec, err := GenerateStatement("Chase", "", 31)
		require.NoError(t, err)
		out, err := RenderStatement(rec, &RenderOptions{Layout: LayoutChase}, NewLogCollector())
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(out[:4]))
	})
}
