package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"bank_statement_gen_go/models"
)

// bankProfile is the static identity of one supported bank: who they are,
// how they format money, and which account products they offer.
type bankProfile struct {
	FullName     string
	LogoFile     string
	Contact      string
	Website      string
	Currency     string
	AccountTypes []string
}

var bankProfiles = map[string]bankProfile{
	"Chase": {
		FullName:     "JPMorgan Chase Bank, N.A.",
		LogoFile:     "chase_bank_logo.png",
		Contact:      "1-800-242-7338",
		Website:      "chase.com",
		Currency:     "$",
		AccountTypes: []string{"Chase Total Checking", "Chase Business Complete Checking"},
	},
	"Wells Fargo": {
		FullName:     "Wells Fargo Bank, N.A.",
		LogoFile:     "wellsfargo_logo.png",
		Contact:      "1-800-225-5935",
		Website:      "wellsfargo.com",
		Currency:     "$",
		AccountTypes: []string{"Everyday Checking", "Business Checking"},
	},
	"PNC": {
		FullName:     "PNC Bank, National Association",
		LogoFile:     "pnc_logo.png",
		Contact:      "1-888-PNC-BANK",
		Website:      "pnc.com",
		Currency:     "$",
		AccountTypes: []string{"Standard Checking", "Business Checking"},
	},
	"Citibank": {
		FullName:     "Citibank, N.A.",
		LogoFile:     "citibank_logo.png",
		Contact:      "1-800-374-9700",
		Website:      "citibank.com",
		Currency:     "£",
		AccountTypes: []string{"Citi Access Checking", "CitiBusiness Checking"},
	},
}

var depositDescriptions = []string{
	"Direct Deposit", "ATM Deposit", "Mobile Deposit", "Payroll Credit",
	"Refund", "Transfer from Savings", "Cash Deposit",
}

var withdrawalDescriptions = []string{
	"ATM Withdrawal", "Debit Card Purchase", "Online Bill Pay",
	"Check Payment", "Transfer to Savings", "Merchant Payment",
}

// BankNames lists the banks with a generation profile, in a stable order.
func BankNames() []string {
	names := make([]string, 0, len(bankProfiles))
	for name := range bankProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateStatement builds a fully populated synthetic statement record for
// the named bank. The same seed always produces the same record; seed zero
// draws a fresh random one. logoDir may be empty, in which case no logo is
// attached and rendering falls back to the text placeholder.
func GenerateStatement(bankName, logoDir string, seed uint64) (*models.StatementRecord, error) {
	profile, canonical, err := profileFor(bankName)
	if err != nil {
		return nil, err
	}
	f := gofakeit.New(seed)

	now := time.Now()
	endDate := f.DateRange(now.AddDate(0, 0, -30), now)
	startDate := endDate.AddDate(0, 0, -30)

	rec := &models.StatementRecord{
		BankName:             canonical,
		LegalName:            profile.FullName,
		Contact:              profile.Contact,
		Website:              profile.Website,
		Currency:             profile.Currency,
		AccountHolder:        f.Name(),
		AccountHolderAddress: fakeAddress(f),
		AccountNumber:        f.DigitN(12),
		AccountType:          profile.AccountTypes[f.Number(0, len(profile.AccountTypes)-1)],
		StatementPeriod:      fmt.Sprintf("%s - %s", startDate.Format("January 02, 2006"), endDate.Format("January 02, 2006")),
		StatementDate:        endDate.Format("January 02, 2006"),
		ShowFeeWaiver:        f.Bool(),
	}

	if logoDir != "" {
		logoPath := filepath.Join(logoDir, profile.LogoFile)
		if _, err := os.Stat(logoPath); err == nil {
			rec.LogoPath = logoPath
		}
	}

	if canonical == "Citibank" {
		rec.IBAN = "GB" + f.DigitN(2) + "CITI" + rec.AccountNumber
		rec.ClientNumber = f.UUID()
		rec.DateOfBirth = f.DateRange(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)).Format("01/02/2006")
	}

	beginning := round2(f.Float64Range(1000, 10000))
	rec.Summary = generateSummary(f, profile.Currency, beginning)
	rec.Transactions = generateTransactions(f, profile.Currency, startDate, endDate, beginning)
	rec.DailyBalances = generateDailyBalances(rec, startDate, endDate, beginning)

	// The walk also fills in the summary totals from the generated rows.
	if err := RecomputeBalances(rec, NewLogCollector()); err != nil {
		return nil, fmt.Errorf("generate %s: %w", canonical, err)
	}
	return rec, nil
}

func profileFor(bankName string) (bankProfile, string, error) {
	for name, profile := range bankProfiles {
		if strings.EqualFold(name, strings.TrimSpace(bankName)) {
			return profile, name, nil
		}
	}
	return bankProfile{}, "", fmt.Errorf("unsupported bank: %s", bankName)
}

func fakeAddress(f *gofakeit.Faker) string {
	a := f.Address()
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
}

func generateTransactions(f *gofakeit.Faker, currency string, start, end time.Time, beginning float64) []models.Transaction {
	count := f.Number(10, 20)
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = f.DateRange(start, end)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	txns := make([]models.Transaction, 0, count)
	balance := beginning
	for _, date := range dates {
		amount := round2(f.Float64Range(10, 1000))
		t := models.Transaction{Date: date.Format("01/02")}
		if f.Bool() {
			t.Description = f.RandomString(depositDescriptions)
			t.Credit = FormatAmount(currency, amount)
			balance += amount
		} else {
			t.Description = f.RandomString(withdrawalDescriptions)
			t.Debit = FormatAmount(currency, amount)
			balance -= amount
		}
		t.Balance = FormatAmount(currency, balance)
		txns = append(txns, t)
	}
	return txns
}

func generateDailyBalances(rec *models.StatementRecord, start, end time.Time, beginning float64) []models.DailyBalance {
	byDate := make(map[string]float64)
	for _, t := range rec.Transactions {
		if t.Credit != "" {
			if v, err := ParseAmount(t.Credit); err == nil {
				byDate[t.Date] += v
			}
		}
		if t.Debit != "" {
			if v, err := ParseAmount(t.Debit); err == nil {
				byDate[t.Date] -= v
			}
		}
	}

	var out []models.DailyBalance
	balance := beginning
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("01/02")
		balance += byDate[date]
		out = append(out, models.DailyBalance{
			Date:   date,
			Amount: FormatAmount(rec.Currency, balance),
		})
	}
	return out
}

func generateSummary(f *gofakeit.Faker, currency string, beginning float64) models.Summary {
	return models.Summary{
		BeginningBalance:        FormatAmount(currency, beginning),
		OverdraftProtection:     "None",
		OverdraftStatus:         "opted out",
		AverageBalance:          FormatAmount(currency, round2(f.Float64Range(1000, 10000))),
		Fees:                    FormatAmount(currency, round2(f.Float64Range(0, 50))),
		ChecksWritten:           fmt.Sprintf("%d", f.Number(0, 5)),
		POSTransactions:         fmt.Sprintf("%d", f.Number(0, 10)),
		POSPINTransactions:      fmt.Sprintf("%d", f.Number(0, 5)),
		TotalATMTransactions:    fmt.Sprintf("%d", f.Number(0, 5)),
		PNCATMTransactions:      fmt.Sprintf("%d", f.Number(0, 3)),
		OtherATMTransactions:    fmt.Sprintf("%d", f.Number(0, 2)),
		APYEarned:               fmt.Sprintf("%.2f%%", f.Float64Range(1, 5)),
		DaysInPeriod:            "30",
		AverageCollectedBalance: FormatAmount(currency, round2(f.Float64Range(1000, 10000))),
		InterestPaidPeriod:      FormatAmount(currency, round2(f.Float64Range(0, 10))),
		InterestPaidYTD:         FormatAmount(currency, round2(f.Float64Range(0, 50))),
	}
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
