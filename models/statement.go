package models

// Transaction is one row of the transaction register. Exactly one of
// Credit/Debit is populated; Balance is the running balance after the
// transaction, formatted with the statement currency symbol.
type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Credit      string `json:"credit"`
	Debit       string `json:"debit"`
	Balance     string `json:"balance"`
}

// DailyBalance is the ending balance for one calendar day of the period.
type DailyBalance struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// Summary holds the aggregate scalars printed in the summary sections.
// All values are pre-formatted strings; rendering recomputes the core
// totals from the transaction list, so caller-supplied values for those
// are advisory only.
type Summary struct {
	BeginningBalance  string `json:"beginning_balance"`
	DepositsCount     string `json:"deposits_count"`
	DepositsTotal     string `json:"deposits_total"`
	WithdrawalsCount  string `json:"withdrawals_count"`
	WithdrawalsTotal  string `json:"withdrawals_total"`
	EndingBalance     string `json:"ending_balance"`
	TransactionsCount string `json:"transactions_count"`

	// Extended scalars used by the PNC-style summary blocks.
	OverdraftProtection     string `json:"overdraft_protection"`
	OverdraftStatus         string `json:"overdraft_status"`
	AverageBalance          string `json:"average_balance"`
	Fees                    string `json:"fees"`
	ChecksWritten           string `json:"checks_written"`
	POSTransactions         string `json:"pos_transactions"`
	POSPINTransactions      string `json:"pos_pin_transactions"`
	TotalATMTransactions    string `json:"total_atm_transactions"`
	PNCATMTransactions      string `json:"pnc_atm_transactions"`
	OtherATMTransactions    string `json:"other_atm_transactions"`
	APYEarned               string `json:"apy_earned"`
	DaysInPeriod            string `json:"days_in_period"`
	AverageCollectedBalance string `json:"average_collected_balance"`
	InterestPaidPeriod      string `json:"interest_paid_period"`
	InterestPaidYTD         string `json:"interest_paid_ytd"`
}

// StatementRecord is the full input for one statement render. It is built
// by the data generator (or supplied by a caller) and treated as immutable
// by the rendering pipeline, except for the summary recomputation.
type StatementRecord struct {
	// Identity
	BankName string `json:"bank_name"`
	// LegalName is the registered entity name, e.g. "JPMorgan Chase Bank, N.A."
	LegalName string `json:"customer_bank_name"`
	LogoPath  string `json:"logo_path"`
	Contact   string `json:"contact"`
	Website   string `json:"website"`
	Currency  string `json:"currency"`

	// Account
	AccountHolder        string `json:"account_holder"`
	AccountHolderAddress string `json:"account_holder_address"`
	AccountNumber        string `json:"customer_account_number"`
	AccountType          string `json:"account_type"`
	StatementPeriod      string `json:"statement_period"`
	StatementDate        string `json:"statement_date"`

	// Citibank-style extras
	IBAN         string `json:"customer_iban"`
	ClientNumber string `json:"client_number"`
	DateOfBirth  string `json:"date_of_birth"`

	ShowFeeWaiver bool `json:"show_fee_waiver"`

	Summary       Summary        `json:"summary"`
	Transactions  []Transaction  `json:"transactions"`
	DailyBalances []DailyBalance `json:"daily_balances"`

	// Sections is only consumed by the dynamic layout.
	Sections []Section `json:"sections"`
}

// Deposits returns the transactions with a credit amount, in order.
func (r *StatementRecord) Deposits() []Transaction {
	var out []Transaction
	for _, t := range r.Transactions {
		if t.Credit != "" {
			out = append(out, t)
		}
	}
	return out
}

// Withdrawals returns the transactions with a debit amount, in order.
func (r *StatementRecord) Withdrawals() []Transaction {
	var out []Transaction
	for _, t := range r.Transactions {
		if t.Debit != "" {
			out = append(out, t)
		}
	}
	return out
}

// Fields exposes the flat string fields of the record under their template
// placeholder names. Paragraph templates and required-field validation both
// resolve against this map.
func (r *StatementRecord) Fields() map[string]string {
	return map[string]string{
		"bank_name":               r.BankName,
		"customer_bank_name":      r.LegalName,
		"account_holder":          r.AccountHolder,
		"account_holder_address":  r.AccountHolderAddress,
		"customer_account_number": r.AccountNumber,
		"account_type":            r.AccountType,
		"statement_period":        r.StatementPeriod,
		"statement_date":          r.StatementDate,
		"website":                 r.Website,
		"contact":                 r.Contact,
		"currency":                r.Currency,
		"customer_iban":           r.IBAN,
		"client_number":           r.ClientNumber,
		"date_of_birth":           r.DateOfBirth,
	}
}
