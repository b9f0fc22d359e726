package services

import (
	"fmt"

	"bank_statement_gen_go/models"
)

// The four fixed bank layouts. The copy text, fonts, and table shapes come
// straight from the real statement formats each one mimics; all of them
// flow through the shared render pipeline.

func citiLayout() *LayoutConfig {
	return &LayoutConfig{
		Name:   "Citibank",
		Margin: 36,
		RequiredFields: []string{
			"customer_account_number", "customer_bank_name", "account_type",
			"account_holder", "statement_period", "statement_date",
		},
		Heading:        TextStyle{Font: Font{Name: "Helvetica", Size: 12}, Color: "#000000"},
		Body:           TextStyle{Font: Font{Name: "Helvetica", Size: 9}, Color: "#000000"},
		AccentColor:    "#003e7e",
		LogoWidth:      137.5,
		CenterHeadings: true,
		Info: func(rec *models.StatementRecord) (InfoBlock, InfoBlock) {
			iban := rec.IBAN
			if iban == "" {
				iban = "GB29CITI" + rec.AccountNumber
			}
			left := InfoBlock{
				Title: "Bank information",
				Lines: []string{
					"Account Provider Name: {customer_bank_name}",
					"Account Name: {account_type}",
					"IBAN: " + iban,
					"Country code: GB",
					"Check Digits: " + safeSlice(iban, 2, 4),
					"Bank code: CITI",
					"British bank code (sort code): " + safeSlice(iban, 8, 14),
					"Bank account number: {customer_account_number}",
				},
			}
			right := InfoBlock{
				Title: "Customer information",
				Lines: []string{
					"Client Name: {account_holder}",
					"Client number ID: " + orNA(rec.ClientNumber),
					"Date of birth: " + orNA(rec.DateOfBirth),
					"Account number: {customer_account_number}",
					"IBAN Bank: " + iban,
					"Bank name: {customer_bank_name}",
				},
			}
			return left, right
		},
		Sections: func(rec *models.StatementRecord) []models.Section {
			infoText := citiAccessInfo
			if rec.AccountType != "Citi Access Checking" {
				infoText = citiBusinessInfo
			}
			ledger := models.SourceTable(
				models.SourceTransactions,
				[]string{"Date", "Information", "Debit", "Credit", "Balance"},
				[]float64{0.17, 0.41, 0.14, 0.14, 0.14},
				2, 3, 4,
			)
			ledger.OpeningRow = true
			ledger.Totals = true
			ledger.TruncateAt = 25
			return []models.Section{
				{Title: "Important Account Information", Blocks: []models.ContentBlock{
					models.Paragraph(infoText),
				}},
				{Title: "Account Transactions", Blocks: []models.ContentBlock{
					{Type: models.BlockParagraph, Text: "{statement_period}"},
					{Type: models.BlockParagraph, Text: "Created on {statement_date}"},
					ledger,
				}},
			}
		},
		Notice: "This printout is for information purposes only. Your regular account statement of assets takes precedence.",
		Footer: []string{
			"Citigroup UK Limited is authorised by the Prudential Regulation Authority and regulated by the Financial Conduct Authority and the Prudential Regulation Authority.",
			"Our firm's Financial Services Register number is 805574. Citibank UK Limited is a company limited by shares registered in England and Wales with registered address at Citigroup Centre, Canada Square, Canary Wharf, London E14 5LB.",
			"© All rights reserved Citibank UK Limited 2021. CITI, the Arc Design & Citibank are registered service marks of Citigroup Inc. Calls may be monitored or recorded for training and service quality purposes. PNB FBD 132019.",
		},
		FooterFont: Font{Name: "Helvetica", Size: 7},
	}
}

func chaseLayout() *LayoutConfig {
	return &LayoutConfig{
		Name:   "Chase",
		Margin: 30,
		RequiredFields: []string{
			"customer_account_number", "account_holder", "account_holder_address",
			"statement_period", "account_type",
		},
		Heading:   TextStyle{Font: Font{Name: "Helvetica-Bold", Size: 10.5}, Color: "#000000"},
		Body:      TextStyle{Font: Font{Name: "Helvetica", Size: 9}, Color: "#000000"},
		LogoWidth: 90,
		LogoLeft:  true,
		Info: func(rec *models.StatementRecord) (InfoBlock, InfoBlock) {
			left := InfoBlock{
				Title: "{customer_bank_name}",
				Lines: []string{
					"PO Box 659754",
					"San Antonio, TX 78265-9754",
					"",
					"{account_holder}",
					"{account_holder_address}",
				},
			}
			right := InfoBlock{
				Title: "CUSTOMER SERVICE INFORMATION",
				Lines: []string{
					"{statement_period}",
					"Account Number: {customer_account_number}",
					"Web site: chase.com",
					"Service Center: 1-800-242-7338",
					"Hearing Impaired: 1-800-242-7383",
					"Para Espanol: 1-888-622-4273",
					"International Calls: 1-713-262-1679",
				},
			}
			return left, right
		},
		Sections: func(rec *models.StatementRecord) []models.Section {
			infoText := chaseTotalInfo
			feeText := chaseTotalFeeWaiver
			if rec.AccountType != "Chase Total Checking" {
				infoText = chaseBusinessInfo
				feeText = chaseBusinessFeeWaiver
			}

			s := rec.Summary
			summaryBlocks := []models.ContentBlock{{
				Type:    models.BlockTable,
				Headers: []string{"", "Instances", "Amount"},
				Data: [][]string{
					{"Beginning Balance", "", s.BeginningBalance},
					{"Deposits and Additions", s.DepositsCount, s.DepositsTotal},
					{"Electronic Withdrawals", s.WithdrawalsCount, s.WithdrawalsTotal},
					{"Ending Balance", s.TransactionsCount, s.EndingBalance},
				},
				ColWidths: []float64{0.4, 0.3, 0.3},
			}}
			if rec.ShowFeeWaiver {
				summaryBlocks = append(summaryBlocks, models.Paragraph(feeText))
			}

			deposits := models.SourceTable(
				models.SourceDeposits,
				[]string{"Date", "Description", "Amount"},
				[]float64{0.15, 0.7, 0.15},
				2,
			)
			deposits.Totals = true
			withdrawals := models.SourceTable(
				models.SourceWithdrawals,
				[]string{"Date", "Description", "Amount"},
				[]float64{0.15, 0.7, 0.15},
				2,
			)
			withdrawals.Totals = true
			balances := models.SourceTable(
				models.SourceDailyBalances,
				[]string{"Date", "Amount"},
				[]float64{0.5, 0.5},
			)

			return []models.Section{
				{Title: "Important Account Information", Blocks: []models.ContentBlock{
					models.Paragraph(infoText),
				}},
				{Title: "Checking Summary", Blocks: summaryBlocks},
				{Title: "Deposits and Additions", Blocks: []models.ContentBlock{deposits}},
				{Title: "Withdrawals", Blocks: []models.ContentBlock{withdrawals}},
				{Title: "Daily Ending Balance", Blocks: []models.ContentBlock{balances}},
			}
		},
		Footer: []string{
			"Disclosures",
			"All account transactions are subject to the Chase Deposit Account Agreement, available at chase.com. Interest rates and Annual Percentage Yields (APYs) may change without notice. For overdraft policies and fees, visit chase.com/overdraft or call 1-800-242-7338. JPMorgan Chase Bank, N.A. is a Member FDIC. Equal Housing Lender.",
		},
		FooterFont: Font{Name: "Helvetica", Size: 7.5},
	}
}

func wellsFargoLayout() *LayoutConfig {
	return &LayoutConfig{
		Name:   "Wells Fargo",
		Margin: 36.72,
		RequiredFields: []string{
			"customer_account_number", "account_type", "account_holder_address",
			"statement_period",
		},
		Heading:   TextStyle{Font: Font{Name: "Helvetica-Bold", Size: 14}, Color: "#000000"},
		Body:      TextStyle{Font: Font{Name: "Helvetica", Size: 10}, Color: "#000000"},
		LogoWidth: 48,
		Info: func(rec *models.StatementRecord) (InfoBlock, InfoBlock) {
			left := InfoBlock{
				Title: "{account_type}",
				Lines: []string{
					"Account number: {customer_account_number} | {statement_period}",
					"{account_holder}",
					"{account_holder_address}",
				},
			}
			right := InfoBlock{
				Title: "Questions?",
				Lines: []string{
					"Available by phone 24 hours a day, 7 days a week:",
					"1-800-CALL-WELLS (1-800-225-5935)",
					"TTY: 1-800-877-4833",
					"En espanol: 1-877-337-7454",
					"Online: wellsfargo.com",
					"Write: Wells Fargo Bank,",
					"420 Montgomery Street",
					"San Francisco, CA 94104",
				},
			}
			return left, right
		},
		Sections: func(rec *models.StatementRecord) []models.Section {
			infoText := wellsEverydayInfo
			if rec.AccountType != "Everyday Checking" {
				infoText = wellsBusinessInfo
			}
			infoText += " For questions, visit wellsfargo.com or contact our Customer Service at 1-800-225-5935, available 24/7."

			s := rec.Summary
			activity := models.ContentBlock{
				Type: models.BlockTable,
				Data: [][]string{
					{"Beginning balance on", s.BeginningBalance},
					{"Deposits / Credits", s.DepositsTotal},
					{"Withdrawals / Debits", s.WithdrawalsTotal},
					{"Ending balance on", s.EndingBalance},
				},
				ColWidths:  []float64{0.6, 0.4},
				RightAlign: []int{1},
			}
			routing := models.ContentBlock{
				Type: models.BlockTable,
				Data: [][]string{
					{"Account number: {customer_account_number}"},
					{"{account_holder}"},
					{"For Direct Deposit use Routing Number (RTN): 053000219"},
					{"For Wire Transfer use Routing Number (RTN): 121000248"},
				},
				ColWidths: []float64{1},
			}

			history := models.SourceTable(
				models.SourceTransactions,
				[]string{"Date", "Description", "Deposits / Credits", "Withdrawals / Debits", "Ending daily balance"},
				[]float64{0.12, 0.36, 0.14, 0.16, 0.22},
				2, 3, 4,
			)
			history.OpeningRow = true
			history.Totals = true
			history.TruncateAt = 45

			return []models.Section{
				{Title: "Your Wells Fargo", Blocks: []models.ContentBlock{
					models.Paragraph(wellsIntro),
				}},
				{Title: "Important Account Information", Blocks: []models.ContentBlock{
					models.Paragraph(infoText),
				}},
				{Title: "Activity summary", Blocks: []models.ContentBlock{activity, routing}},
				{Title: "Transaction history", Blocks: []models.ContentBlock{history}},
			}
		},
		Footer: []string{
			"Disclosures",
			"All account transactions are subject to the Wells Fargo Deposit Account Agreement, available at wellsfargo.com. Interest rates and Annual Percentage Yields (APYs) may change without notice. For details on overdraft policies and fees, visit wellsfargo.com/overdraft or call 1-800-225-5935.",
			"© 2025 Wells Fargo Bank, N.A. All rights reserved. Member FDIC.",
		},
		FooterFont: Font{Name: "Helvetica", Size: 9},
	}
}

func pncLayout() *LayoutConfig {
	return &LayoutConfig{
		Name:   "PNC",
		Margin: 36,
		RequiredFields: []string{
			"customer_account_number", "account_type", "statement_period",
			"account_holder", "account_holder_address",
		},
		Heading:   TextStyle{Font: Font{Name: "Helvetica", Size: 13}, Color: "#000000"},
		Body:      TextStyle{Font: Font{Name: "Helvetica", Size: 10}, Color: "#000000"},
		LogoWidth: 59.76,
		Info: func(rec *models.StatementRecord) (InfoBlock, InfoBlock) {
			left := InfoBlock{
				Title: "{account_type} Statement",
				Lines: []string{
					"PNC Bank",
					"{statement_period}",
					"{account_holder}",
					"{account_holder_address}",
				},
			}
			right := InfoBlock{
				Lines: []string{
					"Primary account number: {customer_account_number}",
					"Number of enclosures: 0",
					"24-hour Online & Mobile Banking at pnc.com",
					"Customer service: 1-888-PNC-BANK",
					"Mon-Fri 7 AM-10 PM ET, Sat-Sun 8 AM-5 PM ET",
					"Spanish: 1-866-HOLA-PNC",
					"Write: PO Box 609, Pittsburgh, PA 15230-9738",
					"TTY: 1-800-531-1648",
				},
			}
			return left, right
		},
		Sections: func(rec *models.StatementRecord) []models.Section {
			infoText := pncStandardInfo
			if rec.AccountType != "Standard Checking" {
				infoText = pncBusinessInfo
			}

			s := rec.Summary
			balanceSummary := models.ContentBlock{
				Type: models.BlockTable,
				Data: [][]string{
					{"Beginning balance", s.BeginningBalance},
					{"Deposits & other additions", s.DepositsTotal},
					{"Checks & other deductions", s.WithdrawalsTotal},
					{"Ending balance", s.EndingBalance},
					{"Average monthly balance", orZeroAmount(s.AverageBalance)},
					{"Charges & fees", orZeroAmount(s.Fees)},
				},
				ColWidths:  []float64{0.7, 0.3},
				RightAlign: []int{1},
			}
			activitySummary := models.ContentBlock{
				Type:       models.BlockTable,
				DataKey:    models.SourceActivitySummary,
				ColWidths:  []float64{0.7, 0.3},
				RightAlign: []int{1},
			}

			deposits := pncDetailTable(models.SourceDeposits)
			withdrawals := pncDetailTable(models.SourceWithdrawals)

			return []models.Section{
				{Title: "Important Account Information", Blocks: []models.ContentBlock{
					models.Paragraph(infoText),
					{Type: models.BlockParagraph, Text: "Questions? Visit any PNC branch or call 1-888-762-2265 (24/7)."},
				}},
				{Title: "{account_type} Summary", Blocks: []models.ContentBlock{
					{Type: models.BlockParagraph, Text: "Account number: {customer_account_number}"},
					{Type: models.BlockParagraph, Text: "Overdraft Protection Provided By: " + orNone(s.OverdraftProtection)},
					{Type: models.BlockParagraph, Text: "Overdraft Coverage: Your account is " + orDefault(s.OverdraftStatus, "opted out") + "."},
					balanceSummary,
				}},
				{Title: "Transaction and Interest Summary", Blocks: []models.ContentBlock{activitySummary}},
				{Title: "Deposits & Other Additions", Blocks: []models.ContentBlock{
					deposits,
					{Type: models.BlockParagraph, Text: fmt.Sprintf("There are %s deposits totaling %s.", s.DepositsCount, s.DepositsTotal)},
				}},
				{Title: "Checks & Other Deductions", Blocks: []models.ContentBlock{
					withdrawals,
					{Type: models.BlockParagraph, Text: fmt.Sprintf("There are %s withdrawals totaling %s.", s.WithdrawalsCount, s.WithdrawalsTotal)},
				}},
			}
		},
		Footer: []string{
			"Disclosures",
			"All account transactions are subject to the PNC Consumer Funds Availability Policy and Account Agreement, available at pnc.com. Interest rates and Annual Percentage Yields (APYs) may change without notice. For overdraft information, visit pnc.com/overdraft or call 1-888-762-2265.",
			"PNC Bank, National Association, Member FDIC. Equal Housing Lender.",
		},
		FooterFont: Font{Name: "Helvetica", Size: 10},
	}
}

func pncDetailTable(source string) models.ContentBlock {
	return models.SourceTable(
		source,
		[]string{"Date", "Description", "Amount"},
		[]float64{0.15, 0.65, 0.2},
		2,
	)
}

func safeSlice(s string, from, to int) string {
	if from < 0 || to > len(s) || from > to {
		return ""
	}
	return s[from:to]
}

func orNA(s string) string      { return orDefault(s, "N/A") }
func orNone(s string) string    { return orDefault(s, "None") }
func orZeroAmount(s string) string { return orDefault(s, "$0.00") }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

const (
	citiAccessInfo = "Effective July 1, 2025, the monthly account fee for Citi Access Checking accounts will increase to £10 unless you maintain a minimum daily balance of £1,500 or have qualifying direct deposits of £500 or more per month. Starting June 30, 2025, Citibank will introduce real-time transaction alerts for Citi Access Checking accounts via the Citi Mobile UK app. Enable alerts at citibank.co.uk/alerts. Effective July 15, 2025, Citibank will waive overdraft fees for transactions of £5 or less and cap daily overdraft fees at two per day for Citi Access Checking accounts. For questions, visit citibank.co.uk or contact our Client Contact Centre at 0800 005 555 (or +44 20 7500 5500 from abroad), available 24/7."

	citiBusinessInfo = "Effective July 1, 2025, the monthly account fee for CitiBusiness Checking accounts will increase to £15 unless you maintain a minimum daily balance of £5,000 or have £2,000 in net purchases on a Citi Business Debit Card per month. Starting June 30, 2025, Citibank will offer enhanced cash flow tools for CitiBusiness Checking accounts via Citi Online Banking, including automated invoice tracking and payment scheduling. Effective July 15, 2025, Citibank will reduce domestic BACS transfer fees to £20 for CitiBusiness Checking accounts, down from £25. For questions, visit citibank.co.uk or contact our Client Contact Centre at 0800 005 555 (or +44 20 7500 5500 from abroad), available 24/7."

	chaseTotalInfo = "Effective July 1, 2025, the monthly service fee for Chase Total Checking accounts will increase to $15 unless you maintain a minimum daily balance of $1,500, have $500 in qualifying direct deposits, or maintain a linked Chase savings account with a balance of $5,000 or more. Starting June 30, 2025, Chase will introduce real-time transaction alerts for Chase Total Checking accounts via the Chase Mobile app to enhance account monitoring. Enable alerts at chase.com/alerts. Effective July 15, 2025, Chase will waive overdraft fees for transactions of $5 or less and cap daily overdraft fees at two per day for Chase Total Checking accounts. For questions about your account or these changes, please visit chase.com or contact our Customer Service team at 1-800-242-7338, available 24/7."

	chaseBusinessInfo = "Effective July 1, 2025, the monthly service fee for Chase Business Complete Checking accounts will increase to $20 unless you maintain a minimum daily balance of $2,000, have $2,000 in net purchases on a Chase Business Debit Card, or maintain linked Chase business accounts with a combined balance of $10,000. Starting June 30, 2025, Chase will offer enhanced cash flow tools for Chase Business Complete Checking accounts via Chase Online, including automated invoice tracking and payment scheduling. Effective July 15, 2025, Chase will reduce wire transfer fees to $25 for domestic transfers for Chase Business Complete Checking accounts, down from $30. For questions about your account or these changes, please visit chase.com or contact our Customer Service team at 1-800-242-7338, available 24/7."

	chaseTotalFeeWaiver = "Your monthly service fee was waived because you maintained an average checking balance of $1,500 or had qualifying direct deposits totaling $500 or more during the statement period."

	chaseBusinessFeeWaiver = "Your monthly service fee was waived because you maintained an average checking balance of $10,000 or had $2,500 in qualifying direct deposits during the statement period."

	wellsIntro = "It's a great time to talk with a banker about how Wells Fargo's accounts and services can help you stay competitive by saving you time and money. To find out how we can help, stop by any Wells Fargo location or call us at the number at the top of your statement."

	wellsEverydayInfo = "Effective July 1, 2025, the monthly service fee for Everyday Checking accounts will increase to $12 unless you maintain a minimum daily balance of $500, have $500 in qualifying direct deposits, or maintain a linked Wells Fargo savings account with a balance of $300 or more. Starting June 30, 2025, Wells Fargo will introduce real-time transaction alerts for Everyday Checking accounts via the Wells Fargo Mobile app. Enable alerts at wellsfargo.com/alerts. Effective July 15, 2025, Wells Fargo will waive overdraft fees for transactions of $5 or less and cap daily overdraft fees at two per day for Everyday Checking accounts."

	wellsBusinessInfo = "Effective July 1, 2025, the monthly service fee for Business Checking accounts will increase to $14 unless you maintain a minimum daily balance of $2,500 or have $1,000 in net purchases on a Wells Fargo Business Debit Card per month. Starting June 30, 2025, Wells Fargo will offer enhanced cash flow tools for Business Checking accounts via Wells Fargo Online Banking, including automated invoice tracking and payment scheduling. Effective July 15, 2025, Wells Fargo will reduce domestic wire transfer fees to $25 for Business Checking accounts, down from $30."

	pncStandardInfo = "Effective July 1, 2025, the monthly service fee will be $10 unless you maintain a minimum daily balance of $1,500 or have qualifying direct deposits of $500 or more per month. Starting June 30, 2025, PNC will introduce real-time transaction alerts for Standard Checking accounts via the PNC Mobile app. Enable alerts at pnc.com/alerts. Effective July 15, 2025, PNC will waive overdraft fees for transactions of $5 or less and cap daily overdraft fees at two per day for Standard Checking accounts. For questions, visit pnc.com or contact our Customer Service at 1-888-PNC-BANK, available 24/7."

	pncBusinessInfo = "Effective July 1, 2025, the monthly service fee for Business Checking accounts will be $15 unless you maintain a minimum daily balance of $5,000 or have $2,000 in net purchases on a PNC Business Debit Card per month. Starting June 30, 2025, PNC will offer enhanced cash flow tools for Business Checking accounts via PNC Online Banking, including automated invoice tracking and payment scheduling. Effective July 15, 2025, PNC will reduce domestic wire transfer fees to $25 for Business Checking accounts, down from $30. For questions, visit pnc.com or contact our Customer Service at 1-888-PNC-BANK, available 24/7."
)
