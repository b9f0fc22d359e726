package services

import (
	"bank_statement_gen_go/models"
)

// Region is the horizontal slice of the page a section renders into.
type Region struct {
	X     float64
	Width float64
}

// TextStyle pairs a font with a text color.
type TextStyle struct {
	Font  Font
	Color string
}

// StyleSource supplies the heading and body styles for section content.
// Fixed bank layouts return constants; the dynamic layout draws from a
// seeded pool for visual variety.
type StyleSource interface {
	Heading() TextStyle
	Body() TextStyle
}

type fixedStyle struct {
	heading TextStyle
	body    TextStyle
}

func (s fixedStyle) Heading() TextStyle { return s.heading }
func (s fixedStyle) Body() TextStyle    { return s.body }

// ensurer is the cursor contract the section renderer draws through. The
// single-column Cursor and the two-column cursor views both satisfy it.
type ensurer interface {
	Ensure(space float64, f Font) float64
	EnsureTable(space float64, f Font, hdr *TableHeader) float64
	Pos() float64
	Advance(dy float64)
}

const (
	defaultTruncate = 50
	minColWidth     = 36.0 // half an inch
)

// sectionRenderer draws a section's content blocks into a region, advancing
// the cursor and delegating all overflow decisions to it.
type sectionRenderer struct {
	surface Surface
	rec     *models.StatementRecord
	fields  map[string]string
	logger  RenderLog
	style   StyleSource
	// centerHeadings draws section titles centered in the region instead
	// of flush left.
	centerHeadings bool
	// contentWidths switches tables to the content-length-weighted column
	// split; widthJitter perturbs it (dynamic layout only).
	contentWidths bool
	widthJitter   func() float64
}

func (sr *sectionRenderer) render(cur ensurer, sec models.Section, region Region) {
	heading := sr.style.Heading()
	// Room for the heading plus one body line, so a heading is never
	// stranded alone at the bottom of a page.
	cur.Ensure(heading.Font.Size+4+sr.style.Body().Font.Size+4, heading.Font)
	sr.surface.SetFont(heading.Font)
	sr.surface.SetTextColor(heading.Color)
	if sr.centerHeadings {
		sr.surface.DrawCentredString(region.X+region.Width/2, cur.Pos(), sec.Title)
	} else {
		sr.surface.DrawString(region.X, cur.Pos(), sec.Title)
	}
	cur.Advance(heading.Font.Size + 4)

	for _, block := range sec.Blocks {
		switch block.Type {
		case models.BlockParagraph:
			sr.renderParagraph(cur, block, region)
		case models.BlockTable:
			sr.renderTable(cur, block, region)
		}
		cur.Advance(12)
	}
}

func (sr *sectionRenderer) renderParagraph(cur ensurer, block models.ContentBlock, region Region) {
	style := sr.style.Body()
	sr.surface.SetFont(style.Font)
	sr.surface.SetTextColor(style.Color)
	text := ResolveTemplate(block.Text, sr.fields, sr.logger)

	lines := []string{text}
	if block.Wrap {
		lines = WrapText(sr.surface, text, style.Font, region.Width)
	}
	lineHeight := style.Font.Size + 4
	for _, line := range lines {
		cur.Ensure(lineHeight, style.Font)
		sr.surface.DrawString(region.X, cur.Pos(), line)
		cur.Advance(lineHeight)
	}
}

func (sr *sectionRenderer) renderTable(cur ensurer, block models.ContentBlock, region Region) {
	style := sr.style.Body()
	sr.surface.SetFont(style.Font)
	sr.surface.SetTextColor(style.Color)

	data := sr.resolveTableData(block)
	if len(data) == 0 {
		sr.logger.Warnf("No data for table source %q, substituting placeholder row", block.DataKey)
		row := make([]string, columnCount(block))
		row[0] = emptyTableMessage(block.DataKey)
		data = [][]string{row}
	}

	widths := sr.columnWidths(block, data, region.Width)
	rightAlign := make(map[int]bool, len(block.RightAlign))
	for _, i := range block.RightAlign {
		rightAlign[i] = true
	}
	rowHeight := style.Font.Size + 4
	headerFont := Font{Name: "Helvetica-Bold", Size: style.Font.Size}

	var hdr *TableHeader
	if len(block.Headers) > 0 {
		hdr = &TableHeader{
			Labels:     block.Headers,
			ColWidths:  widths,
			RightAlign: rightAlign,
			Font:       headerFont,
			X:          region.X,
		}
	}

	if block.Boxed {
		sr.drawSummaryBox(cur.Pos(), region, widths, len(data), rowHeight)
	}

	if hdr != nil {
		// Room for the header plus at least one data row, so a header is
		// never stranded at the bottom of a page.
		cur.Ensure(rowHeight*2, headerFont)
		sr.surface.SetFont(headerFont)
		drawHeaderRow(sr.surface, hdr, cur.Pos())
		cur.Advance(headerFont.Size + 4)
		sr.surface.SetFont(style.Font)
	}

	if block.OpeningRow {
		cur.EnsureTable(rowHeight, style.Font, hdr)
		sr.surface.SetFont(headerFont)
		sr.surface.DrawString(region.X+widths[0]+cellPad, cur.Pos(), "Opening balance")
		sr.surface.DrawRightString(region.X+sum(widths)-cellPad, cur.Pos(), sr.rec.Summary.BeginningBalance)
		sr.surface.SetFont(style.Font)
		cur.Advance(rowHeight)
	}

	truncateAt := block.TruncateAt
	if truncateAt == 0 {
		truncateAt = defaultTruncate
	}
	for _, row := range data {
		cur.EnsureTable(rowHeight, style.Font, hdr)
		x := region.X
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			cell = ResolveTemplate(cell, sr.fields, sr.logger)
			cell = TruncateText(cell, truncateAt)
			if rightAlign[i] {
				sr.surface.DrawRightString(x+widths[i]-cellPad, cur.Pos(), cell)
			} else {
				sr.surface.DrawString(x+cellPad, cur.Pos(), cell)
			}
			x += widths[i]
		}
		cur.Advance(rowHeight)
	}

	if !block.Totals {
		return
	}
	if totals := sr.totalsRow(block, len(widths)); totals != nil {
		cur.EnsureTable(rowHeight, headerFont, hdr)
		sr.surface.SetFont(headerFont)
		x := region.X
		for i, cell := range totals {
			if i >= len(widths) {
				break
			}
			if cell == "" {
				x += widths[i]
				continue
			}
			// Totals sit flush right under the numeric columns; the label
			// stays left-aligned.
			if rightAlign[i] {
				sr.surface.DrawRightString(x+widths[i]-cellPad, cur.Pos(), cell)
			} else {
				sr.surface.DrawString(x+cellPad, cur.Pos(), cell)
			}
			x += widths[i]
		}
		sr.surface.SetFont(style.Font)
		cur.Advance(rowHeight)
		sr.surface.Line(region.X, cur.Pos()+rowHeight-4, region.X+sum(widths), cur.Pos()+rowHeight-4)
	}
}

// drawSummaryBox shades the account-summary table area before its rows are
// drawn (classic grey box around the balances).
func (sr *sectionRenderer) drawSummaryBox(y float64, region Region, widths []float64, rows int, rowHeight float64) {
	boxHeight := float64(rows)*rowHeight + 20
	sr.surface.BoxRect(region.X-cellPad, y-boxHeight+12, sum(widths)+2*cellPad, boxHeight, "#D3D3D3")
}

// resolveTableData materializes the block's rows, either literal or from a
// named data source on the record. The row shape for the transaction source
// follows the column count: five columns split debit/credit, four merge
// them into a signed amount column.
func (sr *sectionRenderer) resolveTableData(block models.ContentBlock) [][]string {
	if len(block.Data) > 0 {
		return block.Data
	}
	switch block.DataKey {
	case models.SourceTransactions:
		var rows [][]string
		for _, t := range sr.rec.Transactions {
			if columnCount(block) >= 5 {
				rows = append(rows, []string{t.Date, t.Description, t.Debit, t.Credit, t.Balance})
			} else {
				amount := t.Credit
				if amount == "" && t.Debit != "" {
					amount = "-" + t.Debit
				}
				rows = append(rows, []string{t.Date, t.Description, amount, t.Balance})
			}
		}
		return rows
	case models.SourceDeposits:
		var rows [][]string
		for _, t := range sr.rec.Deposits() {
			rows = append(rows, []string{t.Date, t.Description, t.Credit})
		}
		return rows
	case models.SourceWithdrawals:
		var rows [][]string
		for _, t := range sr.rec.Withdrawals() {
			rows = append(rows, []string{t.Date, t.Description, t.Debit})
		}
		return rows
	case models.SourceDailyBalances:
		var rows [][]string
		for _, b := range sr.rec.DailyBalances {
			rows = append(rows, []string{b.Date, b.Amount})
		}
		return rows
	case models.SourceAccountSummary:
		s := sr.rec.Summary
		return [][]string{
			{"Beginning Balance", s.BeginningBalance},
			{"Deposits and Credits", s.DepositsTotal},
			{"Withdrawals and Debits", s.WithdrawalsTotal},
			{"Ending Balance", s.EndingBalance},
		}
	case models.SourceActivitySummary:
		s := sr.rec.Summary
		return [][]string{
			{"Transaction Summary", ""},
			{"Checks paid/written", s.ChecksWritten},
			{"Check-card POS transactions", s.POSTransactions},
			{"Check-card/virtual POS PIN txn", s.POSPINTransactions},
			{"Total ATM transactions", s.TotalATMTransactions},
			{"PNC Bank ATM transactions", s.PNCATMTransactions},
			{"Other Bank ATM transactions", s.OtherATMTransactions},
			{"", ""},
			{"Interest Summary", ""},
			{"APY earned", s.APYEarned},
			{"Days in period", s.DaysInPeriod},
			{"Avg collected balance", s.AverageCollectedBalance},
			{"Interest paid this period", s.InterestPaidPeriod},
			{"YTD interest paid", s.InterestPaidYTD},
		}
	}
	return nil
}

// totalsRow builds the bold closing row for running ledgers; other tables
// get none. Cells align with the block's columns, empty cells are skipped.
func (sr *sectionRenderer) totalsRow(block models.ContentBlock, cols int) []string {
	s := sr.rec.Summary
	switch block.DataKey {
	case models.SourceTransactions:
		if cols >= 5 {
			return []string{"", "Total", s.WithdrawalsTotal, s.DepositsTotal, s.EndingBalance}
		}
		net := ""
		end, errEnd := ParseAmount(s.EndingBalance)
		begin, errBegin := ParseAmount(s.BeginningBalance)
		if errEnd == nil && errBegin == nil {
			net = FormatAmount(sr.rec.Currency, end-begin)
		}
		return []string{"", "Total", net, s.EndingBalance}
	case models.SourceDeposits:
		return []string{"Total Deposits and Additions", "", s.DepositsTotal}
	case models.SourceWithdrawals:
		return []string{"Total Electronic Withdrawals", "", s.WithdrawalsTotal}
	case models.SourceDailyBalances:
		return []string{"Ending balance", s.EndingBalance}
	}
	return nil
}

// columnWidths converts the block's width proportions into absolute column
// widths. The content-weighted mode scales each proportion by the longest
// cell in the column, clamped to [half an inch, the proportion's share],
// then normalizes back to the full region width.
func (sr *sectionRenderer) columnWidths(block models.ContentBlock, data [][]string, available float64) []float64 {
	cols := columnCount(block)
	if cols == 0 {
		if len(data) > 0 {
			cols = len(data[0])
		} else {
			cols = 1
		}
	}
	props := block.ColWidths
	if len(props) != cols {
		props = make([]float64, cols)
		for i := range props {
			props[i] = 1.0 / float64(cols)
		}
	}

	if !sr.contentWidths {
		widths := make([]float64, cols)
		for i, p := range props {
			widths[i] = p * available
		}
		return widths
	}

	colLengths := make([]int, cols)
	total := 0
	for _, row := range data {
		for i, cell := range row {
			if i < cols && len(cell) > colLengths[i] {
				colLengths[i] = len(cell)
			}
		}
	}
	for _, l := range colLengths {
		total += l
	}
	if total == 0 {
		total = 1
	}
	jitter := 1.0
	if sr.widthJitter != nil {
		jitter = sr.widthJitter()
	}
	widths := make([]float64, cols)
	sumW := 0.0
	for i, p := range props {
		w := available * p * (float64(colLengths[i]) / float64(total)) * jitter
		if w < minColWidth {
			w = minColWidth
		}
		if max := available * p; w > max {
			w = max
		}
		widths[i] = w
		sumW += w
	}
	if sumW > 0 {
		for i := range widths {
			widths[i] *= available / sumW
		}
	}
	return widths
}

func columnCount(block models.ContentBlock) int {
	if len(block.Headers) > 0 {
		return len(block.Headers)
	}
	if len(block.ColWidths) > 0 {
		return len(block.ColWidths)
	}
	if len(block.Data) > 0 {
		return len(block.Data[0])
	}
	return 0
}

func emptyTableMessage(dataKey string) string {
	switch dataKey {
	case models.SourceTransactions:
		return "No transactions for this period."
	case models.SourceDeposits:
		return "No deposits for this period."
	case models.SourceWithdrawals:
		return "No withdrawals for this period."
	case models.SourceDailyBalances:
		return "No balance activity for this period."
	}
	return "No data available"
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
