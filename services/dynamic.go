package services

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"bank_statement_gen_go/models"
)

// Style pools for the dynamic layout. Conservative picks only, so every
// combination still reads like a bank document.
var (
	dynamicFonts  = []string{"Helvetica", "Times-Roman", "Courier"}
	dynamicColors = []string{"#000000", "#333333", "#000066"}
)

// stylePicker is a seeded StyleSource: each call draws a fresh font, size,
// and color combination, so section styles vary within one document but the
// whole document reproduces from its seed.
type stylePicker struct {
	rng *rand.Rand
}

func newStylePicker(seed int64) *stylePicker {
	return &stylePicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *stylePicker) Heading() TextStyle {
	return TextStyle{
		Font:  Font{Name: dynamicFonts[p.rng.Intn(len(dynamicFonts))], Size: float64(12 + p.rng.Intn(5))},
		Color: dynamicColors[p.rng.Intn(len(dynamicColors))],
	}
}

func (p *stylePicker) Body() TextStyle {
	return TextStyle{
		Font:  Font{Name: dynamicFonts[p.rng.Intn(len(dynamicFonts))], Size: float64(8 + p.rng.Intn(5))},
		Color: dynamicColors[p.rng.Intn(len(dynamicColors))],
	}
}

// WidthJitter perturbs content-weighted column widths by up to ten percent
// either way.
func (p *stylePicker) WidthJitter() float64 {
	return 0.9 + 0.2*p.rng.Float64()
}

// sectionOrder is the canonical ordering of well-known section titles;
// unknown titles sort after all of them, keeping their relative order.
var sectionOrder = map[string]int{
	"Welcome Message":                  1,
	"Important Account Information":    2,
	"Account Summary":                  3,
	"Transaction and Interest Summary": 4,
	"Transaction History":              5,
	"Daily Ending Balance":             6,
}

const sectionOrderDefault = 10

func orderSections(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return sectionRank(out[i].Title) < sectionRank(out[j].Title)
	})
	return out
}

func sectionRank(title string) int {
	if r, ok := sectionOrder[title]; ok {
		return r
	}
	return sectionOrderDefault
}

// dynamicLayout builds a per-render layout config for a bank without a fixed
// template. The style seed and column style are settled here and written
// back into opts so the caller can persist what was actually used.
func dynamicLayout(rec *models.StatementRecord, opts *RenderOptions, logger RenderLog) (*LayoutConfig, StyleSource) {
	if opts.StyleSeed == 0 {
		opts.StyleSeed = time.Now().UnixNano()
	}
	picker := newStylePicker(opts.StyleSeed)

	if opts.ColumnStyle == "" {
		opts.ColumnStyle = ColumnSequential
		if picker.rng.Intn(2) == 1 {
			opts.ColumnStyle = ColumnTwoColumn
		}
	}
	logger.Infof("Layout for %s: %s (seed %d)", rec.BankName, opts.ColumnStyle, opts.StyleSeed)

	logoWidth := 108.0
	if strings.EqualFold(rec.BankName, "wells fargo") {
		logoWidth = 72.0
	}

	return &LayoutConfig{
		Name:   rec.BankName,
		Margin: 36,
		RequiredFields: []string{
			"bank_name", "account_holder", "account_holder_address",
			"account_type", "customer_account_number", "website", "contact",
		},
		Heading:   picker.Heading(),
		Body:      picker.Body(),
		LogoWidth: logoWidth,
		LogoLeft:  picker.rng.Intn(2) == 0,
		Masthead:  "{account_type} Statement",
		Info: func(rec *models.StatementRecord) (InfoBlock, InfoBlock) {
			left := InfoBlock{Title: "{account_holder}"}
			for _, part := range strings.Split(rec.AccountHolderAddress, ",") {
				if part = strings.TrimSpace(part); part != "" {
					left.Lines = append(left.Lines, part)
				}
			}
			return left, InfoBlock{}
		},
		Sections: func(rec *models.StatementRecord) []models.Section {
			sections := rec.Sections
			if len(sections) == 0 {
				logger.Warnf("No sections provided for %s, using default sections", rec.BankName)
				sections = defaultDynamicSections()
			}
			return orderSections(sections)
		},
		Footer: []string{
			"All account transactions are subject to the {bank_name} Deposit Account Agreement, available at {website}. Interest rates and Annual Percentage Yields (APYs) may change without notice. For details on overdraft policies and fees, visit {website}/overdraft or call {contact}. © 2025 {bank_name} Bank, N.A. All rights reserved. Member FDIC.",
		},
		FooterFont: Font{Name: "Helvetica", Size: 8},
	}, picker
}

func defaultDynamicSections() []models.Section {
	summary := models.SourceTable(models.SourceAccountSummary, nil, []float64{0.75, 0.25}, 1)
	summary.Boxed = true

	history := models.SourceTable(
		models.SourceTransactions,
		[]string{"Date", "Description", "Amount", "Balance"},
		[]float64{0.15, 0.45, 0.20, 0.20},
		2, 3,
	)
	history.Totals = true

	return []models.Section{
		{Title: "Important Account Information", Blocks: []models.ContentBlock{
			models.Paragraph("Effective July 1, 2025, the monthly service fee for {account_type} accounts will increase to $15 unless you maintain a minimum daily balance of $1,500, have $500 in qualifying direct deposits, or maintain a linked savings account with a balance of $5,000 or more. For questions, visit {website} or call {contact}."),
		}},
		{Title: "Account Summary", Blocks: []models.ContentBlock{summary}},
		{Title: "Transaction History", Blocks: []models.ContentBlock{history}},
	}
}

// twinCursor coordinates two column cursors sharing one page. Each column
// advances independently, but a page break resets both columns to the top
// so the columns never drift onto different pages.
type twinCursor struct {
	surface Surface
	margin  float64
	yLeft   float64
	yRight  float64
	// Breaks counts page transitions, same as Cursor.Breaks.
	Breaks int
}

func newTwinCursor(s Surface, margin float64) *twinCursor {
	top := PageHeight - margin
	return &twinCursor{surface: s, margin: margin, yLeft: top, yRight: top}
}

// Top aligns both columns to the given y, used to start the columns below
// the single-column header area.
func (t *twinCursor) Top(y float64) {
	t.yLeft = y
	t.yRight = y
}

func (t *twinCursor) Left() *columnCursor  { return &columnCursor{tc: t, y: &t.yLeft} }
func (t *twinCursor) Right() *columnCursor { return &columnCursor{tc: t, y: &t.yRight} }

// columnCursor is one column's view of a twinCursor; it satisfies the same
// contract as Cursor.
type columnCursor struct {
	tc *twinCursor
	y  *float64
}

func (c *columnCursor) Pos() float64      { return *c.y }
func (c *columnCursor) Advance(dy float64) { *c.y -= dy }

func (c *columnCursor) Ensure(space float64, f Font) float64 {
	return c.EnsureTable(space, f, nil)
}

func (c *columnCursor) EnsureTable(space float64, f Font, hdr *TableHeader) float64 {
	if *c.y-space < c.tc.margin {
		c.tc.surface.ShowPage()
		c.tc.surface.SetFont(f)
		top := PageHeight - c.tc.margin
		c.tc.yLeft = top
		c.tc.yRight = top
		c.tc.Breaks++
		if hdr != nil && len(hdr.Labels) > 0 && len(hdr.ColWidths) > 0 {
			c.tc.surface.SetFont(hdr.Font)
			drawHeaderRow(c.tc.surface, hdr, *c.y)
			*c.y -= hdr.Font.Size + 4
			c.tc.surface.SetFont(f)
		}
	}
	return *c.y
}

// renderTwoColumn lays sections out in two columns, alternating left and
// right. The section renderer drives the column cursors exactly as it
// drives the single-column cursor.
func renderTwoColumn(surface Surface, sr *sectionRenderer, sections []models.Section, margin, usable, startY float64) *twinCursor {
	tc := newTwinCursor(surface, margin)
	tc.Top(startY)
	colWidth := usable/2 - 10
	leftRegion := Region{X: margin, Width: colWidth}
	rightRegion := Region{X: margin + usable/2 + 10, Width: colWidth}

	for i, sec := range sections {
		if i%2 == 0 {
			sr.render(tc.Left(), sec, leftRegion)
		} else {
			sr.render(tc.Right(), sec, rightRegion)
		}
	}
	return tc
}
