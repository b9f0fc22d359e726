package services

// TableHeader describes the header row a running table needs redrawn at the
// top of every continuation page.
type TableHeader struct {
	Labels    []string
	ColWidths []float64 // absolute widths, points
	// RightAlign marks the numeric columns drawn flush right.
	RightAlign map[int]bool
	Font       Font
	// X is the left edge of the table (usually the page margin).
	X float64
}

// cellPad keeps cell text off the column rules.
const cellPad = 8.0

// Cursor owns the vertical write position for one render. Every atomic draw
// goes through Ensure/EnsureTable first, which performs the page break and
// the table-header repeat when the requested space does not fit.
type Cursor struct {
	surface Surface
	y       float64
	margin  float64
	// Breaks counts the page transitions performed by this cursor.
	Breaks int
}

// NewCursor starts at the top of the page inside the margin.
func NewCursor(s Surface, margin float64) *Cursor {
	return &Cursor{surface: s, y: PageHeight - margin, margin: margin}
}

// Pos returns the current y position.
func (c *Cursor) Pos() float64 { return c.y }

// Set moves the cursor to an absolute y position.
func (c *Cursor) Set(y float64) { c.y = y }

// Advance moves the cursor down by dy points.
func (c *Cursor) Advance(dy float64) { c.y -= dy }

// Margin returns the page margin the cursor was built with.
func (c *Cursor) Margin() float64 { return c.margin }

// Ensure guarantees space points of vertical room, breaking the page when
// the content would cross into the bottom margin. The font is restored on
// the new page. Returns the post-check y position.
func (c *Cursor) Ensure(space float64, f Font) float64 {
	return c.EnsureTable(space, f, nil)
}

// EnsureTable is Ensure for table rows: when a break happens mid-table the
// header row is redrawn at the top of the new page and the cursor advances
// past it, so a table spanning pages shows its header on every page.
func (c *Cursor) EnsureTable(space float64, f Font, hdr *TableHeader) float64 {
	if c.y-space < c.margin {
		c.surface.ShowPage()
		c.surface.SetFont(f)
		c.y = PageHeight - c.margin
		c.Breaks++
		if hdr != nil && len(hdr.Labels) > 0 && len(hdr.ColWidths) > 0 {
			c.surface.SetFont(hdr.Font)
			drawHeaderRow(c.surface, hdr, c.y)
			c.y -= hdr.Font.Size + 4
			c.surface.SetFont(f)
		}
	}
	return c.y
}

// drawHeaderRow draws the labels across the table columns at y.
func drawHeaderRow(s Surface, hdr *TableHeader, y float64) {
	x := hdr.X
	for i, label := range hdr.Labels {
		if i >= len(hdr.ColWidths) {
			break
		}
		w := hdr.ColWidths[i]
		if hdr.RightAlign[i] {
			s.DrawRightString(x+w-cellPad, y, label)
		} else {
			s.DrawString(x+cellPad, y, label)
		}
		x += w
	}
}
