package services

import (
	"fmt"

	"bank_statement_gen_go/models"
)

// RenderStatement produces the finished PDF for one statement record. The
// record's running balances and summary totals are recomputed before any
// drawing, and required-field validation runs before a single page is
// emitted, so a failed render produces no partial output. The dynamic
// layout writes its settled style seed and column style back into opts so
// the caller can persist what was actually rendered.
func RenderStatement(rec *models.StatementRecord, opts *RenderOptions, logger RenderLog) ([]byte, error) {
	if logger == nil {
		logger = NewLogCollector()
	}

	var cfg *LayoutConfig
	var style StyleSource
	if opts.Layout == LayoutDynamic {
		cfg, style = dynamicLayout(rec, opts, logger)
	} else {
		fixed, err := LayoutFor(opts.Layout)
		if err != nil {
			return nil, err
		}
		cfg = fixed
		style = fixedStyle{heading: cfg.Heading, body: cfg.Body}
	}

	if err := cfg.ValidateRequired(rec); err != nil {
		logger.Warnf("Validation failed for %s: %v", cfg.Name, err)
		return nil, err
	}
	if err := RecomputeBalances(rec, logger); err != nil {
		return nil, fmt.Errorf("balance recomputation: %w", err)
	}

	surface := NewCanvas()
	if err := renderDocument(surface, cfg, style, rec, *opts, logger); err != nil {
		return nil, err
	}
	out, err := surface.Bytes()
	if err != nil {
		return nil, err
	}
	logger.Infof("PDF generated for %s (%d pages, %d bytes)", cfg.Name, surface.PageCount(), len(out))
	return out, nil
}

func renderDocument(surface Surface, cfg *LayoutConfig, style StyleSource, rec *models.StatementRecord, opts RenderOptions, logger RenderLog) error {
	margin := cfg.Margin
	usable := PageWidth - 2*margin
	fields := rec.Fields()
	body := style.Body()

	cur := NewCursor(surface, margin)
	surface.SetFont(body.Font)
	surface.SetTextColor(body.Color)

	drawLogo(surface, cur, cfg, rec, body.Font, logger)

	if cfg.AccentColor != "" {
		surface.FillRect(margin, cur.Pos()-12, usable, 4, cfg.AccentColor)
		cur.Advance(24)
	}

	if cfg.Info != nil {
		left, right := cfg.Info(rec)
		colWidth := usable/2 - 12
		yLeft := drawInfoColumn(surface, margin, cur.Pos(), colWidth, left, fields, body, logger)
		yRight := drawInfoColumn(surface, margin+usable/2, cur.Pos(), colWidth, right, fields, body, logger)
		if yRight < yLeft {
			yLeft = yRight
		}
		cur.Set(yLeft - 24)
	}

	if cfg.Masthead != "" {
		heading := style.Heading()
		cur.Ensure(heading.Font.Size+4, heading.Font)
		surface.SetFont(heading.Font)
		surface.SetTextColor(heading.Color)
		surface.DrawCentredString(PageWidth/2, cur.Pos(), ResolveTemplate(cfg.Masthead, fields, logger))
		cur.Advance(heading.Font.Size + 12)
	}

	sr := &sectionRenderer{
		surface:        surface,
		rec:            rec,
		fields:         fields,
		logger:         logger,
		style:          style,
		centerHeadings: cfg.CenterHeadings,
		contentWidths:  opts.Layout == LayoutDynamic,
	}
	if picker, ok := style.(*stylePicker); ok {
		sr.widthJitter = picker.WidthJitter
	}

	sections := cfg.Sections(rec)
	region := Region{X: margin, Width: usable}

	if opts.Layout == LayoutDynamic && opts.ColumnStyle == ColumnTwoColumn {
		tc := renderTwoColumn(surface, sr, sections, margin, usable, cur.Pos())
		y := tc.yLeft
		if tc.yRight < y {
			y = tc.yRight
		}
		cur.Set(y)
		cur.Breaks += tc.Breaks
	} else {
		for _, sec := range sections {
			sr.render(cur, sec, region)
			cur.Advance(12)
		}
	}

	if cfg.Notice != "" {
		cur.Ensure(48, body.Font)
		surface.SetFont(body.Font)
		surface.SetTextColor(body.Color)
		surface.DrawCentredString(PageWidth/2, cur.Pos(), cfg.Notice)
		cur.Advance(36)
	}

	drawFooter(surface, cur, cfg, fields, usable, logger)
	return nil
}

// drawLogo places the bank logo in the masthead. A missing or unreadable
// logo file degrades to a bracketed text placeholder with a warning; it
// never fails the render.
func drawLogo(surface Surface, cur *Cursor, cfg *LayoutConfig, rec *models.StatementRecord, body Font, logger RenderLog) {
	margin := cur.Margin()
	x := PageWidth - margin - cfg.LogoWidth
	if cfg.LogoLeft {
		x = margin
	}

	if rec.LogoPath == "" {
		logger.Warnf("Logo path not provided for %s", rec.BankName)
		drawLogoPlaceholder(surface, cur, rec.BankName, x, body)
		return
	}
	aspect, err := ImageAspect(rec.LogoPath)
	if err != nil {
		logger.Warnf("Failed to render logo for %s: %v", rec.BankName, err)
		drawLogoPlaceholder(surface, cur, rec.BankName, x, body)
		return
	}
	if aspect <= 0 {
		aspect = 1
	}
	h := cfg.LogoWidth / aspect
	cur.Ensure(h+12, body)
	if err := surface.DrawImage(rec.LogoPath, x, cur.Pos()-h, cfg.LogoWidth, h); err != nil {
		logger.Warnf("Failed to render logo for %s: %v", rec.BankName, err)
		drawLogoPlaceholder(surface, cur, rec.BankName, x, body)
		return
	}
	cur.Advance(h + 12)
	logger.Infof("Logo rendered for %s at y=%.1f, height=%.1f", rec.BankName, cur.Pos()+h+12, h)
}

func drawLogoPlaceholder(surface Surface, cur *Cursor, bankName string, x float64, body Font) {
	cur.Ensure(12, body)
	surface.SetFont(body)
	surface.DrawString(x, cur.Pos(), "[Logo: "+bankName+"]")
	cur.Advance(12)
}

// drawInfoColumn renders one titled info column starting at (x, yStart) and
// returns the y position below its last line. Lines wider than the column
// wrap; blank lines just leave a gap.
func drawInfoColumn(surface Surface, x, yStart, width float64, block InfoBlock, fields map[string]string, body TextStyle, logger RenderLog) float64 {
	y := yStart
	lineHeight := body.Font.Size + 3
	if block.Title != "" {
		bold := Font{Name: "Helvetica-Bold", Size: body.Font.Size}
		surface.SetFont(bold)
		surface.DrawString(x, y, ResolveTemplate(block.Title, fields, logger))
		y -= lineHeight
	}
	surface.SetFont(body.Font)
	for _, line := range block.Lines {
		if line == "" {
			y -= lineHeight
			continue
		}
		resolved := ResolveTemplate(line, fields, logger)
		for _, wrapped := range WrapText(surface, resolved, body.Font, width) {
			surface.DrawString(x, y, wrapped)
			y -= lineHeight
		}
	}
	return y
}

func drawFooter(surface Surface, cur *Cursor, cfg *LayoutConfig, fields map[string]string, usable float64, logger RenderLog) {
	if len(cfg.Footer) == 0 {
		return
	}
	margin := cur.Margin()
	font := cfg.FooterFont
	if font.Size == 0 {
		font = Font{Name: "Helvetica", Size: 8}
	}
	lineHeight := font.Size + 1

	if cfg.AccentColor != "" {
		cur.Ensure(4+3*lineHeight+20, font)
		surface.FillRect(margin, cur.Pos(), usable, 4, cfg.AccentColor)
		cur.Advance(8)
	}
	surface.SetFont(font)
	surface.SetTextColor("#000000")
	for _, text := range cfg.Footer {
		resolved := ResolveTemplate(text, fields, logger)
		for _, line := range WrapText(surface, resolved, font, usable) {
			cur.Ensure(lineHeight, font)
			surface.DrawString(margin, cur.Pos(), line)
			cur.Advance(lineHeight)
		}
	}
}
