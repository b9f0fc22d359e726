package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-pdf/fpdf"
)

// Page geometry: one canonical page size (US Letter, points).
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// Font names follow the canonical PDF core font names; the statement
// layouts only ever use these.
type Font struct {
	Name string
	Size float64
}

// fontFamilies maps a core font name to the fpdf family/style pair.
var fontFamilies = map[string][2]string{
	"Helvetica":      {"Helvetica", ""},
	"Helvetica-Bold": {"Helvetica", "B"},
	"Times-Roman":    {"Times", ""},
	"Times-Bold":     {"Times", "B"},
	"Courier":        {"Courier", ""},
}

// Surface is the drawing target of the layout engine. Coordinates are in
// points with the origin at the bottom-left of the page, so y decreases as
// content flows down; implementations translate to whatever the backing
// canvas expects. The zero x of a page is the physical page edge, not the
// margin; callers position against their own margins.
type Surface interface {
	SetFont(f Font)
	// TextWidth measures text in the given font without changing the
	// current font.
	TextWidth(text string, f Font) float64
	DrawString(x, y float64, text string)
	DrawRightString(x, y float64, text string)
	DrawCentredString(x, y float64, text string)
	Line(x1, y1, x2, y2 float64)
	// FillRect fills the rectangle with lower-left corner (x, y).
	FillRect(x, y, w, h float64, hexColor string)
	// BoxRect strokes and fills the rectangle with lower-left corner (x, y).
	BoxRect(x, y, w, h float64, fillHex string)
	SetTextColor(hexColor string)
	SetDrawColor(hexColor string)
	SetLineWidth(w float64)
	// DrawImage places an image with lower-left corner (x, y).
	DrawImage(path string, x, y, w, h float64) error
	// ShowPage closes the current page and starts a new one, keeping the
	// current font.
	ShowPage()
	PageCount() int
}

// Canvas implements Surface over an fpdf document.
type Canvas struct {
	pdf  *fpdf.Fpdf
	font Font
}

// NewCanvas builds a single-page Letter canvas with automatic page breaks
// disabled; the layout engine owns all pagination decisions.
func NewCanvas() *Canvas {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.AddPage()
	c := &Canvas{pdf: pdf}
	c.SetFont(Font{Name: "Helvetica", Size: 12})
	return c
}

func (c *Canvas) applyFont(f Font) {
	fam, ok := fontFamilies[f.Name]
	if !ok {
		fam = fontFamilies["Helvetica"]
	}
	c.pdf.SetFont(fam[0], fam[1], f.Size)
}

func (c *Canvas) SetFont(f Font) {
	c.font = f
	c.applyFont(f)
}

func (c *Canvas) TextWidth(text string, f Font) float64 {
	c.applyFont(f)
	w := c.pdf.GetStringWidth(text)
	c.applyFont(c.font)
	return w
}

// y translation: fpdf places text baselines top-down.
func (c *Canvas) flip(y float64) float64 {
	return PageHeight - y
}

func (c *Canvas) DrawString(x, y float64, text string) {
	c.pdf.Text(x, c.flip(y), text)
}

func (c *Canvas) DrawRightString(x, y float64, text string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(text), c.flip(y), text)
}

func (c *Canvas) DrawCentredString(x, y float64, text string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(text)/2, c.flip(y), text)
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, c.flip(y1), x2, c.flip(y2))
}

func (c *Canvas) FillRect(x, y, w, h float64, hexColor string) {
	r, g, b := hexToRGB(hexColor)
	c.pdf.SetFillColor(r, g, b)
	c.pdf.Rect(x, c.flip(y)-h, w, h, "F")
}

func (c *Canvas) BoxRect(x, y, w, h float64, fillHex string) {
	r, g, b := hexToRGB(fillHex)
	c.pdf.SetFillColor(r, g, b)
	c.pdf.Rect(x, c.flip(y)-h, w, h, "FD")
}

func (c *Canvas) SetTextColor(hexColor string) {
	r, g, b := hexToRGB(hexColor)
	c.pdf.SetTextColor(r, g, b)
}

func (c *Canvas) SetDrawColor(hexColor string) {
	r, g, b := hexToRGB(hexColor)
	c.pdf.SetDrawColor(r, g, b)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *Canvas) DrawImage(path string, x, y, w, h float64) error {
	// Decode the header first so an unreadable file surfaces here as a
	// recoverable error instead of poisoning the fpdf error state.
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()
	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("decode logo %s: %w", path, err)
	}
	c.pdf.ImageOptions(path, x, c.flip(y)-h, w, h, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	return nil
}

// ImageAspect returns width/height of the image file, or an error if it
// cannot be opened or decoded.
func ImageAspect(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, err
	}
	if cfg.Height <= 0 {
		return 1, nil
	}
	return float64(cfg.Width) / float64(cfg.Height), nil
}

func (c *Canvas) ShowPage() {
	c.pdf.AddPage()
	c.applyFont(c.font)
}

func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

// Bytes finalizes the document and returns the PDF byte stream.
func (c *Canvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func hexToRGB(hex string) (int, int, int) {
	if len(hex) == 7 && hex[0] == '#' {
		var r, g, b int
		if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			return r, g, b
		}
	}
	return 0, 0, 0
}
