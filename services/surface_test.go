package services

import "strings"

// recordSurface is a Surface double that measures text with a fixed
// per-character width and records every drawing operation, so tests can
// assert on pagination behavior without decoding PDF output.
type recordSurface struct {
	font  Font
	pages int
	// ops is the flat operation log, e.g. "page", "text:Hello@540.0".
	ops []string
	// texts collects drawn strings in order, across all pages.
	texts []string
}

func newRecordSurface() *recordSurface {
	return &recordSurface{font: Font{Name: "Helvetica", Size: 12}, pages: 1}
}

func (r *recordSurface) SetFont(f Font) { r.font = f }

func (r *recordSurface) TextWidth(text string, f Font) float64 {
	return float64(len(text)) * f.Size * 0.6
}

func (r *recordSurface) record(text string) {
	r.texts = append(r.texts, text)
	r.ops = append(r.ops, "text:"+text)
}

func (r *recordSurface) DrawString(x, y float64, text string)        { r.record(text) }
func (r *recordSurface) DrawRightString(x, y float64, text string)   { r.record(text) }
func (r *recordSurface) DrawCentredString(x, y float64, text string) { r.record(text) }

func (r *recordSurface) Line(x1, y1, x2, y2 float64)                 { r.ops = append(r.ops, "line") }
func (r *recordSurface) FillRect(x, y, w, h float64, hex string)     { r.ops = append(r.ops, "rect") }
func (r *recordSurface) BoxRect(x, y, w, h float64, fillHex string)  { r.ops = append(r.ops, "box") }
func (r *recordSurface) SetTextColor(hex string)                     {}
func (r *recordSurface) SetDrawColor(hex string)                     {}
func (r *recordSurface) SetLineWidth(w float64)                      {}

func (r *recordSurface) DrawImage(path string, x, y, w, h float64) error {
	r.ops = append(r.ops, "image:"+path)
	return nil
}

func (r *recordSurface) ShowPage() {
	r.pages++
	r.ops = append(r.ops, "page")
}

func (r *recordSurface) PageCount() int { return r.pages }

func (r *recordSurface) countTexts(substr string) int {
	n := 0
	for _, t := range r.texts {
		if strings.Contains(t, substr) {
			n++
		}
	}
	return n
}
