package services

import (
	"fmt"
	"strings"

	"bank_statement_gen_go/models"
)

// Layout names accepted by RenderOptions.Layout.
const (
	LayoutCiti       = "citibank"
	LayoutChase      = "chase"
	LayoutWellsFargo = "wells fargo"
	LayoutPNC        = "pnc"
	LayoutDynamic    = "dynamic"
)

// Column styles for the dynamic layout.
const (
	ColumnSequential = "sequential"
	ColumnTwoColumn  = "two_column"
)

// RenderOptions selects the layout and its variability knobs for one render.
type RenderOptions struct {
	Layout string
	// ColumnStyle only applies to the dynamic layout.
	ColumnStyle string
	// StyleSeed seeds the dynamic style picks so a render is reproducible.
	// Zero means derive a seed from the clock.
	StyleSeed int64
}

// InfoBlock is one column of the titled key/value header area below the
// masthead (bank details on the left, customer details on the right).
type InfoBlock struct {
	Title string
	Lines []string
}

// LayoutConfig is the data that makes one bank's statement look like that
// bank. Every layout, fixed or dynamic, runs through the same render
// pipeline; only the config differs.
type LayoutConfig struct {
	Name   string
	Margin float64

	// RequiredFields are the template field names that must be non-empty
	// before any page is produced.
	RequiredFields []string

	Heading TextStyle
	Body    TextStyle

	// AccentColor draws the brand bar under the masthead when set.
	AccentColor string
	// LogoWidth is the target logo width in points; height follows the
	// image aspect ratio.
	LogoWidth float64
	// LogoLeft puts the logo at the left margin instead of the right.
	LogoLeft bool

	CenterHeadings bool

	// Masthead is an optional centered title drawn below the header info
	// columns, e.g. "{account_type} Statement".
	Masthead string

	// Info builds the two header info columns; either may be empty.
	Info func(rec *models.StatementRecord) (InfoBlock, InfoBlock)
	// Sections builds the ordered section list for the record.
	Sections func(rec *models.StatementRecord) []models.Section

	// Notice is the centered one-line disclaimer printed after the last
	// section, empty for none.
	Notice string
	// Footer paragraphs are wrapped in FooterFont at the bottom of the
	// content flow.
	Footer     []string
	FooterFont Font
}

var layoutRegistry = map[string]*LayoutConfig{
	LayoutCiti:       citiLayout(),
	LayoutChase:      chaseLayout(),
	LayoutWellsFargo: wellsFargoLayout(),
	LayoutPNC:        pncLayout(),
}

// LayoutFor resolves a layout name (case-insensitive) to its config. The
// dynamic layout is built per render, not registered here.
func LayoutFor(name string) (*LayoutConfig, error) {
	cfg, ok := layoutRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", name)
	}
	return cfg, nil
}

// LayoutNames lists the registered fixed layouts plus the dynamic one.
func LayoutNames() []string {
	return []string{LayoutCiti, LayoutChase, LayoutWellsFargo, LayoutPNC, LayoutDynamic}
}

// DefaultLayout maps a bank name to its fixed layout, or to the dynamic
// layout for banks without one.
func DefaultLayout(bankName string) string {
	name := strings.ToLower(strings.TrimSpace(bankName))
	if _, ok := layoutRegistry[name]; ok {
		return name
	}
	return LayoutDynamic
}

// ValidateRequired checks the record's field map against the layout's
// required field list and names the first missing one.
func (cfg *LayoutConfig) ValidateRequired(rec *models.StatementRecord) error {
	fields := rec.Fields()
	for _, key := range cfg.RequiredFields {
		if fields[key] == "" {
			return fmt.Errorf("missing required field: %s", key)
		}
	}
	return nil
}
