package services

import (
	"testing"

	"bank_statement_gen_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSections(t *testing.T) {
	t.Run("Known Titles Sort Canonically", func(t *testing.T) {
		in := []models.Section{
			{Title: "Daily Ending Balance"},
			{Title: "Transaction History"},
			{Title: "Welcome Message"},
			{Title: "Account Summary"},
		}
		got := orderSections(in)
		titles := make([]string, len(got))
		for i, s := range got {
			titles[i] = s.Title
		}
		assert.Equal(t, []string{"Welcome Message", "Account Summary", "Transaction History", "Daily Ending Balance"}, titles)
	})

	t.Run("Unknown Titles Keep Their Relative Order After Known Ones", func(t *testing.T) {
		in := []models.Section{
			{Title: "Branch Closures"},
			{Title: "Welcome Message"},
			{Title: "Rate Changes"},
		}
		got := orderSections(in)
		assert.Equal(t, "Welcome Message", got[0].Title)
		assert.Equal(t, "Branch Closures", got[1].Title)
		assert.Equal(t, "Rate Changes", got[2].Title)
	})

	t.Run("Input Slice Is Not Mutated", func(t *testing.T) {
		in := []models.Section{{Title: "Transaction History"}, {Title: "Welcome Message"}}
		orderSections(in)
		assert.Equal(t, "Transaction History", in[0].Title)
	})
}

func TestStylePicker(t *testing.T) {
	t.Run("Same Seed Same Sequence", func(t *testing.T) {
		a := newStylePicker(99)
		b := newStylePicker(99)
		for i := 0; i < 20; i++ {
			assert.Equal(t, a.Heading(), b.Heading())
			assert.Equal(t, a.Body(), b.Body())
			assert.Equal(t, a.WidthJitter(), b.WidthJitter())
		}
	})

	t.Run("Picks Stay Within Pools", func(t *testing.T) {
		p := newStylePicker(5)
		for i := 0; i < 50; i++ {
			h := p.Heading()
			assert.Contains(t, dynamicFonts, h.Font.Name)
			assert.Contains(t, dynamicColors, h.Color)
			assert.GreaterOrEqual(t, h.Font.Size, 12.0)
			assert.LessOrEqual(t, h.Font.Size, 16.0)

			b := p.Body()
			assert.GreaterOrEqual(t, b.Font.Size, 8.0)
			assert.LessOrEqual(t, b.Font.Size, 12.0)

			j := p.WidthJitter()
			assert.GreaterOrEqual(t, j, 0.9)
			assert.LessOrEqual(t, j, 1.1)
		}
	})
}

func TestDynamicLayout(t *testing.T) {
	t.Run("Settles Seed And Column Style Into Options", func(t *testing.T) {
		rec := makeStatement()
		opts := RenderOptions{Layout: LayoutDynamic}
		cfg, style := dynamicLayout(rec, &opts, NewLogCollector())

		require.NotNil(t, cfg)
		require.NotNil(t, style)
		assert.NotZero(t, opts.StyleSeed)
		assert.Contains(t, []string{ColumnSequential, ColumnTwoColumn}, opts.ColumnStyle)
	})

	t.Run("Uses Default Sections When Record Has None", func(t *testing.T) {
		rec := makeStatement()
		rec.Sections = nil
		opts := RenderOptions{Layout: LayoutDynamic, StyleSeed: 3}
		cfg, _ := dynamicLayout(rec, &opts, NewLogCollector())

		sections := cfg.Sections(rec)
		require.Len(t, sections, 3)
		assert.Equal(t, "Important Account Information", sections[0].Title)
		assert.Equal(t, "Account Summary", sections[1].Title)
		assert.Equal(t, "Transaction History", sections[2].Title)
	})

	t.Run("Caller Sections Are Ordered", func(t *testing.T) {
		rec := makeStatement()
		rec.Sections = []models.Section{
			{Title: "Transaction History"},
			{Title: "Welcome Message"},
		}
		opts := RenderOptions{Layout: LayoutDynamic, StyleSeed: 3}
		cfg, _ := dynamicLayout(rec, &opts, NewLogCollector())

		sections := cfg.Sections(rec)
		require.Len(t, sections, 2)
		assert.Equal(t, "Welcome Message", sections[0].Title)
	})
}
