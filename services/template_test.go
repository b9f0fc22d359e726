package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTemplate(t *testing.T) {
	fields := map[string]string{
		"account_holder": "Jordan Avery",
		"bank_name":      "Chase",
		"website":        "chase.com",
	}

	t.Run("Replaces All Placeholders", func(t *testing.T) {
		logger := NewLogCollector()
		got := ResolveTemplate("Dear {account_holder}, welcome to {bank_name}.", fields, logger)
		assert.Equal(t, "Dear Jordan Avery, welcome to Chase.", got)
		assert.Empty(t, logger.Warnings())
	})

	t.Run("No Placeholders Passes Through", func(t *testing.T) {
		logger := NewLogCollector()
		got := ResolveTemplate("Member FDIC.", fields, logger)
		assert.Equal(t, "Member FDIC.", got)
	})

	t.Run("Missing Field Returns Template Verbatim", func(t *testing.T) {
		logger := NewLogCollector()
		tmpl := "Visit {website} or call {contact}."
		got := ResolveTemplate(tmpl, fields, logger)
		assert.Equal(t, tmpl, got)
		assert.Len(t, logger.Warnings(), 1)
		assert.Contains(t, logger.Warnings()[0], "contact")
	})

	t.Run("Empty Field Counts As Missing", func(t *testing.T) {
		logger := NewLogCollector()
		withEmpty := map[string]string{"website": ""}
		got := ResolveTemplate("Visit {website}.", withEmpty, logger)
		assert.Equal(t, "Visit {website}.", got)
		assert.Len(t, logger.Warnings(), 1)
	})

	t.Run("Unknown Braces Left Alone", func(t *testing.T) {
		logger := NewLogCollector()
		// Uppercase inside braces does not match the placeholder pattern.
		got := ResolveTemplate("{NOT_A_FIELD} stays", fields, logger)
		assert.Equal(t, "{NOT_A_FIELD} stays", got)
		assert.Empty(t, logger.Warnings())
	})
}
