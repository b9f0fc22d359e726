package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler(t *testing.T) {
	setupTestDB(t)
	setupTestConfig(t)

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	require.NoError(t, HomeHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	// Every supported bank and layout appears as a form option.
	assert.Contains(t, body, `<option value="Chase">`)
	assert.Contains(t, body, `<option value="Wells Fargo">`)
	assert.Contains(t, body, `<option value="citibank">`)
	assert.Contains(t, body, `<option value="dynamic">`)
	assert.Contains(t, body, `action="/generate"`)
}
