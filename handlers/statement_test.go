package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bank_statement_gen_go/db"
	"bank_statement_gen_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	_, c, rec := setupEcho(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return c, rec
}

func TestGenerateStatementHandler(t *testing.T) {
	t.Run("Generates Stores And Serves A PDF", func(t *testing.T) {
		setupTestDB(t)
		setupTestConfig(t)

		c, rec := postForm(t, url.Values{
			"bank":   {"Chase"},
			"layout": {"chase"},
			"seed":   {"1234"},
		})
		require.NoError(t, GenerateStatementHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "chase_")
		assert.Equal(t, "%PDF", rec.Body.String()[:4])

		var stmt models.GeneratedStatement
		require.NoError(t, db.DB.First(&stmt).Error)
		assert.Equal(t, "Chase", stmt.Bank)
		assert.Equal(t, "chase", stmt.Template)
		assert.Equal(t, int64(1234), stmt.Seed)
		assert.Len(t, stmt.AccountLast4, 4)
		assert.Equal(t, int64(rec.Body.Len()), stmt.ByteSize)

		_, err := os.Stat(filepath.Join(Cfg.OutputDir, stmt.FilePath))
		assert.NoError(t, err)
	})

	t.Run("Layout Defaults From The Bank Name", func(t *testing.T) {
		setupTestDB(t)
		setupTestConfig(t)

		c, rec := postForm(t, url.Values{"bank": {"Wells Fargo"}, "seed": {"8"}})
		require.NoError(t, GenerateStatementHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var stmt models.GeneratedStatement
		require.NoError(t, db.DB.First(&stmt).Error)
		assert.Equal(t, "wells fargo", stmt.Template)
	})

	t.Run("Account Holder Override Is Sanitized", func(t *testing.T) {
		setupTestDB(t)
		setupTestConfig(t)

		c, rec := postForm(t, url.Values{
			"bank":           {"Chase"},
			"seed":           {"55"},
			"account_holder": {"<script>alert(1)</script>Casey Reed"},
		})
		require.NoError(t, GenerateStatementHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "<script>")
	})

	t.Run("Missing Bank Rejected", func(t *testing.T) {
		setupTestDB(t)
		setupTestConfig(t)

		c, _ := postForm(t, url.Values{})
		err := GenerateStatementHandler(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Unsupported Bank Rejected", func(t *testing.T) {
		setupTestDB(t)
		setupTestConfig(t)

		c, _ := postForm(t, url.Values{"bank": {"Monzo"}})
		err := GenerateStatementHandler(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Dynamic Layout Persists Its Style Seed", func(t *testing.T) {
		setupTestDB(t)
		setupTestConfig(t)

		c, rec := postForm(t, url.Values{
			"bank":         {"Chase"},
			"layout":       {"dynamic"},
			"seed":         {"4"},
			"column_style": {"sequential"},
		})
		require.NoError(t, GenerateStatementHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var stmt models.GeneratedStatement
		require.NoError(t, db.DB.First(&stmt).Error)
		assert.Equal(t, "dynamic", stmt.Template)
		assert.Equal(t, "sequential", stmt.LayoutStyle)
		assert.NotZero(t, stmt.StyleSeed)
	})
}

func TestListStatementsHandler(t *testing.T) {
	t.Run("Returns History Newest First", func(t *testing.T) {
		testDB := setupTestDB(t)
		setupTestConfig(t)

		require.NoError(t, testDB.Create(&models.GeneratedStatement{ID: "a", Bank: "Chase", Template: "chase"}).Error)
		require.NoError(t, testDB.Create(&models.GeneratedStatement{ID: "b", Bank: "PNC", Template: "pnc"}).Error)

		_, c, rec := setupEcho(http.MethodGet, "/statements", nil)
		require.NoError(t, ListStatementsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var stmts []models.GeneratedStatement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stmts))
		assert.Len(t, stmts, 2)
	})

	t.Run("Filters By Bank", func(t *testing.T) {
		testDB := setupTestDB(t)
		setupTestConfig(t)

		require.NoError(t, testDB.Create(&models.GeneratedStatement{ID: "a", Bank: "Chase"}).Error)
		require.NoError(t, testDB.Create(&models.GeneratedStatement{ID: "b", Bank: "PNC"}).Error)

		_, c, rec := setupEcho(http.MethodGet, "/statements?bank=PNC", nil)
		require.NoError(t, ListStatementsHandler(c))

		var stmts []models.GeneratedStatement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stmts))
		assert.Len(t, stmts, 1)
		assert.Equal(t, "PNC", stmts[0].Bank)
	})
}

func TestDownloadStatementHandler(t *testing.T) {
	t.Run("Unknown ID Is Not Found", func(t *testing.T) {
		setupTestDB(t)
		setupTestConfig(t)

		_, c, _ := setupEcho(http.MethodGet, "/statements/nope/download", nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		err := DownloadStatementHandler(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("Serves The Stored File", func(t *testing.T) {
		testDB := setupTestDB(t)
		setupTestConfig(t)

		require.NoError(t, os.WriteFile(filepath.Join(Cfg.OutputDir, "chase_test.pdf"), []byte("%PDF-1.4 test"), 0o644))
		require.NoError(t, testDB.Create(&models.GeneratedStatement{ID: "a", Bank: "Chase", FilePath: "chase_test.pdf"}).Error)

		_, c, rec := setupEcho(http.MethodGet, "/statements/a/download", nil)
		c.SetParamNames("id")
		c.SetParamValues("a")

		require.NoError(t, DownloadStatementHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "%PDF", rec.Body.String()[:4])
	})
}

func TestExportStatementHandler(t *testing.T) {
	t.Run("Rebuilds Seeded Statements As XLSX", func(t *testing.T) {
		testDB := setupTestDB(t)
		setupTestConfig(t)

		require.NoError(t, testDB.Create(&models.GeneratedStatement{
			ID: "abcd1234-0000", Bank: "Chase", Seed: 1234,
		}).Error)

		_, c, rec := setupEcho(http.MethodGet, "/statements/abcd1234-0000/export", nil)
		c.SetParamNames("id")
		c.SetParamValues("abcd1234-0000")

		require.NoError(t, ExportStatementHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".xlsx")
		// xlsx workbooks are zip archives.
		assert.Equal(t, "PK", rec.Body.String()[:2])
	})

	t.Run("Unseeded Statements Cannot Be Reproduced", func(t *testing.T) {
		testDB := setupTestDB(t)
		setupTestConfig(t)

		require.NoError(t, testDB.Create(&models.GeneratedStatement{ID: "abcd1234-1111", Bank: "Chase"}).Error)

		_, c, _ := setupEcho(http.MethodGet, "/statements/abcd1234-1111/export", nil)
		c.SetParamNames("id")
		c.SetParamValues("abcd1234-1111")

		err := ExportStatementHandler(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	})
}

func TestGetLogsHandler(t *testing.T) {
	setupTestDB(t)
	setupTestConfig(t)

	RenderLogs.Infof("test line %d", 1)

	_, c, rec := setupEcho(http.MethodGet, "/api/logs", nil)
	require.NoError(t, GetLogsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["logs"])
}
