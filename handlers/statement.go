package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"bank_statement_gen_go/config"
	"bank_statement_gen_go/db"
	"bank_statement_gen_go/models"
	"bank_statement_gen_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// Cfg is the loaded application configuration, set by main before the
// server starts.
var Cfg *config.Config

// RenderLogs collects the info and warning lines emitted by renders so the
// UI log panel can show them.
var RenderLogs = services.NewLogCollector()

// formPolicy strips all markup from free-text form inputs before they reach
// the generator or the database.
var formPolicy = bluemonday.StrictPolicy()

// GenerateStatementHandler generates a statement PDF from the form inputs,
// stores it under the output directory, records it in the history table,
// and serves it back as a download.
func GenerateStatementHandler(c echo.Context) error {
	bank := formPolicy.Sanitize(strings.TrimSpace(c.FormValue("bank")))
	if bank == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bank is required")
	}
	layout := formPolicy.Sanitize(strings.TrimSpace(c.FormValue("layout")))
	if layout == "" {
		layout = services.DefaultLayout(bank)
	}

	seed := parseSeed(c.FormValue("seed"))
	rec, err := services.GenerateStatement(bank, Cfg.LogoDir, seed)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if holder := formPolicy.Sanitize(strings.TrimSpace(c.FormValue("account_holder"))); holder != "" {
		rec.AccountHolder = holder
	}

	opts := services.RenderOptions{
		Layout:      layout,
		ColumnStyle: formPolicy.Sanitize(c.FormValue("column_style")),
		StyleSeed:   int64(parseSeed(c.FormValue("style_seed"))),
	}
	pdfBytes, err := services.RenderStatement(rec, &opts, RenderLogs)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Error generating PDF: "+err.Error())
	}

	id := uuid.New().String()
	fileName := fmt.Sprintf("%s_%s.pdf", sanitizeFileStem(bank), id[:8])
	if err := services.Archive.Save(c.Request().Context(), fileName, "application/pdf", pdfBytes); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error saving PDF")
	}

	stmt := models.GeneratedStatement{
		ID:           id,
		Bank:         rec.BankName,
		Template:     opts.Layout,
		LayoutStyle:  opts.ColumnStyle,
		AccountLast4: last4(rec.AccountNumber),
		FilePath:     fileName,
		ByteSize:     int64(len(pdfBytes)),
		Seed:         int64(seed),
		StyleSeed:    opts.StyleSeed,
	}
	if err := db.DB.Create(&stmt).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error saving statement record")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

// ListStatementsHandler returns the generation history, newest first.
func ListStatementsHandler(c echo.Context) error {
	var stmts []models.GeneratedStatement
	query := db.DB.Order("created_at DESC")
	if bank := c.QueryParam("bank"); bank != "" {
		query = query.Where("bank = ?", bank)
	}
	if err := query.Limit(200).Find(&stmts).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching statements")
	}
	return c.JSON(http.StatusOK, stmts)
}

// DownloadStatementHandler serves a previously generated PDF from the
// archive.
func DownloadStatementHandler(c echo.Context) error {
	var stmt models.GeneratedStatement
	if err := db.DB.First(&stmt, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Statement not found")
	}
	file, contentType, err := services.Archive.Open(c.Request().Context(), stmt.FilePath)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	defer file.Close()
	name := filepath.Base(stmt.FilePath)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Stream(http.StatusOK, contentType, file)
}

// ExportStatementHandler rebuilds the statement data from its recorded seed
// and serves it as an xlsx workbook. Only seeded statements reproduce; a
// statement generated with a random seed cannot be exported.
func ExportStatementHandler(c echo.Context) error {
	var stmt models.GeneratedStatement
	if err := db.DB.First(&stmt, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Statement not found")
	}
	if stmt.Seed == 0 {
		return echo.NewHTTPError(http.StatusConflict, "Statement was generated without a seed and cannot be reproduced")
	}
	rec, err := services.GenerateStatement(stmt.Bank, Cfg.LogoDir, uint64(stmt.Seed))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	out, err := services.ExportStatementXLSX(rec)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error exporting workbook: "+err.Error())
	}
	name := fmt.Sprintf("%s_%s.xlsx", sanitizeFileStem(stmt.Bank), stmt.ID[:8])
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
}

// GetLogsHandler returns the collected render log lines.
func GetLogsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"logs": RenderLogs.Entries()})
}

func parseSeed(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 63)
	if err != nil {
		return 0
	}
	return v
}

func sanitizeFileStem(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "statement"
	}
	return b.String()
}

func last4(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return accountNumber
	}
	return accountNumber[len(accountNumber)-4:]
}
