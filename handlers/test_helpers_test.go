package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"bank_statement_gen_go/config"
	"bank_statement_gen_go/db"
	"bank_statement_gen_go/models"
	"bank_statement_gen_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates each test's database
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(&models.GeneratedStatement{})
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupTestConfig(t *testing.T) {
	Cfg = &config.Config{
		Environment: "test",
		OutputDir:   t.TempDir(),
		LogoDir:     "",
	}
	services.Archive = services.NewLocalArchive(Cfg.OutputDir)
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}
