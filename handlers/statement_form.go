package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"bank_statement_gen_go/services"

	"github.com/labstack/echo/v4"
)

var formTemplate = template.Must(template.New("form").Parse(formHTML))

// HomeHandler serves the generation form.
func HomeHandler(c echo.Context) error {
	data := map[string]interface{}{
		"Banks":   services.BankNames(),
		"Layouts": services.LayoutNames(),
	}
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, data); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error rendering page")
	}
	return c.HTML(http.StatusOK, buf.String())
}

const formHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Synthetic Bank Statement Generator</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; font-weight: bold; }
input, select { width: 100%; padding: 0.4rem; margin-top: 0.25rem; }
button { margin-top: 1.5rem; padding: 0.6rem 1.5rem; }
nav a { margin-right: 1rem; }
</style>
</head>
<body>
<h1>Synthetic Bank Statement Generator</h1>
<nav><a href="/">Generate</a><a href="/statements">History</a><a href="/api/logs">Logs</a></nav>
<form method="post" action="/generate">
<label for="bank">Bank</label>
<select id="bank" name="bank">
{{range .Banks}}<option value="{{.}}">{{.}}</option>{{end}}
</select>
<label for="layout">Layout</label>
<select id="layout" name="layout">
<option value="">Bank default</option>
{{range .Layouts}}<option value="{{.}}">{{.}}</option>{{end}}
</select>
<label for="column_style">Column style (dynamic layout only)</label>
<select id="column_style" name="column_style">
<option value="">Random</option>
<option value="sequential">Sequential</option>
<option value="two_column">Two column</option>
</select>
<label for="account_holder">Account holder (optional override)</label>
<input id="account_holder" name="account_holder" placeholder="Leave blank for a generated name">
<label for="seed">Data seed (optional, reproducible data)</label>
<input id="seed" name="seed" inputmode="numeric" placeholder="0 = random">
<label for="style_seed">Style seed (optional, reproducible styling)</label>
<input id="style_seed" name="style_seed" inputmode="numeric" placeholder="0 = random">
<button type="submit">Generate PDF</button>
</form>
</body>
</html>`
