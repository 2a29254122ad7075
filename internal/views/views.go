package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates
var templatesFS embed.FS

var funcs = template.FuncMap{
	"dollars":  Dollars,
	"datetime": Datetime,
	"add":      func(a, b int) int { return a + b },
}

// Set is the page collection of one application. Pages are addressed by
// file name, e.g. "tracking.html".
type Set struct {
	t *template.Template
}

func parse(app string) *Set {
	t := template.Must(template.New(app).Funcs(funcs).ParseFS(templatesFS,
		"templates/*.html",
		"templates/"+app+"/*.html",
	))
	return &Set{t: t}
}

var (
	Orders = parse("orders")
	Blog   = parse("blog")
)

// Render executes page into a buffer first, so a template failure never
// leaves a half-written response behind.
func (s *Set) Render(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := s.t.ExecuteTemplate(&buf, page, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Error is the data of the shared error.html page.
type Error struct {
	Title   string
	Message string
}

func Dollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func Datetime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
