package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"reajuste/internal/domain/adjustment"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"money":      Money,
	"percent":    Percent,
	"fixedLabel": FixedAdjustmentLabel,
	"years":      Years,
}

// Pages renders the HTML side of the calculator.
type Pages struct {
	tmpl *template.Template
}

func NewPages() (*Pages, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Pages{tmpl: tmpl}, nil
}

func (p *Pages) Instructions(w http.ResponseWriter) error {
	return p.write(w, http.StatusOK, "instructions.html", nil)
}

func (p *Pages) FieldErrors(w http.ResponseWriter, errs adjustment.ValidationErrors) error {
	return p.write(w, http.StatusBadRequest, "errors.html", errs.Messages())
}

func (p *Pages) BracketError(w http.ResponseWriter, errs adjustment.ValidationErrors) error {
	message := ""
	if len(errs) > 0 {
		message = errs[0].Message
	}
	return p.write(w, http.StatusBadRequest, "bracket.html", message)
}

type resultView struct {
	adjustment.Result
	PDFQuery template.URL
}

// Result renders the report. pdfQuery is the encoded query string used to
// link the PDF version of the same calculation.
func (p *Pages) Result(w http.ResponseWriter, res adjustment.Result, pdfQuery string) error {
	return p.write(w, http.StatusOK, "result.html", resultView{Result: res, PDFQuery: template.URL(pdfQuery)})
}

// write renders into a buffer so a template failure never leaves a half
// written page behind.
func (p *Pages) write(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write page failed", "template", name, "err", err)
	}
	return nil
}
