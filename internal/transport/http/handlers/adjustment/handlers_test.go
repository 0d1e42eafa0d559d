package adjustmenthandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reajuste/internal/domain/adjustment"
	"reajuste/internal/platform/metrics"
	"reajuste/internal/transport/http/middleware"
	"reajuste/internal/transport/http/render"
)

func newRouter(t *testing.T) (http.Handler, *metrics.Collector) {
	t.Helper()
	pages, err := render.NewPages()
	require.NoError(t, err)
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	NewHandler(adjustment.NewCalculator(adjustment.DefaultReferenceYear), pages, collector).RegisterRoutes(router)
	return router, collector
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"requestId"`
	Error     *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			Fields []struct {
				Field string `json:"field"`
				Kind  string `json:"kind"`
			} `json:"fields"`
		} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestPageShowsInstructionsWithoutInputs(t *testing.T) {
	router, _ := newRouter(t)

	for _, target := range []string{"/", "/?anoReferencia=2020"} {
		rec := get(t, router, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "Cálculo de Reajuste Salarial", target)
	}
}

func TestPageRendersResult(t *testing.T) {
	router, collector := newRouter(t)

	rec := get(t, router, "/?idade=30&sexo=M&salario_base=1000&anoContratacao=2024&matricula=12&anoReferencia=2024")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Resultado do Reajuste Salarial")
	assert.Contains(t, body, "Desconto aplicado: <b>R$ 10,00</b>")
	assert.Contains(t, body, "<strong>R$ 1.090,00</strong>")
	assert.Equal(t, uint64(1), collector.Snapshot()["calculationsTotal"])
}

func TestPageListsEveryFieldError(t *testing.T) {
	router, collector := newRouter(t)

	rec := get(t, router, "/?idade=10&sexo=Z&salario_base=1000&anoContratacao=2020&matricula=1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Erro nos dados informados")
	assert.Contains(t, body, "Idade inválida")
	assert.Contains(t, body, "Sexo inválido")
	assert.Equal(t, 2, strings.Count(body, "<li>"))
	assert.Equal(t, uint64(1), collector.Snapshot()["validationRejectedTotal"])
}

func TestPageReportsBracketSeparately(t *testing.T) {
	router, collector := newRouter(t)

	rec := get(t, router, "/?idade=17&sexo=F&salario_base=1000&anoContratacao=2020&matricula=1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Faixa etária fora do intervalo válido (18 a 99 anos)")
	assert.NotContains(t, body, "<li>")
	assert.Equal(t, uint64(1), collector.Snapshot()["bracketRejectedTotal"])
}

func TestAPIReturnsResult(t *testing.T) {
	router, _ := newRouter(t)

	rec := get(t, router, "/api/v1/adjustments?idade=45&sexo=f&salario_base=2000&anoContratacao=2010&matricula=3")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)

	var res adjustment.Result
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, adjustment.SexFemale, res.Sex)
	assert.Equal(t, 2024, res.ReferenceYear)
	assert.Equal(t, 14, res.TenureYears)
	assert.Equal(t, adjustment.BracketMiddle, res.Bracket)
	assert.Equal(t, adjustment.AdjustmentSurcharge, res.FixedAdjustmentKind)
	assert.InDelta(t, 2186.0, res.NewSalary, 1e-9)
}

func TestAPIValidationFailure(t *testing.T) {
	router, _ := newRouter(t)

	rec := get(t, router, "/api/v1/adjustments?idade=30&sexo=M&salario_base=-5&anoContratacao=2030&matricula=0")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)

	kinds := []string{}
	for _, f := range env.Error.Details.Fields {
		kinds = append(kinds, f.Kind)
	}
	assert.ElementsMatch(t, []string{"invalid-salary", "invalid-hire-year", "invalid-registration"}, kinds)
}

func TestAPIBracketFailure(t *testing.T) {
	router, _ := newRouter(t)

	rec := get(t, router, "/api/v1/adjustments?idade=100&sexo=M&salario_base=1000&anoContratacao=2020&matricula=1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "age_bracket_out_of_range", env.Error.Code)
	require.Len(t, env.Error.Details.Fields, 1)
	assert.Equal(t, "invalid-age-bracket", env.Error.Details.Fields[0].Kind)
}

func TestPDFReport(t *testing.T) {
	router, _ := newRouter(t)

	rec := get(t, router, "/relatorio.pdf?idade=72&sexo=M&salario_base=3500.50&anoContratacao=2000&matricula=9")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	rec = get(t, router, "/relatorio.pdf?idade=5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decode(t, rec).Error.Code)
}
