package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"reajuste/internal/domain/adjustment"
)

// PDF writes a one-page A4 version of the result report.
func PDF(w io.Writer, res adjustment.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Resultado - Reajuste Salarial", true)
	pdf.SetCreator("reajuste", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Resultado do Reajuste Salarial"))
	pdf.Ln(14)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 12)
	}
	row := func(label, value string) {
		pdf.CellFormat(60, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
	}

	section("Dados do Funcionário")
	row("Matrícula:", strconv.FormatInt(res.Registration, 10))
	row("Idade:", Years(res.Age))
	row("Sexo:", fmt.Sprintf("%s (%s)", res.Sex, SexLabel(res.Sex)))
	row("Salário base:", Money(res.BaseSalary))
	row("Ano de contratação:", strconv.Itoa(res.HireYear))
	row("Ano de referência:", strconv.Itoa(res.ReferenceYear))
	row("Tempo de casa:", Years(res.TenureYears))
	row("Faixa etária:", strconv.Itoa(int(res.Bracket)))
	pdf.Ln(4)

	section("Detalhes do cálculo")
	row("Reajuste aplicado:", Percent(res.Percentage))
	row(FixedAdjustmentLabel(res.FixedAdjustmentKind)+" aplicado:", Money(res.FixedAdjustmentAmount))
	row("Valor do reajuste:", Money(res.AdjustmentValue))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	row("Novo salário:", Money(res.NewSalary))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
