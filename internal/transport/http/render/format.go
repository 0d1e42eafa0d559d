package render

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"reajuste/internal/domain/adjustment"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Amount formats v the Brazilian way: "1.090,00". Rounding is half away from
// zero and only happens here.
func Amount(v float64) string {
	rounded := v
	// Near MaxFloat64 scaling overflows; those values have no cents to round.
	if scaled := v * 100; !math.IsInf(scaled, 0) {
		rounded = math.Round(scaled) / 100
	}
	return printer.Sprint(number.Decimal(rounded, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func Money(v float64) string {
	return "R$ " + Amount(v)
}

func Percent(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2))) + "%"
}

func FixedAdjustmentLabel(kind adjustment.AdjustmentKind) string {
	if kind == adjustment.AdjustmentSurcharge {
		return "Acréscimo"
	}
	return "Desconto"
}

func SexLabel(sex adjustment.Sex) string {
	switch sex {
	case adjustment.SexMale:
		return "Masculino"
	case adjustment.SexFemale:
		return "Feminino"
	}
	return string(sex)
}

func Years(n int) string {
	if n == 1 {
		return "1 ano"
	}
	return strconv.Itoa(n) + " anos"
}
