package adjustment

import (
	"math"
	"strconv"
	"strings"
)

// ParseInput converts raw query text into typed input. Every field is checked
// and all failures are returned together.
func ParseInput(raw RawInput, defaultReferenceYear int) (Input, ValidationErrors) {
	var errs ValidationErrors
	collect := func(err *ValidationError) {
		if err != nil {
			errs = append(errs, *err)
		}
	}

	refYear := parseReferenceYear(raw.ReferenceYear, defaultReferenceYear)

	age, err := parseAge(raw.Age)
	collect(err)
	sex, err := parseSex(raw.Sex)
	collect(err)
	salary, err := parseBaseSalary(raw.BaseSalary)
	collect(err)
	hireYear, err := parseHireYear(raw.HireYear, refYear)
	collect(err)
	registration, err := parseRegistration(raw.Registration)
	collect(err)

	if len(errs) > 0 {
		return Input{}, errs
	}
	return Input{
		Age:           age,
		Sex:           sex,
		BaseSalary:    salary,
		HireYear:      hireYear,
		Registration:  registration,
		ReferenceYear: refYear,
	}, nil
}

func parseAge(raw string) (int, *ValidationError) {
	value, ok := parseWholeNumber(raw)
	if !ok || value <= MinAgeExclusive {
		return 0, &ValidationError{Kind: KindInvalidAge, Field: FieldAge, Message: "Idade inválida: deve ser maior que 16."}
	}
	// Huge ages are still valid fields; clamping keeps them out of every bracket.
	return int(min(value, math.MaxInt32)), nil
}

func parseSex(raw string) (Sex, *ValidationError) {
	sex, ok := ParseSex(raw)
	if !ok {
		return "", &ValidationError{Kind: KindInvalidSex, Field: FieldSex, Message: "Sexo inválido: use 'M' ou 'F'."}
	}
	return sex, nil
}

func parseBaseSalary(raw string) (float64, *ValidationError) {
	value, ok := parseNumber(raw)
	if !ok || value <= 0 {
		return 0, &ValidationError{Kind: KindInvalidSalary, Field: FieldBaseSalary, Message: "Salário base inválido."}
	}
	return value, nil
}

func parseHireYear(raw string, referenceYear int) (int, *ValidationError) {
	value, ok := parseWholeNumber(raw)
	if !ok || value <= MinHireYearExclusive || value > float64(referenceYear) {
		return 0, &ValidationError{Kind: KindInvalidHireYear, Field: FieldHireYear, Message: "Ano de contratação inválido."}
	}
	return int(value), nil
}

func parseRegistration(raw string) (int64, *ValidationError) {
	value, ok := parseWholeNumber(raw)
	if !ok || value <= 0 {
		return 0, &ValidationError{Kind: KindInvalidRegistration, Field: FieldRegistration, Message: "Matrícula inválida."}
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if value >= math.MaxInt64 {
		return math.MaxInt64, nil
	}
	return int64(value), nil
}

// parseReferenceYear never fails: absent or malformed text means the default.
func parseReferenceYear(raw string, fallback int) int {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, ok := parseWholeNumber(raw)
	if !ok || value > math.MaxInt32 || value < math.MinInt32 {
		return fallback
	}
	return int(value)
}

// parseNumber accepts decimal text ("12", "-1.5", ".5", "1e3") and unsigned
// 0x/0o/0b integer literals, with optional surrounding whitespace. Blank text,
// NaN, infinities, digit separators and hex floats are rejected.
func parseNumber(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	if base, digits, ok := radixLiteral(trimmed); ok {
		value, err := strconv.ParseUint(digits, base, 64)
		if err != nil || digits == "" || strings.Contains(digits, "_") {
			return 0, false
		}
		return float64(value), true
	}
	if strings.ContainsAny(trimmed, "xXpP_") {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func radixLiteral(s string) (int, string, bool) {
	if len(s) < 2 || s[0] != '0' {
		return 0, "", false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:], true
	case 'o', 'O':
		return 8, s[2:], true
	case 'b', 'B':
		return 2, s[2:], true
	}
	return 0, "", false
}

// parseWholeNumber accepts "30" and "30.0" but not "30.5".
func parseWholeNumber(raw string) (float64, bool) {
	value, ok := parseNumber(raw)
	if !ok || value != math.Trunc(value) {
		return 0, false
	}
	return value, true
}
