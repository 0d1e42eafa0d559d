package adjustment

// BracketFor maps an age to its bracket. Ages outside 18–99 yield BracketNone.
func BracketFor(age int) Bracket {
	switch {
	case age >= 18 && age <= 39:
		return BracketYoung
	case age >= 40 && age <= 69:
		return BracketMiddle
	case age >= 70 && age <= 99:
		return BracketSenior
	default:
		return BracketNone
	}
}

func RuleFor(bracket Bracket, sex Sex) (Rule, bool) {
	bySex, ok := rules[bracket]
	if !ok {
		return Rule{}, false
	}
	rule, ok := bySex[sex]
	return rule, ok
}

// Compute expects input that already went through ParseInput. An age with no
// bracket is reported alone as an invalid-age-bracket failure.
func Compute(in Input) (Result, error) {
	bracket := BracketFor(in.Age)
	rule, ok := RuleFor(bracket, in.Sex)
	if !ok {
		return Result{}, ValidationErrors{errAgeBracket}
	}

	tenure := in.ReferenceYear - in.HireYear
	kind := AdjustmentDiscount
	fixed := rule.Discount
	if tenure > SurchargeTenureYears {
		kind = AdjustmentSurcharge
		fixed = rule.Surcharge
	}

	adjustmentValue := in.BaseSalary * (rule.Percentage / 100)
	return Result{
		Input:                 in,
		TenureYears:           tenure,
		Bracket:               bracket,
		Percentage:            rule.Percentage,
		FixedAdjustmentAmount: fixed,
		FixedAdjustmentKind:   kind,
		AdjustmentValue:       adjustmentValue,
		NewSalary:             in.BaseSalary + adjustmentValue - fixed,
	}, nil
}

type Calculator struct {
	DefaultReferenceYear int
}

func NewCalculator(defaultReferenceYear int) Calculator {
	if defaultReferenceYear == 0 {
		defaultReferenceYear = DefaultReferenceYear
	}
	return Calculator{DefaultReferenceYear: defaultReferenceYear}
}

// Calculate validates raw and computes the adjustment. Field failures come
// back as ValidationErrors; the bracket check only runs once they are clear.
func (c Calculator) Calculate(raw RawInput) (Result, error) {
	in, errs := ParseInput(raw, c.DefaultReferenceYear)
	if len(errs) > 0 {
		return Result{}, errs
	}
	return Compute(in)
}
