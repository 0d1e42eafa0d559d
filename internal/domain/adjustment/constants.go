package adjustment

const (
	DefaultReferenceYear = 2024

	MinAgeExclusive      = 16
	MinHireYearExclusive = 1960

	// Tenure above this many years turns the fixed adjustment into a surcharge.
	SurchargeTenureYears = 10

	FieldAge           = "idade"
	FieldSex           = "sexo"
	FieldBaseSalary    = "salario_base"
	FieldHireYear      = "anoContratacao"
	FieldRegistration  = "matricula"
	FieldReferenceYear = "anoReferencia"
)

const (
	KindInvalidAge          Kind = "invalid-age"
	KindInvalidSex          Kind = "invalid-sex"
	KindInvalidSalary       Kind = "invalid-salary"
	KindInvalidHireYear     Kind = "invalid-hire-year"
	KindInvalidRegistration Kind = "invalid-registration"
	KindInvalidAgeBracket   Kind = "invalid-age-bracket"
)

const (
	AdjustmentSurcharge AdjustmentKind = "surcharge"
	AdjustmentDiscount  AdjustmentKind = "discount"
)

const (
	BracketNone Bracket = iota
	BracketYoung
	BracketMiddle
	BracketSenior
)

var rules = map[Bracket]map[Sex]Rule{
	BracketYoung: {
		SexMale:   {Percentage: 10, Discount: 10, Surcharge: 17},
		SexFemale: {Percentage: 8, Discount: 11, Surcharge: 16},
	},
	BracketMiddle: {
		SexMale:   {Percentage: 8, Discount: 5, Surcharge: 15},
		SexFemale: {Percentage: 10, Discount: 7, Surcharge: 14},
	},
	BracketSenior: {
		SexMale:   {Percentage: 15, Discount: 15, Surcharge: 13},
		SexFemale: {Percentage: 17, Discount: 17, Surcharge: 12},
	},
}
