package adjustment

import "strings"

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ParseSex accepts "m", " F " and similar spellings.
func ParseSex(raw string) (Sex, bool) {
	switch Sex(strings.ToUpper(strings.TrimSpace(raw))) {
	case SexMale:
		return SexMale, true
	case SexFemale:
		return SexFemale, true
	}
	return "", false
}

type Bracket int

type AdjustmentKind string

type Kind string

// RawInput holds the query values exactly as they were received.
type RawInput struct {
	Age           string
	Sex           string
	BaseSalary    string
	HireYear      string
	Registration  string
	ReferenceYear string
}

// IsEmpty reports whether none of the employee fields were sent. The reference
// year alone does not count as a calculation request.
func (r RawInput) IsEmpty() bool {
	return r.Age == "" && r.Sex == "" && r.BaseSalary == "" && r.HireYear == "" && r.Registration == ""
}

type Input struct {
	Age           int     `json:"age"`
	Sex           Sex     `json:"sex"`
	BaseSalary    float64 `json:"baseSalary"`
	HireYear      int     `json:"hireYear"`
	Registration  int64   `json:"registration"`
	ReferenceYear int     `json:"referenceYear"`
}

type Rule struct {
	Percentage float64
	Discount   float64
	Surcharge  float64
}

type Result struct {
	Input
	TenureYears           int            `json:"tenureYears"`
	Bracket               Bracket        `json:"bracket"`
	Percentage            float64        `json:"adjustmentPercentage"`
	FixedAdjustmentAmount float64        `json:"fixedAdjustmentAmount"`
	FixedAdjustmentKind   AdjustmentKind `json:"fixedAdjustmentKind"`
	AdjustmentValue       float64        `json:"adjustmentValue"`
	NewSalary             float64        `json:"newSalary"`
}

func (r Result) IsSurcharge() bool {
	return r.FixedAdjustmentKind == AdjustmentSurcharge
}
