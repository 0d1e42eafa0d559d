package shared

import (
	"net/url"

	"reajuste/internal/domain/adjustment"
)

// RawInputFromQuery reads the calculator fields from a request query. Only the
// first value of a repeated parameter is used.
func RawInputFromQuery(q url.Values) adjustment.RawInput {
	return adjustment.RawInput{
		Age:           q.Get(adjustment.FieldAge),
		Sex:           q.Get(adjustment.FieldSex),
		BaseSalary:    q.Get(adjustment.FieldBaseSalary),
		HireYear:      q.Get(adjustment.FieldHireYear),
		Registration:  q.Get(adjustment.FieldRegistration),
		ReferenceYear: q.Get(adjustment.FieldReferenceYear),
	}
}
