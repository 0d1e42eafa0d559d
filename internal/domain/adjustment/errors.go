package adjustment

import (
	"errors"
	"strings"
)

type ValidationError struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// ValidationErrors is every field failure found in one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Has(kind Kind) bool {
	for _, e := range v {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (v ValidationErrors) Messages() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		out = append(out, e.Message)
	}
	return out
}

var errAgeBracket = ValidationError{
	Kind:    KindInvalidAgeBracket,
	Field:   FieldAge,
	Message: "Faixa etária fora do intervalo válido (18 a 99 anos)",
}

// IsBracketError reports whether err is the age bracket failure raised after
// field validation already passed.
func IsBracketError(err error) bool {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	return len(verrs) == 1 && verrs[0].Kind == KindInvalidAgeBracket
}
