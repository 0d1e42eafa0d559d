package shared

import (
	"net/http"
	"sort"

	"reajuste/internal/domain/adjustment"
	"reajuste/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// IssuesFrom flattens calculator errors into a stable, field-ordered list.
func IssuesFrom(errs adjustment.ValidationErrors) []ValidationIssue {
	if len(errs) == 0 {
		return nil
	}
	out := make([]ValidationIssue, 0, len(errs))
	for _, e := range errs {
		out = append(out, ValidationIssue{Field: e.Field, Kind: string(e.Kind), Reason: e.Message})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func FailValidation(w http.ResponseWriter, requestID string, errs adjustment.ValidationErrors) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"query validation failed",
		map[string]any{"fields": IssuesFrom(errs)},
		requestID,
	)
}
