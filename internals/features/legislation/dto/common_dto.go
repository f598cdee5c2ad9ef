package dto

import (
	"strings"
	"time"

	"legisq_backend/internals/constants"
	helper "legisq_backend/internals/helpers"
)

// ListQuery: query string untuk list bill/question.
type ListQuery struct {
	Body      string `query:"body"`
	Q         string `query:"q"`
	Sort      string `query:"sort"`
	StateCode string `query:"state_code"`
}

type SuggestQuery struct {
	Body string `query:"body"`
	Q    string `query:"q"`
}

// ParseBody: body kosong → Lok Sabha (tampilan default).
func ParseBody(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return constants.BodyLokSabha, nil
	}
	body, ok := constants.ParseLegislativeBody(raw)
	if !ok {
		return "", helper.NewFieldError("body", "must be one of Lok Sabha, Rajya Sabha, State Assembly")
	}
	return body, nil
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizeStateCode: pointer kosong → nil.
func normalizeStateCode(s *string) *string {
	if s == nil {
		return nil
	}
	v := normalizeCode(*s)
	if v == "" {
		return nil
	}
	return &v
}

// resolveBodyAndState: state_code wajib untuk State Assembly, dibuang untuk body lain.
func resolveBodyAndState(rawBody string, state *string) (string, *string, error) {
	body, ok := constants.ParseLegislativeBody(rawBody)
	if !ok {
		return "", nil, helper.NewFieldError("legislative_body", "must be one of Lok Sabha, Rajya Sabha, State Assembly")
	}
	if body != constants.BodyStateAssembly {
		return body, nil, nil
	}
	if state == nil {
		return "", nil, helper.NewFieldError("state_code", "is required for State Assembly records")
	}
	return body, state, nil
}

// resolveDate: kosong → hari ini, selain itu harus YYYY-MM-DD.
func resolveDate(field, raw string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(constants.DateLayout), nil
	}
	t, err := time.Parse(constants.DateLayout, raw)
	if err != nil {
		return "", helper.NewFieldError(field, "must be a date in YYYY-MM-DD format")
	}
	return t.Format(constants.DateLayout), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
