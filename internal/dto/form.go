package dto

import (
	"strings"
	"time"

	"github.com/fadilmartias/resume-builder/internal/util"
)

// DateLayout is the format of every date field accepted by the forms.
const DateLayout = "2006-01-02"

// Validatable is implemented by forms that check themselves after binding.
type Validatable interface {
	Validate() *util.FormError
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

// checked reads an HTML checkbox value. Browsers omit unchecked boxes.
func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "y", "yes", "true", "1":
		return true
	}
	return false
}

func checkbox(v bool) string {
	if v {
		return "y"
	}
	return ""
}

// nullable maps an empty value to nil so it is stored as NULL.
func nullable(s string) *string {
	s = util.Sanitize(s)
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// finishBeforeStart adds a finish error to formErr when both dates parse and
// finish is earlier than start.
func finishBeforeStart(formErr *util.FormError, start, finish string) *util.FormError {
	if strings.TrimSpace(finish) == "" {
		return formErr
	}
	s, err := parseDate(start)
	if err != nil {
		return formErr
	}
	f, err := parseDate(finish)
	if err != nil || !f.Before(s) {
		return formErr
	}
	if formErr == nil {
		formErr = util.NewFormError("Validation failed", map[string]string{})
	}
	if _, ok := formErr.Errors["finish"]; !ok {
		formErr.Errors["finish"] = "must not be before start"
	}
	return formErr
}
