package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	FullName string `form:"full_name" validate:"required,max=5"`
	Email    string `form:"email" validate:"omitempty,email"`
	Kind     string `form:"kind" validate:"oneof=a b"`
	Day      string `form:"day" validate:"omitempty,datetime=2006-01-02"`
	Internal string `form:"-"`
}

func TestValidateFormUsesFormNames(t *testing.T) {
	formErr := ValidateForm(&sampleForm{Email: "nope", Kind: "c", Day: "31.12.2020"})
	require.NotNil(t, formErr)
	assert.Equal(t, "Validation failed", formErr.Message)
	assert.Equal(t, map[string]string{
		"full_name": "is required",
		"email":     "must be a valid email address",
		"kind":      "must be one of: a b",
		"day":       "must be a date in YYYY-MM-DD format",
	}, formErr.Errors)

	formErr = ValidateForm(&sampleForm{FullName: "toolong", Kind: "a"})
	require.NotNil(t, formErr)
	assert.Equal(t, "must not exceed 5 characters", formErr.Errors["full_name"])

	assert.Nil(t, ValidateForm(&sampleForm{FullName: "ok", Kind: "b", Day: "2020-12-31"}))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("  <b>hello</b> "))
	assert.Equal(t, "", Sanitize(`<script>alert("x")</script>`))
	assert.Equal(t, "Tom & Jerry", Sanitize("Tom & Jerry"))
	assert.Equal(t, "C++ < Go", Sanitize("C++ < Go"))
	assert.Equal(t, "bold", Sanitize("&lt;b&gt;bold&lt;/b&gt;"))
	assert.Equal(t, "bold", Sanitize("&amp;lt;b&amp;gt;bold&amp;lt;/b&amp;gt;"))
	assert.NotContains(t, Sanitize(`&lt;img src=x onerror=alert(1)&gt;hi`), "<")
}
