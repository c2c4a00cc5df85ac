package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                       "/",
		"/":                      "/",
		"/resumes/3/":            "/resumes/3/",
		"/?page=2":               "/?page=2",
		"https://evil.example/":  "/",
		"//evil.example/path":    "/",
		`/\evil.example`:         "/",
		"javascript:alert(1)":    "/",
		"resumes/3/edit_contact": "resumes/3/edit_contact",
	}
	for next, want := range tests {
		assert.Equal(t, want, safeNext(next), next)
	}
}

func TestResumePath(t *testing.T) {
	assert.Equal(t, "/resumes/4/edit_personal/", resumePath(4, "edit_personal"))
	assert.Equal(t, "/resumes/4/edit_experience/2/edit_job/0/", jobPath(4, 2, 0))
	assert.Equal(t, "/resumes/4/edit_education/2/edit_school/9/", schoolPath(4, 2, 9))
}
