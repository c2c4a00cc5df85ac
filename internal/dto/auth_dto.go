package dto

import (
	"strings"

	"github.com/fadilmartias/resume-builder/internal/util"
)

type LoginForm struct {
	Username string `form:"username" json:"username" validate:"required,max=80"`
	Password string `form:"password" json:"-" validate:"required"`
}

func (f *LoginForm) Validate() *util.FormError {
	f.Username = strings.TrimSpace(f.Username)
	return util.ValidateForm(f)
}

type ResumeForm struct {
	Name string `form:"name" json:"name" validate:"required,max=255"`
}

func (f *ResumeForm) Validate() *util.FormError {
	f.Name = util.Sanitize(f.Name)
	return util.ValidateForm(f)
}
