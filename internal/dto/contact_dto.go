package dto

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/util"
)

type ContactForm struct {
	Phone     string `form:"phone" json:"phone" validate:"max=30"`
	Email     string `form:"email" json:"email" validate:"omitempty,email,max=120"`
	Telegram  string `form:"telegram" json:"telegram" validate:"max=30"`
	SNProfile string `form:"sn_profile" json:"sn_profile" validate:"max=120"`
}

func ContactFormFrom(c *model.Contact) ContactForm {
	return ContactForm{
		Phone:     value(c.Phone),
		Email:     value(c.Email),
		Telegram:  value(c.Telegram),
		SNProfile: value(c.SNProfile),
	}
}

func (f *ContactForm) Validate() *util.FormError {
	f.Phone = util.Sanitize(f.Phone)
	f.Email = util.Sanitize(f.Email)
	f.Telegram = util.Sanitize(f.Telegram)
	f.SNProfile = util.Sanitize(f.SNProfile)
	return util.ValidateForm(f)
}

// Apply stores empty fields as NULL.
func (f *ContactForm) Apply(c *model.Contact) {
	c.Phone = nullable(f.Phone)
	c.Email = nullable(f.Email)
	c.Telegram = nullable(f.Telegram)
	c.SNProfile = nullable(f.SNProfile)
}
