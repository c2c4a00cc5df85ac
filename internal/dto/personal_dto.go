package dto

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/util"
)

type PersonalForm struct {
	Surname     string `form:"surname" json:"surname" validate:"required,max=50"`
	Name        string `form:"name" json:"name" validate:"required,max=50"`
	Patronymic  string `form:"patronymic" json:"patronymic" validate:"max=50"`
	Gender      string `form:"gender" json:"gender" validate:"required,oneof=male female"`
	Birthdate   string `form:"birthdate" json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Location    string `form:"location" json:"location" validate:"max=100"`
	Citizenship string `form:"citizenship" json:"citizenship" validate:"max=20"`
	About       string `form:"about" json:"about" validate:"max=100"`
}

func NewPersonalForm() PersonalForm {
	return PersonalForm{Gender: model.GenderMale}
}

func PersonalFormFrom(p *model.Personal) PersonalForm {
	return PersonalForm{
		Surname:     p.Surname,
		Name:        p.Name,
		Patronymic:  p.Patronymic,
		Gender:      p.Gender,
		Birthdate:   formatOptionalDate(p.Birthdate),
		Location:    p.Location,
		Citizenship: p.Citizenship,
		About:       p.About,
	}
}

func (f *PersonalForm) Validate() *util.FormError {
	f.Surname = util.Sanitize(f.Surname)
	f.Name = util.Sanitize(f.Name)
	f.Patronymic = util.Sanitize(f.Patronymic)
	f.Location = util.Sanitize(f.Location)
	f.Citizenship = util.Sanitize(f.Citizenship)
	f.About = util.Sanitize(f.About)
	return util.ValidateForm(f)
}

// Apply copies the validated form onto p. The image is handled separately.
func (f *PersonalForm) Apply(p *model.Personal) error {
	birthdate, err := parseOptionalDate(f.Birthdate)
	if err != nil {
		return err
	}
	p.Surname = f.Surname
	p.Name = f.Name
	p.Patronymic = f.Patronymic
	p.Gender = f.Gender
	p.Birthdate = birthdate
	p.Location = f.Location
	p.Citizenship = f.Citizenship
	p.About = f.About
	return nil
}
