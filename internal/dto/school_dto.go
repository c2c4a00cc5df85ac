package dto

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/util"
)

type SchoolForm struct {
	Name     string `form:"name" json:"name" validate:"required,max=30"`
	Course   string `form:"course" json:"course" validate:"required,max=50"`
	Start    string `form:"start" json:"start" validate:"required,datetime=2006-01-02"`
	Finish   string `form:"finish" json:"finish" validate:"required,datetime=2006-01-02"`
	Practice string `form:"practice" json:"practice" validate:"max=255"`
}

func SchoolFormFrom(s *model.School) SchoolForm {
	return SchoolForm{
		Name:     s.Name,
		Course:   s.Course,
		Start:    formatDate(s.Start),
		Finish:   formatDate(s.Finish),
		Practice: s.Practice,
	}
}

func (f *SchoolForm) Validate() *util.FormError {
	f.Name = util.Sanitize(f.Name)
	f.Course = util.Sanitize(f.Course)
	f.Practice = util.Sanitize(f.Practice)
	return finishBeforeStart(util.ValidateForm(f), f.Start, f.Finish)
}

func (f *SchoolForm) Apply(s *model.School) error {
	start, err := parseDate(f.Start)
	if err != nil {
		return err
	}
	finish, err := parseDate(f.Finish)
	if err != nil {
		return err
	}
	s.Name = f.Name
	s.Course = f.Course
	s.Start = start
	s.Finish = finish
	s.Practice = f.Practice
	return nil
}
