package dto

import (
	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/util"
)

type JobForm struct {
	Name           string `form:"name" json:"name" validate:"required,max=30"`
	Location       string `form:"location" json:"location" validate:"max=255"`
	Specialization string `form:"specialization" json:"specialization" validate:"required,oneof=development testing analytics design management security ai"`
	Grade          string `form:"grade" json:"grade" validate:"required,oneof=no intern junior middle senior lead"`
	Position       string `form:"position" json:"position" validate:"max=30"`
	Start          string `form:"start" json:"start" validate:"required,datetime=2006-01-02"`
	Finish         string `form:"finish" json:"finish" validate:"omitempty,datetime=2006-01-02"`
	About          string `form:"about" json:"about" validate:"max=255"`
	Skills         string `form:"skills" json:"skills" validate:"max=255"`
}

// JobFormFrom fills the form from job. A new job gets the default choices.
func JobFormFrom(j *model.Job) JobForm {
	if j.ID == 0 {
		return JobForm{
			Specialization: model.SpecializationDevelopment,
			Grade:          model.GradeNone,
		}
	}
	return JobForm{
		Name:           j.Name,
		Location:       j.Location,
		Specialization: j.Specialization,
		Grade:          j.Grade,
		Position:       j.Position,
		Start:          formatDate(j.Start),
		Finish:         formatOptionalDate(j.Finish),
		About:          j.About,
		Skills:         j.Skills,
	}
}

func (f *JobForm) Validate() *util.FormError {
	f.Name = util.Sanitize(f.Name)
	f.Location = util.Sanitize(f.Location)
	f.Position = util.Sanitize(f.Position)
	f.About = util.Sanitize(f.About)
	f.Skills = util.Sanitize(f.Skills)
	return finishBeforeStart(util.ValidateForm(f), f.Start, f.Finish)
}

func (f *JobForm) Apply(j *model.Job) error {
	start, err := parseDate(f.Start)
	if err != nil {
		return err
	}
	finish, err := parseOptionalDate(f.Finish)
	if err != nil {
		return err
	}
	j.Name = f.Name
	j.Location = f.Location
	j.Specialization = f.Specialization
	j.Grade = f.Grade
	j.Position = f.Position
	j.Start = start
	j.Finish = finish
	j.About = f.About
	j.Skills = f.Skills
	return nil
}
