package dto

import (
	"strconv"
	"strings"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/util"
)

type SpecializationForm struct {
	Readiness       string `form:"readiness" json:"readiness" validate:"required,oneof=not_looking looking consider"`
	Salary          string `form:"salary" json:"salary" validate:"required,number"`
	Slogan          string `form:"slogan" json:"slogan" validate:"max=80"`
	Specialization  string `form:"specialization" json:"specialization" validate:"required,oneof=development testing analytics design management security ai"`
	Grade           string `form:"grade" json:"grade" validate:"required,oneof=no intern junior middle senior lead"`
	Skills          string `form:"skills" json:"skills" validate:"required,max=255"`
	Languages       string `form:"languages" json:"languages" validate:"max=50"`
	RemoteReady     string `form:"remote_ready" json:"remote_ready"`
	RelocationReady string `form:"relocation_ready" json:"relocation_ready"`
}

func NewSpecializationForm() SpecializationForm {
	return SpecializationForm{
		Readiness:      model.ReadinessConsider,
		Specialization: model.SpecializationDevelopment,
		Grade:          model.GradeNone,
	}
}

func SpecializationFormFrom(s *model.Specialization) SpecializationForm {
	return SpecializationForm{
		Readiness:       s.Readiness,
		Salary:          strconv.Itoa(s.Salary),
		Slogan:          s.Slogan,
		Specialization:  s.Specialization,
		Grade:           s.Grade,
		Skills:          s.Skills,
		Languages:       s.Languages,
		RemoteReady:     checkbox(s.RemoteReady),
		RelocationReady: checkbox(s.RelocationReady),
	}
}

func (f *SpecializationForm) Validate() *util.FormError {
	if f.Readiness = strings.TrimSpace(f.Readiness); f.Readiness == "" {
		f.Readiness = model.ReadinessConsider
	}
	f.Salary = strings.TrimSpace(f.Salary)
	f.Slogan = util.Sanitize(f.Slogan)
	f.Skills = util.Sanitize(f.Skills)
	f.Languages = util.Sanitize(f.Languages)

	formErr := util.ValidateForm(f)
	if formErr != nil && formErr.Errors["salary"] != "" {
		return formErr
	}
	if salary, err := strconv.Atoi(f.Salary); err != nil || salary < 1 {
		if formErr == nil {
			formErr = util.NewFormError("Validation failed", map[string]string{})
		}
		formErr.Errors["salary"] = "must be a whole number of at least 1"
	}
	return formErr
}

func (f *SpecializationForm) Apply(s *model.Specialization) error {
	salary, err := strconv.Atoi(f.Salary)
	if err != nil {
		return err
	}
	s.Readiness = f.Readiness
	s.Salary = salary
	s.Slogan = f.Slogan
	s.Specialization = f.Specialization
	s.Grade = f.Grade
	s.Skills = f.Skills
	s.Languages = f.Languages
	s.RemoteReady = checked(f.RemoteReady)
	s.RelocationReady = checked(f.RelocationReady)
	return nil
}
