package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/service"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

type ReviewResult struct {
	Provider string `json:"provider"`
	Feedback string `json:"feedback"`
}

type ReviewUsecase struct {
	resumes  *ResumeUsecase
	reviewer service.ReviewerInterface
}

// NewReviewUsecase accepts a nil reviewer; Review then fails with
// ErrReviewerDisabled.
func NewReviewUsecase(resumes *ResumeUsecase, reviewer service.ReviewerInterface) *ReviewUsecase {
	return &ReviewUsecase{resumes: resumes, reviewer: reviewer}
}

func (uc *ReviewUsecase) Enabled() bool {
	return uc.reviewer != nil
}

func (uc *ReviewUsecase) Review(ctx context.Context, userID, resumeID uint) (*ReviewResult, error) {
	if uc.reviewer == nil {
		return nil, ErrReviewerDisabled
	}

	resume, err := uc.resumes.Graph(userID, resumeID)
	if err != nil {
		return nil, err
	}

	feedback, err := uc.reviewer.Review(ctx, RenderResume(resume))
	if err != nil {
		log.Error().Err(err).Str("provider", uc.reviewer.Name()).Uint("resume_id", resumeID).Msg("resume review failed")
		return nil, fmt.Errorf("review failed: %w", err)
	}
	return &ReviewResult{Provider: uc.reviewer.Name(), Feedback: feedback}, nil
}

// RenderResume writes the resume graph as plain text, one section per block.
// Missing sections are left out.
func RenderResume(r *model.Resume) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resume: %s\n", r.Name)

	if p := r.Personal; p != nil {
		b.WriteString("\n## Personal\n")
		line(&b, "Name", strings.TrimSpace(strings.Join([]string{p.Surname, p.Name, p.Patronymic}, " ")))
		line(&b, "Gender", model.Label(model.GenderChoices, p.Gender))
		if p.Birthdate != nil {
			line(&b, "Birthdate", p.Birthdate.Format(dateLayout))
		}
		line(&b, "Location", p.Location)
		line(&b, "Citizenship", p.Citizenship)
		line(&b, "About", p.About)
	}

	if s := r.Specialization; s != nil {
		b.WriteString("\n## Specialization\n")
		line(&b, "Slogan", s.Slogan)
		line(&b, "Specialization", model.Label(model.SpecializationChoices, s.Specialization))
		line(&b, "Grade", model.Label(model.GradeChoices, s.Grade))
		line(&b, "Readiness", model.Label(model.ReadinessChoices, s.Readiness))
		if s.Salary > 0 {
			line(&b, "Salary", fmt.Sprint(s.Salary))
		}
		line(&b, "Skills", s.Skills)
		line(&b, "Languages", s.Languages)
		line(&b, "Remote work", yesNo(s.RemoteReady))
		line(&b, "Relocation", yesNo(s.RelocationReady))
	}

	if e := r.Experience; e != nil && len(e.Jobs) > 0 {
		b.WriteString("\n## Experience\n")
		for _, j := range e.Jobs {
			finish := "present"
			if j.Finish != nil {
				finish = j.Finish.Format(dateLayout)
			}
			fmt.Fprintf(&b, "- %s (%s to %s)\n", j.Name, j.Start.Format(dateLayout), finish)
			line(&b, "  Position", j.Position)
			line(&b, "  Location", j.Location)
			line(&b, "  Specialization", model.Label(model.SpecializationChoices, j.Specialization))
			line(&b, "  Grade", model.Label(model.GradeChoices, j.Grade))
			line(&b, "  About", j.About)
			line(&b, "  Skills", j.Skills)
		}
	}

	if e := r.Education; e != nil && len(e.Schools) > 0 {
		b.WriteString("\n## Education\n")
		for _, s := range e.Schools {
			fmt.Fprintf(&b, "- %s, %s (%s to %s)\n", s.Name, s.Course, s.Start.Format(dateLayout), s.Finish.Format(dateLayout))
			line(&b, "  Practice", s.Practice)
		}
	}

	if c := r.Contact; c != nil {
		b.WriteString("\n## Contact\n")
		line(&b, "Phone", deref(c.Phone))
		line(&b, "Email", deref(c.Email))
		line(&b, "Telegram", deref(c.Telegram))
		line(&b, "Profile", deref(c.SNProfile))
	}

	return b.String()
}

func line(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
