package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/resume-builder/internal/config"
)

// ReviewerInterface asks a language model for feedback on a rendered resume.
type ReviewerInterface interface {
	Name() string
	Review(ctx context.Context, resumeText string) (string, error)
}

const reviewInstruction = `You are an experienced technical recruiter. Review the resume below.
Point out missing or weak sections, vague wording and inconsistencies in dates.
Answer in a short list of concrete suggestions, in the language the resume is written in.`

func reviewPrompt(resumeText string) string {
	return fmt.Sprintf("%s\n\nResume:\n%s\n", reviewInstruction, resumeText)
}

// NewReviewer builds the reviewer named by REVIEW_PROVIDER. It returns nil
// for "none" or an empty provider.
func NewReviewer(ctx context.Context) (ReviewerInterface, error) {
	switch provider := config.LoadReviewConfig().Provider; provider {
	case "", "none":
		return nil, nil
	case "gemini":
		gemini, err := NewGeminiService(ctx)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	case "openrouter":
		return NewOpenRouterService(), nil
	default:
		return nil, fmt.Errorf("unknown review provider %q", provider)
	}
}
