package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/resume-builder/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return NewOpenRouterServiceWith(cfg.APIKey, cfg.Model, cfg.BaseURL)
}

func NewOpenRouterServiceWith(apiKey, model, baseURL string) *OpenRouterService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(90 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &OpenRouterService{APIKey: apiKey, Model: model, client: client}
}

func (s *OpenRouterService) Name() string {
	return "openrouter"
}

func (s *OpenRouterService) Review(ctx context.Context, resumeText string) (string, error) {
	if s.APIKey == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an AI reviewing resumes for job seekers."},
				{"role": "user", "content": reviewPrompt(resumeText)},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("openrouter request failed")
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
