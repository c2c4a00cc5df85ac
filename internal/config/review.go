package config

import "sync"

type ReviewConfig struct {
	Provider string // gemini | openrouter | none
}

var (
	reviewConfig *ReviewConfig
	reviewOnce   sync.Once
)

func LoadReviewConfig() *ReviewConfig {
	reviewOnce.Do(func() {
		reviewConfig = &ReviewConfig{
			Provider: getEnv("REVIEW_PROVIDER", "none"),
		}
	})
	return reviewConfig
}
