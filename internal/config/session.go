package config

import (
	"sync"
	"time"
)

type SessionConfig struct {
	Expiration   time.Duration
	CookieSecure bool
	Store        string // memory | redis
	RedisURL     string
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		sessionConfig = &SessionConfig{
			Expiration:   time.Duration(getEnvAsInt("SESSION_EXPIRATION_HOURS", 24*14)) * time.Hour,
			CookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", false),
			Store:        getEnv("SESSION_STORE", "memory"),
			RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		}
	})
	return sessionConfig
}
