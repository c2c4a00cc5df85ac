package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterReview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Contains(t, body.Messages[1].Content, "Resume: cv")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Add a summary."}}]}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterServiceWith("key", "test-model", srv.URL)
	assert.Equal(t, "openrouter", svc.Name())

	feedback, err := svc.Review(context.Background(), "Resume: cv")
	require.NoError(t, err)
	assert.Equal(t, "Add a summary.", feedback)
}

func TestOpenRouterReviewErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer empty" {
			_, _ = w.Write([]byte(`{"choices":[]}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenRouterServiceWith("bad", "m", srv.URL).Review(context.Background(), "x")
	assert.ErrorContains(t, err, "status 401")

	_, err = NewOpenRouterServiceWith("empty", "m", srv.URL).Review(context.Background(), "x")
	assert.ErrorContains(t, err, "no response")

	_, err = NewOpenRouterServiceWith("", "m", srv.URL).Review(context.Background(), "x")
	assert.ErrorContains(t, err, "OPENROUTER_API_KEY")
}
