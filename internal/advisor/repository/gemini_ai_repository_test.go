package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crypto-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGenAIClient(t *testing.T, baseURL string) *genai.Client {
	t.Helper()
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL + "/"},
	})
	require.NoError(t, err)
	return client
}

func TestGeminiAIRepository_GenerateText(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"first part"},{"text":"second part"}]}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig("")
	repo := NewGeminiAIRepository(cfg, logger.NewNop(), newTestGenAIClient(t, srv.URL))

	text, err := repo.GenerateText(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "first part", text)

	genCfg, ok := gotBody["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 0.7, genCfg["temperature"], 1e-6)
	assert.InDelta(t, 40, genCfg["topK"], 1e-6)
	assert.InDelta(t, 0.95, genCfg["topP"], 1e-6)
	assert.InDelta(t, 1024, genCfg["maxOutputTokens"], 1e-6)
}

func TestGeminiAIRepository_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
	}))
	defer srv.Close()

	repo := NewGeminiAIRepository(testConfig(""), logger.NewNop(), newTestGenAIClient(t, srv.URL))
	_, err := repo.GenerateText(context.Background(), "hello")
	assert.Error(t, err)
}

func TestGeminiAIRepository_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	repo := NewGeminiAIRepository(testConfig(""), logger.NewNop(), newTestGenAIClient(t, srv.URL))
	_, err := repo.GenerateText(context.Background(), "hello")
	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestBuildAdvisorPrompt(t *testing.T) {
	prompt := BuildAdvisorPrompt("Is BTC a good buy?")
	assert.True(t, strings.HasPrefix(prompt, "You are an AI Crypto Investment Advisor"))
	assert.Contains(t, prompt, "under 150 words")
	assert.True(t, strings.HasSuffix(prompt, "User query: Is BTC a good buy?"))
}

func TestUnavailableAIRepository(t *testing.T) {
	_, err := NewUnavailableAIRepository().GenerateText(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrAIUnavailable)
}
