package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/pkg/logger"

	"go.uber.org/zap"
)

// TextGenerator produces free-form text from a prompt. The production
// implementation is GatewayService; tests substitute a canned generator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GenerateOptions tunes a single generation call.
type GenerateOptions struct {
	Temperature     float64
	MaxOutputTokens int
	TopP            float64
	TopK            int
}

// DefaultOptions mirrors the sampling parameters the tutor uses for
// content and question generation.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{
		Temperature:     0.7,
		MaxOutputTokens: 2048,
		TopP:            0.8,
		TopK:            40,
	}
}

// GatewayService talks to the upstream generative language API.
type GatewayService struct {
	cfg    config.AIConfig
	client *http.Client
}

func NewGatewayService(cfg config.AIConfig) *GatewayService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GatewayService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *GatewayService) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
			TopP:            opts.TopP,
			TopK:            opts.TopK,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		logger.Log.Warn("generation API returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.String("model", s.cfg.Model))
		return "", fmt.Errorf("generation API status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	// An empty candidate list is a valid response (safety filtered); the
	// caller falls back to its static bank on empty text.
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// Healthy reports whether the gateway is configured with an API key.
func (s *GatewayService) Healthy() bool {
	return s.cfg.APIKey != ""
}

// Probe makes a tiny generation call to check upstream reachability. Bounded
// by its own short timeout so health checks stay fast when the upstream hangs.
func (s *GatewayService) Probe(ctx context.Context) bool {
	if s.cfg.APIKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	opts := DefaultOptions()
	opts.MaxOutputTokens = 10
	_, err := s.Generate(ctx, "Test prompt: Say hello", opts)
	return err == nil
}
