// Package excusegen produces short excuse variants through the OpenAI chat
// API under a hard deadline, degrading to a pre-authored set when the call
// fails in any way. The contract is a guaranteed floor: callers always get
// exactly VariantCount non-empty variants, and never wait past the deadline.
package excusegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"colpa-mia/internal/pkg/config"
)

// VariantCount is the fixed number of excuse variants per generation.
const VariantCount = 3

type Request struct {
	Context   string
	StyleTag  string
	Locale    string
	MaxLength int
}

// Result makes fallback use visible in the signature instead of burying it
// in control flow: Degraded=true means Variants is the pre-authored set and
// Reason says why.
type Result struct {
	Variants []string
	Degraded bool
	Reason   string
}

type Generator struct {
	apiKey    string
	baseURL   string
	model     string
	timeout   time.Duration
	client    *http.Client
	logger    *slog.Logger
	maxLength int
	locale    string
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	N           int           `json:"n,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewGenerator(cfg config.OpenAIConfig, logger *slog.Logger) *Generator {
	return &Generator{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		model:     cfg.Model,
		timeout:   cfg.Timeout,
		client:    &http.Client{},
		logger:    logger,
		maxLength: cfg.MaxLength,
		locale:    cfg.Locale,
	}
}

// Generate never blocks past the configured deadline and never returns
// fewer than VariantCount variants.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	if req.MaxLength <= 0 {
		req.MaxLength = g.maxLength
	}
	if req.Locale == "" {
		req.Locale = g.locale
	}

	variants, err := g.callOpenAI(ctx, req)
	if err != nil {
		g.logger.Warn("excuse generation degraded to fallback",
			"style", req.StyleTag, "reason", err.Error())
		return fallbackResult(req.StyleTag, err.Error())
	}
	return Result{Variants: variants}
}

func (g *Generator) callOpenAI(ctx context.Context, req Request) ([]string, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("no api key")
	}

	// The in-flight request is abandoned on expiry, not awaited.
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model:       g.model,
		Temperature: 0.9,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req)},
			{Role: "user", Content: req.Context},
		},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("unparsable response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	variants := splitVariants(parsed.Choices[0].Message.Content, req.MaxLength)
	if len(variants) < VariantCount {
		return nil, fmt.Errorf("expected %d variants, got %d", VariantCount, len(variants))
	}
	return variants[:VariantCount], nil
}

func systemPrompt(req Request) string {
	return fmt.Sprintf(
		"Scrivi esattamente %d scuse brevi e credibili, una per riga, senza numerazione. "+
			"Stile: %s. Lingua: %s. Massimo %d caratteri ciascuna.",
		VariantCount, req.StyleTag, req.Locale, req.MaxLength,
	)
}

// splitVariants takes one variant per line, dropping blanks and trimming
// each to maxLength runes.
func splitVariants(content string, maxLength int) []string {
	lines := strings.Split(content, "\n")
	variants := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > maxLength {
			line = string(runes[:maxLength])
		}
		variants = append(variants, line)
	}
	return variants
}
