// Package gemini implements the interpretation and categorization clients
// against the generative-language HTTP endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/dreamlog/backend/internal/config"
	"github.com/dreamlog/backend/internal/domain"
)

// allowedText strips everything outside the allow-list: ASCII letters and
// digits, Turkish accented letters, whitespace, and basic punctuation.
// Deliberate sanitation against the model echoing markdown or injected
// instructions.
var allowedText = regexp.MustCompile(`[^a-zA-Z0-9çğıöşüÇĞİÖŞÜ\s.,!?-]`)

// Client calls the generative-language API. It performs no retries;
// retry policy, if any, belongs to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from GeminiConfig. The config timeout bounds every
// call; expiry surfaces as a transport failure.
func New(cfg config.GeminiConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "gemini"),
	}
}

// Interpret submits the dream content under the locale's prompt contract
// and returns the sanitized analysis text.
//
// Error classes:
//   - domain.ErrContentUnanalyzable — the model returned the locale
//     sentinel: the input is semantically meaningless.
//   - domain.ErrInterpreterUnavailable — endpoint unreachable, non-success
//     status, or malformed payload.
func (c *Client) Interpret(ctx context.Context, dreamContent string, locale domain.Locale) (string, error) {
	raw, err := c.generate(ctx, interpretPrompt(locale, dreamContent))
	if err != nil {
		return "", err
	}

	analysis := strings.TrimSpace(allowedText.ReplaceAllString(raw, ""))
	if analysis == sentinel(locale) {
		c.log.InfoContext(ctx, "interpretation rejected content as meaningless")
		return "", fmt.Errorf("gemini: %w", domain.ErrContentUnanalyzable)
	}
	if analysis == "" {
		return "", fmt.Errorf("gemini: empty analysis after sanitation: %w", domain.ErrInterpreterUnavailable)
	}

	return analysis, nil
}

// Categorize asks the model to pick exactly one label from the fixed
// taxonomy. Out-of-enumeration answers coerce silently to CategoryOther;
// transport failures return CategoryOther together with the error so the
// caller can continue with the catch-all and still surface the signal.
func (c *Client) Categorize(ctx context.Context, dreamContent string) (domain.Category, error) {
	raw, err := c.generate(ctx, categorizePrompt(dreamContent))
	if err != nil {
		return domain.CategoryOther, err
	}

	category, ok := domain.ParseCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		c.log.WarnContext(ctx, "categorization returned out-of-enumeration label",
			slog.String("label", strings.TrimSpace(raw)))
	}
	return category, nil
}

// generate performs one generateContent call and extracts the first
// candidate's text. Every failure wraps domain.ErrInterpreterUnavailable.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "gemini request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini: request failed: %v: %w", err, domain.ErrInterpreterUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "gemini non-success status", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("gemini: unexpected status %d: %w", resp.StatusCode, domain.ErrInterpreterUnavailable)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %v: %w", err, domain.ErrInterpreterUnavailable)
	}

	var decoded generateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("gemini: decode json: %v: %w", err, domain.ErrInterpreterUnavailable)
	}

	text, ok := decoded.firstText()
	if !ok {
		return "", fmt.Errorf("gemini: response has no candidate text: %w", domain.ErrInterpreterUnavailable)
	}

	c.log.DebugContext(ctx, "gemini response", slog.Int("chars", len(text)))
	return text, nil
}
