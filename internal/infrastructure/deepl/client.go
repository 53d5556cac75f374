// Package deepl implements the translation provider port on top of the DeepL REST API.
package deepl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/entities"
	"deeplbot/internal/ports/output"
)

const (
	FreeAPIURL = "https://api-free.deepl.com"
	ProAPIURL  = "https://api.deepl.com"

	providerName = "deepl"
	userAgent    = "deeplbot/1.0"
)

var _ output.TranslationProvider = (*Client)(nil)

// Config holds the DeepL client settings.
type Config struct {
	APIKey  string
	BaseURL string        // defaults from the key: free keys end in ":fx"
	Timeout time.Duration // per request, default 15s
}

// Client calls POST /v2/translate.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a DeepL client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(BaseURLForKey(cfg.APIKey, cfg.BaseURL), "/"),
	}
}

// BaseURLForKey returns override when set, otherwise the endpoint matching the key type.
func BaseURLForKey(apiKey, override string) string {
	if override != "" {
		return override
	}
	if strings.HasSuffix(apiKey, ":fx") {
		return FreeAPIURL
	}
	return ProAPIURL
}

type translateRequest struct {
	Text       []string `json:"text"`
	TargetLang string   `json:"target_lang"`
}

type translateResponse struct {
	Translations []entities.Result `json:"translations"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Translate sends all texts in one request. A single text is answered with a bare result.
func (c *Client) Translate(ctx context.Context, texts []string, targetLang string) (entities.Response, error) {
	body, err := json.Marshal(translateRequest{Text: texts, TargetLang: targetLang})
	if err != nil {
		return entities.Response{}, fmt.Errorf("deepl: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/translate", bytes.NewReader(body))
	if err != nil {
		return entities.Response{}, fmt.Errorf("deepl: build request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.Response{}, &domain.ProviderError{Provider: providerName, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.Response{}, &domain.ProviderError{Provider: providerName, Status: resp.StatusCode, Message: "read response", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Response{}, statusError(resp.StatusCode, raw)
	}

	var decoded translateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return entities.Response{}, &domain.ProviderError{Provider: providerName, Status: resp.StatusCode, Message: "decode response", Cause: err}
	}
	if len(texts) == 1 && len(decoded.Translations) == 1 {
		return entities.SingleResponse(decoded.Translations[0]), nil
	}
	return entities.BatchResponse(decoded.Translations), nil
}

func statusError(status int, raw []byte) error {
	var message string
	switch status {
	case http.StatusForbidden:
		message = "authorization failed, check DEEPL_API_KEY"
	case 456:
		message = "quota exceeded"
	case http.StatusTooManyRequests:
		message = "too many requests"
	case http.StatusBadRequest:
		message = "bad request"
	default:
		message = "unexpected status"
	}
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		message += ": " + body.Message
	}
	return &domain.ProviderError{Provider: providerName, Status: status, Message: message}
}
