// Package openai implements the translation provider port with an OpenAI chat model.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"deeplbot/internal/domain"
	"deeplbot/internal/domain/entities"
	"deeplbot/internal/domain/language"
	"deeplbot/internal/ports/output"
)

const (
	providerName = "openai"
	defaultModel = "gpt-4o-mini"
)

var _ output.TranslationProvider = (*Provider)(nil)

// Config holds configuration for the OpenAI provider.
type Config struct {
	APIKey  string
	Model   string // default: gpt-4o-mini
	BaseURL string // optional, for compatible endpoints
	Timeout time.Duration
}

// Provider translates a batch of texts with one chat completion in JSON mode.
type Provider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewProvider(cfg Config) *Provider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: cfg.Timeout,
	}
}

// Translate always answers with a batch, one result per input text.
func (p *Provider) Translate(ctx context.Context, texts []string, targetLang string) (entities.Response, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	input, err := json.Marshal(texts)
	if err != nil {
		return entities.Response{}, fmt.Errorf("openai: encode texts: %w", err)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(targetLang)},
			{Role: openai.ChatMessageRoleUser, Content: string(input)},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		pe := &domain.ProviderError{Provider: providerName, Message: "chat completion failed", Cause: err}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			pe.Status = apiErr.HTTPStatusCode
		}
		return entities.Response{}, pe
	}
	if len(resp.Choices) == 0 {
		return entities.Response{}, &domain.ProviderError{Provider: providerName, Message: "no choices in response"}
	}

	results, err := parseResults(resp.Choices[0].Message.Content)
	if err != nil {
		return entities.Response{}, &domain.ProviderError{Provider: providerName, Message: "invalid response format", Cause: err}
	}
	return entities.BatchResponse(results), nil
}

func buildSystemPrompt(targetLang string) string {
	return fmt.Sprintf(`You are a professional translator for chat messages.
Translate each string of the JSON array sent by the user into %s (language code %s).

Rules:
- Keep Discord markdown, mentions (<@123>, <#123>, <:emoji:123>), URLs and code blocks unchanged.
- Keep line breaks.
- Never merge or split strings: return exactly one translation per input string, in the same order.
- Detect the source language of each string and report it as an ISO 639-1 code.

Return a JSON object of the form:
{"translations": [{"text": "<translation>", "detected_source_language": "<code>"}]}`,
		language.DisplayName(targetLang), targetLang)
}

// parseResults accepts translation items as objects or as bare strings.
func parseResults(content string) ([]entities.Result, error) {
	var payload struct {
		Translations []json.RawMessage `json:"translations"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, err
	}
	if payload.Translations == nil {
		return nil, errors.New(`missing "translations" key`)
	}

	results := make([]entities.Result, 0, len(payload.Translations))
	for i, raw := range payload.Translations {
		var r entities.Result
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '"' {
			if err := json.Unmarshal(trimmed, &r.Text); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		} else if err := json.Unmarshal(trimmed, &r); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		r.DetectedSourceLang = strings.ToUpper(strings.TrimSpace(r.DetectedSourceLang))
		results = append(results, r)
	}
	return results, nil
}
