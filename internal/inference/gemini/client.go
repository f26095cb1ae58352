// Package gemini implements inference.Provider on the Gemini generateContent API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/learnio/learnio/internal/inference"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Client struct {
	httpClient       *resty.Client
	apiKey           string
	maxRetryAttempts uint
}

var _ inference.Provider = (*Client)(nil)

func NewClient(apiKey, baseURL string, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
		apiKey:           apiKey,
		maxRetryAttempts: retryAttempts,
	}
}

func (c *Client) Name() string {
	return "gemini"
}

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type GenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type GenerateContentRequest struct {
	Contents          []Content        `json:"contents"`
	SystemInstruction *Content         `json:"systemInstruction,omitempty"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Text joins the parts of the first candidate.
func (r GenerateContentResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Complete implements inference.Provider.
func (c *Client) Complete(ctx context.Context, params inference.CompletionRequest) (string, error) {
	var content string
	err := retry.Do(
		func() error {
			text, err := c.generateContent(ctx, params)
			if err != nil {
				if !isRetryableStatus(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			content = text
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.Delay(100*time.Millisecond),
	)
	if err != nil {
		return "", err
	}
	return content, nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.code, e.body)
}

func isRetryableStatus(err error) bool {
	se, ok := err.(*statusError)
	if !ok {
		// transport errors
		return true
	}
	return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
}

func (c *Client) generateContent(ctx context.Context, params inference.CompletionRequest) (string, error) {
	body := GenerateContentRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: params.Prompt}}}},
	}
	if params.System != "" {
		body.SystemInstruction = &Content{Parts: []Part{{Text: params.System}}}
	}
	if params.JSON {
		body.GenerationConfig.ResponseMimeType = "application/json"
	} else {
		body.GenerationConfig.ResponseMimeType = "text/plain"
	}

	var result GenerateContentResponse
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetPathParam("model", params.Model).
		SetBody(body).
		SetResult(&result).
		Post("/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("client.R.Post > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", &statusError{code: res.StatusCode(), body: string(res.Body())}
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty candidates: %s", string(res.Body()))
	}
	slog.Default().Debug("gemini completion",
		"model", params.Model,
		"finish_reason", result.Candidates[0].FinishReason,
	)
	return text, nil
}
