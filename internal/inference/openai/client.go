package openai

import (
	"context"
	"fmt"
	"log/slog"

	"resty.dev/v3"

	"github.com/learnio/learnio/internal/inference"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Client is an inference.Provider backed by the OpenAI chat completions API.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

var _ inference.Provider = (*Client)(nil)

func NewClient(apiKey, baseURL string, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

func (client *Client) Name() string {
	return "openai"
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete implements inference.Provider.
func (client *Client) Complete(ctx context.Context, params inference.CompletionRequest) (string, error) {
	var content string
	if err := withRetry(ctx, client.maxRetryAttempts, func() error {
		response, err := client.complete(ctx, params)
		if err != nil {
			return err
		}
		content = response
		return nil
	}); err != nil {
		return "", err
	}
	return content, nil
}

func (client *Client) complete(ctx context.Context, params inference.CompletionRequest) (string, error) {
	requestBody := ChatCompletionRequest{
		Model:       params.Model,
		Temperature: 0.4,
	}
	if params.System != "" {
		requestBody.Messages = append(requestBody.Messages, Message{Role: RoleSystem, Content: params.System})
	}
	requestBody.Messages = append(requestBody.Messages, Message{Role: RoleUser, Content: params.Prompt})
	if params.JSON {
		requestBody.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	slog.Default().Debug("openai completion",
		"model", params.Model,
		"finish_reason", responseBody.Choices[0].FinishReason,
		"total_tokens", responseBody.Usage.TotalTokens,
	)
	return content, nil
}
