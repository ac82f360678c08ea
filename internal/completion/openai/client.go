package openai

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"genaizone/internal/completion"
	"genaizone/internal/config"
	"genaizone/internal/domain"
	"genaizone/internal/port"
)

const (
	defaultAPIURL         = "https://api.openai.com/v1/chat/completions"
	chatCompletionsSuffix = "/chat/completions"
	systemPrompt          = "You are a helpful assistant."

	defaultMaxTokens   = 2000
	defaultTemperature = 0.7
)

// Client implements port.Completer using the OpenAI Chat Completions API.
type Client struct {
	client      *goopenai.Client
	maxTokens   int
	temperature float32
}

// NewClient creates a Client from config. An API key is required.
func NewClient(cfg *config.OpenAIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required; set GENAI_OPENAI_API_KEY or OPENAI_API_KEY")
	}

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	oc := goopenai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = BaseURL(apiURL)
	oc.HTTPClient = &http.Client{Timeout: timeout}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := float32(defaultTemperature)
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}

	return &Client{
		client:      goopenai.NewClientWithConfig(oc),
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

// BaseURL derives the API base from a full chat completions URL, so both
// "https://host/v1/chat/completions" and "https://host/v1" are accepted.
func BaseURL(apiURL string) string {
	return strings.TrimSuffix(strings.TrimRight(apiURL, "/"), chatCompletionsSuffix)
}

// Complete sends prompt to modelID with the fixed assistant persona and
// returns the first choice. Exactly one request is made; nothing is retried.
func (c *Client) Complete(ctx context.Context, prompt, modelID string, params port.GenerationParams) (string, error) {
	if !domain.IsSupportedModel(modelID) {
		return "", domain.ErrUnsupportedModel
	}

	req := goopenai.ChatCompletionRequest{
		Model: modelID,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: wireTemperature(c.temperature),
	}
	if params.MaxTokens > 0 {
		req.MaxTokens = params.MaxTokens
	}
	if params.Temperature != nil {
		req.Temperature = wireTemperature(*params.Temperature)
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", toAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", completion.ErrNoResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// wireTemperature keeps a zero temperature on the wire. The request field is
// omitempty, so 0 would otherwise fall back to the API default of 1.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

// toAPIError prefers the structured {"error":{"message"}} text, then the raw
// response body, then the transport error itself.
func toAPIError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &completion.APIError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		msg := strings.TrimSpace(string(reqErr.Body))
		if msg == "" {
			msg = reqErr.Error()
		}
		return &completion.APIError{StatusCode: reqErr.HTTPStatusCode, Message: msg, Err: err}
	}

	if apiErr != nil {
		return &completion.APIError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Error(), Err: err}
	}
	return &completion.APIError{Message: err.Error(), Transport: true, Err: err}
}
