package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client is an abstraction over the generative model provider.
type Client interface {
	// GenerateJSON generates a JSON response constrained to req.Schema.
	GenerateJSON(ctx context.Context, req JSONRequest) (string, error)
	// StartChat opens a conversational session primed with a system instruction.
	StartChat(systemInstruction string) Chat
	// Close releases any resources held by the client
	Close() error
}

// JSONRequest describes a single structured-output generation call.
type JSONRequest struct {
	Parts       []genai.Part
	Schema      *genai.Schema
	Temperature float32
}

// Chat is a conversational session with the model.
type Chat interface {
	// SendMessageStream sends one user turn and returns the streamed reply.
	SendMessageStream(ctx context.Context, text string) Stream
}

// Stream yields a model reply as ordered text chunks.
// Next returns io.EOF when the reply is complete.
type Stream interface {
	Next() (string, error)
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateJSON generates a JSON response constrained to req.Schema.
func (c *GeminiClient) GenerateJSON(ctx context.Context, req JSONRequest) (string, error) {
	model := c.client.GenerativeModel(c.config.ModelName())
	model.SetTemperature(req.Temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = req.Schema

	resp, err := model.GenerateContent(ctx, req.Parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// StartChat opens a conversational session primed with a system instruction.
func (c *GeminiClient) StartChat(systemInstruction string) Chat {
	model := c.client.GenerativeModel(c.config.ModelName())
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	return &geminiChat{session: model.StartChat()}
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

type geminiChat struct {
	session *genai.ChatSession
}

func (g *geminiChat) SendMessageStream(ctx context.Context, text string) Stream {
	return &geminiStream{iter: g.session.SendMessageStream(ctx, genai.Text(text))}
}

type geminiStream struct {
	iter *genai.GenerateContentResponseIterator
}

// Next returns the next text chunk, io.EOF once the reply is complete.
func (s *geminiStream) Next() (string, error) {
	for {
		resp, err := s.iter.Next()
		if errors.Is(err, iterator.Done) {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}

		text, err := extractTextFromResponse(resp)
		if err != nil {
			// A chunk without text parts (e.g., safety metadata only)
			// is skipped, not an error.
			continue
		}
		return text, nil
	}
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
