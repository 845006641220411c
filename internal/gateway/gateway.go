// Package gateway constructs requests for the generative model, decodes
// and validates its responses, and maps failures to typed errors. It is
// the only component that produces user-facing error text for model calls.
package gateway

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/rithwika/career-advisor/internal/llm"
	"github.com/rithwika/career-advisor/internal/prompts"
	"github.com/rithwika/career-advisor/internal/schemas"
	"github.com/rithwika/career-advisor/internal/types"
)

// Gateway wraps the model client with the career-advisory contract.
type Gateway struct {
	client llm.Client
}

// New creates a gateway over the given model client.
func New(client llm.Client) *Gateway {
	return &Gateway{client: client}
}

// AnalyzeProfile runs the career analysis for the given input variant.
// The returned AnalysisResult has passed schema validation; any failure
// (transport, parse, or schema) comes back as *AnalysisError with the
// cause logged, not surfaced.
func (g *Gateway) AnalyzeProfile(ctx context.Context, input ProfileInput) (*types.AnalysisResult, error) {
	if input.empty() {
		return nil, &PreconditionError{
			Op:      "analyze profile",
			Message: "no resume text, document, or skills supplied",
		}
	}

	prompt := prompts.Format(
		prompts.MustGet("advisor.json", "analyze-profile"),
		map[string]string{"InputDescription": input.description()},
	)

	responseText, err := g.client.GenerateJSON(ctx, llm.JSONRequest{
		Parts:       input.parts(prompt),
		Schema:      analysisResponseSchema(),
		Temperature: llm.AnalysisTemperature,
	})
	if err != nil {
		log.Printf("analysis transport call failed: %v", err)
		return nil, &AnalysisError{Cause: err}
	}

	result, err := schemas.DecodeAnalysisResult(responseText)
	if err != nil {
		log.Printf("analysis response rejected by validator: %v", err)
		return nil, &AnalysisError{Cause: err}
	}

	return result, nil
}

// MarketInsights fetches a market snapshot for a domain. The domain
// comes from a completed analysis; an empty domain fails fast with no
// network call.
func (g *Gateway) MarketInsights(ctx context.Context, domain string) (*types.MarketInsights, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, &PreconditionError{
			Op:      "market insights",
			Message: "domain is empty; run an analysis first",
		}
	}

	prompt := prompts.Format(
		prompts.MustGet("advisor.json", "market-insights"),
		map[string]string{"Domain": domain},
	)

	responseText, err := g.client.GenerateJSON(ctx, llm.JSONRequest{
		Parts:       []genai.Part{genai.Text(prompt)},
		Schema:      insightsResponseSchema(),
		Temperature: llm.InsightsTemperature,
	})
	if err != nil {
		log.Printf("insights transport call failed: %v", err)
		return nil, &InsightsError{Cause: err}
	}

	insights, err := schemas.DecodeMarketInsights(responseText)
	if err != nil {
		log.Printf("insights response rejected by validator: %v", err)
		return nil, &InsightsError{Cause: err}
	}

	return insights, nil
}

// NewConversation opens a chat session scoped to one analysis result.
// The system instruction serializes the analysis so the model answers
// in the context of that specific run.
func (g *Gateway) NewConversation(result *types.AnalysisResult) llm.Chat {
	contextJSON, err := json.Marshal(result)
	if err != nil {
		// AnalysisResult is plain data; marshal cannot realistically fail.
		contextJSON = []byte("{}")
	}

	systemInstruction := prompts.Format(
		prompts.MustGet("chat.json", "system-instruction"),
		map[string]string{"AnalysisJSON": string(contextJSON)},
	)

	return g.client.StartChat(systemInstruction)
}
