package gemini

import (
	"context"
	"net/http"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// Keep function calling deterministic to reduce malformed arguments.
const GENERATION_TEMPERATURE = 0.2

// LLMClient adapts GeminiAPIClient to the domain.LLMClient interface.
type LLMClient struct {
	client GeminiAPIClient
}

// NewLLMClientAdapter creates a new adapter.
func NewLLMClientAdapter(client GeminiAPIClient) LLMClient {
	return LLMClient{client: client}
}

// GenerateContent implements domain.LLMClient.
func (a LLMClient) GenerateContent(ctx context.Context, conv domain.Conversation, tools []domain.LLMToolDefinition) (domain.ModelReply, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.GenerateContent(spanCtx, buildRequest(conv, tools))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelReply{}, err
	}

	reply := domain.ModelReply{}
	if resp.UsageMetadata != nil {
		reply.Usage = domain.LLMUsage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		err := domain.ErrMalformedLLMResponse
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ModelReply{}, err
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		if p.FunctionCall != nil && reply.FunctionCall == nil {
			reply.FunctionCall = &domain.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.Text != "" && reply.Text == "" {
			reply.Text = p.Text
		}
	}

	span.SetAttributes(
		attribute.Bool("llm.function_call", reply.FunctionCall != nil),
		attribute.Int("llm.total_tokens", reply.Usage.TotalTokens),
	)
	return reply, nil
}

func buildRequest(conv domain.Conversation, tools []domain.LLMToolDefinition) generateContentRequest {
	req := generateContentRequest{
		GenerationConfig: generationConfig{Temperature: GENERATION_TEMPERATURE},
	}

	if conv.SystemInstruction != "" {
		req.SystemInstruction = &content{
			Parts: []part{{Text: conv.SystemInstruction}},
		}
	}

	for _, turn := range conv.Turns {
		req.Contents = append(req.Contents, buildContent(turn))
	}

	if len(tools) > 0 {
		declarations := make([]functionDeclaration, len(tools))
		for i, def := range tools {
			declarations[i] = buildDeclaration(def)
		}
		req.Tools = []tool{{FunctionDeclarations: declarations}}
	}

	return req
}

func buildContent(turn domain.ChatTurn) content {
	switch {
	case turn.FunctionCall != nil:
		return content{
			Role: "model",
			Parts: []part{{FunctionCall: &functionCall{
				Name: turn.FunctionCall.Name,
				Args: turn.FunctionCall.Args,
			}}},
		}
	case turn.FunctionResult != nil:
		return content{
			Role: "function",
			Parts: []part{{FunctionResponse: &functionResponse{
				Name:     turn.FunctionResult.Name,
				Response: turn.FunctionResult.Content,
			}}},
		}
	default:
		role := "user"
		if turn.Role == domain.ChatRole_Model {
			role = "model"
		}
		return content{
			Role:  role,
			Parts: []part{{Text: turn.Text}},
		}
	}
}

func buildDeclaration(def domain.LLMToolDefinition) functionDeclaration {
	decl := functionDeclaration{
		Name:        def.Name,
		Description: def.Description,
	}

	if len(def.Parameters.Properties) == 0 {
		return decl
	}

	schema := &functionSchema{
		Type:       def.Parameters.Type,
		Properties: make(map[string]schemaProperty, len(def.Parameters.Properties)),
		Required:   def.Parameters.Required(),
	}
	for name, detail := range def.Parameters.Properties {
		schema.Properties[name] = schemaProperty{
			Type:        detail.Type,
			Description: detail.Description,
		}
	}
	decl.Parameters = schema
	return decl
}

// InitGeminiClient initializes the LLMClient dependency.
type InitGeminiClient struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	APIKey     string       `config:"GEMINI_API_KEY"`
	Model      string       `config:"GEMINI_MODEL" default:"gemini-2.0-flash"`
}

// Initialize registers the LLMClient.
func (i InitGeminiClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMClient](NewLLMClientAdapter(
		NewGeminiAPIClient(i.BaseURL, i.APIKey, i.Model, i.HttpClient),
	))
	return ctx, nil
}
