package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// AssistantTurn defines the interface for a single assistant exchange.
type AssistantTurn interface {
	// Execute runs one user prompt through the model, executing at most one
	// tool round, and returns the model's markdown answer.
	Execute(ctx context.Context, req domain.ChatRequest) (string, error)
}

// AssistantTurnImpl is the implementation of the AssistantTurn use case.
type AssistantTurnImpl struct {
	llmClient    domain.LLMClient
	toolRegistry domain.LLMToolRegistry
	systemPrompt SystemPrompt
	logger       *log.Logger
}

// NewAssistantTurnImpl creates a new instance of AssistantTurnImpl.
func NewAssistantTurnImpl(
	llmClient domain.LLMClient,
	toolRegistry domain.LLMToolRegistry,
	systemPrompt SystemPrompt,
	logger *log.Logger,
) AssistantTurnImpl {
	return AssistantTurnImpl{
		llmClient:    llmClient,
		toolRegistry: toolRegistry,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Execute runs the two-phase exchange: a first generation that may request a
// tool call, then, if one was executed, a single follow-up generation with the
// tool result appended. The model never gets a second tool round.
func (at AssistantTurnImpl) Execute(ctx context.Context, req domain.ChatRequest) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(req.Prompt) == "" {
		return "", domain.NewValidationErr("prompt cannot be empty")
	}

	conversation := domain.Conversation{
		SystemInstruction: at.systemPrompt.ForUser(req.DisplayName),
	}
	conversation.AppendUserText(req.Prompt)

	tools := at.toolRegistry.List()

	reply, err := at.llmClient.GenerateContent(spanCtx, conversation, tools)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	RecordLLMTokensUsed(spanCtx, reply.Usage.PromptTokens, reply.Usage.CompletionTokens)

	if reply.FunctionCall != nil {
		call := *reply.FunctionCall
		span.SetAttributes(attribute.String("assistant.function_call", call.Name))

		if at.toolRegistry.RequiresOwnerContext(call.Name) && !req.HasOwnerContext() {
			at.logger.Printf("assistant: skipping tool %s: request carries no owner context", call.Name)
		} else {
			result := at.toolRegistry.Call(spanCtx, req, call)

			conversation.AppendFunctionCall(call)
			conversation.AppendFunctionResult(domain.FunctionResult{
				Name:    call.Name,
				Content: result,
			})

			reply, err = at.llmClient.GenerateContent(spanCtx, conversation, tools)
			if telemetry.RecordErrorAndStatus(span, err) {
				return "", err
			}
			RecordLLMTokensUsed(spanCtx, reply.Usage.PromptTokens, reply.Usage.CompletionTokens)
		}
	}

	text := strings.TrimSpace(reply.Text)
	if text == "" {
		err := domain.ErrMalformedLLMResponse
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	span.SetAttributes(attribute.Int("assistant.reply_chars", len(text)))
	return text, nil
}

// InitAssistantTurn initializes the AssistantTurn use case and registers it
// in the dependency container.
type InitAssistantTurn struct {
	LLMClient    domain.LLMClient       `resolve:""`
	ToolRegistry domain.LLMToolRegistry `resolve:""`
	SystemPrompt SystemPrompt           `resolve:""`
	Logger       *log.Logger            `resolve:""`
}

// Initialize initializes the AssistantTurnImpl use case and registers it in
// the dependency container.
func (iat InitAssistantTurn) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AssistantTurn](NewAssistantTurnImpl(
		iat.LLMClient,
		iat.ToolRegistry,
		iat.SystemPrompt,
		iat.Logger,
	))
	return ctx, nil
}
