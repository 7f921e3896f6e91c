package domain

import "context"

// ModelReply is the first content part of the first candidate returned by
// the LLM endpoint: either plain text or a function call.
type ModelReply struct {
	Text         string
	FunctionCall *FunctionCall
	Usage        LLMUsage
}

// LLMUsage contains token usage information.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMClient defines the interface for interacting with the LLM API.
type LLMClient interface {
	// GenerateContent sends the conversation with the available tool
	// declarations and returns the model's reply. Non-2xx responses surface
	// as *LLMAPIErr; a response without the expected candidate shape
	// surfaces as ErrMalformedLLMResponse.
	GenerateContent(ctx context.Context, conv Conversation, tools []LLMToolDefinition) (ModelReply, error)
}
