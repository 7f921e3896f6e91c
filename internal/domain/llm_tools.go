package domain

import (
	"context"
	"sort"
)

// LLMTool represents a tool that can be executed on behalf of the LLM.
type LLMTool interface {
	// Definition returns the LLMTool declaration handed to the LLM.
	Definition() LLMToolDefinition
	// Mutating reports whether the tool writes through to storage and
	// therefore requires the caller's owner context.
	Mutating() bool
	// Call executes the tool with the given request context and arguments.
	// The returned content is always a well-formed JSON-serializable object,
	// never an error.
	Call(ctx context.Context, req ChatRequest, args map[string]any) map[string]any
}

// LLMToolRegistry defines the interface for calling registered LLM tools.
type LLMToolRegistry interface {
	// Call executes the named tool. Unknown names yield an error-shaped result.
	Call(ctx context.Context, req ChatRequest, call FunctionCall) map[string]any
	// RequiresOwnerContext reports whether the named tool is mutating.
	RequiresOwnerContext(name string) bool
	// List returns all registered tool declarations.
	List() []LLMToolDefinition
}

// LLMToolDefinition represents a tool that can be used by the LLM.
type LLMToolDefinition struct {
	Name        string
	Description string
	Parameters  LLMToolParameters
}

// LLMToolParameters represents the parameters schema for a function tool.
type LLMToolParameters struct {
	Type       string
	Properties map[string]LLMToolParameterDetail
}

// LLMToolParameterDetail represents a single parameter in the function tool schema.
type LLMToolParameterDetail struct {
	Type        string
	Description string
	Required    bool
}

// Required returns the names of the required parameters, for APIs that
// expect a required list instead of a per-property flag.
func (p LLMToolParameters) Required() []string {
	var required []string
	for name, detail := range p.Properties {
		if detail.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)
	return required
}
