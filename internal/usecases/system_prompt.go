package usecases

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/assistant.yml
var assistantPrompt embed.FS

// displayNamePlaceholder is the token in the system prompt replaced with the
// caller's display name on every request.
const displayNamePlaceholder = "[사용자 이름]"

// SystemPrompt is the assistant's system instruction, loaded once at startup
// and treated as immutable for the process lifetime.
type SystemPrompt string

// ForUser substitutes the display-name placeholder. A plain string replace,
// not a templating engine.
func (p SystemPrompt) ForUser(displayName string) string {
	if displayName == "" {
		displayName = "사용자"
	}
	return strings.ReplaceAll(string(p), displayNamePlaceholder, displayName)
}

type promptFile struct {
	System string `yaml:"system"`
}

// loadSystemPrompt reads the prompt yaml from the given path, or from the
// embedded default when path is empty.
func loadSystemPrompt(path string) (SystemPrompt, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = assistantPrompt.ReadFile("prompts/assistant.yml")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read system prompt: %w", err)
	}

	var pf promptFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return "", fmt.Errorf("failed to decode system prompt: %w", err)
	}
	if strings.TrimSpace(pf.System) == "" {
		return "", fmt.Errorf("system prompt is empty")
	}

	return SystemPrompt(pf.System), nil
}

// InitSystemPrompt loads the system prompt at startup and registers it in
// the dependency container.
type InitSystemPrompt struct {
	Path string `config:"SYSTEM_PROMPT_PATH" default:"-"`
}

// Initialize loads and registers the system prompt.
func (isp InitSystemPrompt) Initialize(ctx context.Context) (context.Context, error) {
	path := isp.Path
	if path == "-" {
		path = ""
	}

	prompt, err := loadSystemPrompt(path)
	if err != nil {
		return ctx, err
	}

	depend.Register(prompt)
	return ctx, nil
}
