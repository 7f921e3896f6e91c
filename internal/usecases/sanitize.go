package usecases

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// ReplySanitizer converts the assistant's markdown answer into an HTML
// fragment restricted to a small allow-listed tag set with no attributes.
// Deterministic and side-effect free.
type ReplySanitizer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewReplySanitizer creates a new ReplySanitizer.
func NewReplySanitizer() ReplySanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements(
		"p", "br",
		"em", "strong",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4",
	)

	return ReplySanitizer{
		md: goldmark.New(
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: policy,
	}
}

// Sanitize renders the markdown to HTML and strips everything outside the
// allow-list.
func (rs ReplySanitizer) Sanitize(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := rs.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return strings.TrimSpace(rs.policy.Sanitize(buf.String())), nil
}

// InitReplySanitizer registers the ReplySanitizer in the dependency container.
type InitReplySanitizer struct{}

// Initialize registers the ReplySanitizer in the dependency container.
func (irs InitReplySanitizer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewReplySanitizer())
	return ctx, nil
}
