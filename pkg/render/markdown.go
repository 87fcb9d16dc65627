package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown is configured for email output fidelity: raw HTML embedded in the
// Markdown passes through unescaped, and a single newline becomes a hard
// line break. Both options differ from goldmark defaults and are required
// for generated mails to match the authored templates.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
		html.WithHardWraps(),
	),
)

// MarkdownToHTML converts a Markdown body into an HTML fragment.
func MarkdownToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
