package render

import (
	"bytes"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/bulkmail/pkg/recipients"
)

// Document is a template document split into front matter metadata and body.
type Document struct {
	Metadata map[string]any
	Body     string
}

// SplitDocument separates the front matter block from the body and extends
// the base context with the metadata. String-valued metadata entries are
// themselves rendered against the base context, so a subject line can
// reference CSV columns. On key conflicts the metadata wins. A `from` key
// doubles as `sender` unless `sender` is set explicitly.
func SplitDocument(doc string, base recipients.Context) (string, recipients.Context, error) {
	if doc == "" {
		return "", base, nil
	}

	parsed, err := parseFrontmatter([]byte(doc))
	if err != nil {
		return "", nil, err
	}

	meta := make(map[string]string, len(parsed.Metadata))
	for key, val := range parsed.Metadata {
		if s, ok := val.(string); ok {
			rendered, err := Render(s, base)
			if err != nil {
				return "", nil, fmt.Errorf("frontmatter key %q: %w", key, err)
			}
			meta[key] = rendered
			continue
		}
		meta[key] = fmt.Sprint(val)
	}
	if from, ok := meta["from"]; ok {
		if _, ok := meta["sender"]; !ok {
			meta["sender"] = from
		}
	}

	extended := base.Clone()
	maps.Copy(extended, recipients.Context(meta))
	return parsed.Body, extended, nil
}

// parseFrontmatter extracts a leading "---" delimited YAML block. Content
// without an opening delimiter is returned unchanged with empty metadata.
func parseFrontmatter(content []byte) (*Document, error) {
	delimiter := []byte("---")

	if !bytes.HasPrefix(content, delimiter) {
		return &Document{
			Metadata: make(map[string]any),
			Body:     string(content),
		}, nil
	}

	afterFirst := bytes.TrimPrefix(content, delimiter)
	afterFirst = bytes.TrimLeft(afterFirst, "\n\r")

	if len(afterFirst) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	endIdx := bytes.Index(afterFirst, delimiter)
	if endIdx == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	frontmatterBytes := afterFirst[:endIdx]
	bodyStart := endIdx + len(delimiter)
	// Skip one newline after the closing delimiter (handles both \r\n and \n).
	if bodyStart < len(afterFirst) {
		if afterFirst[bodyStart] == '\r' && bodyStart+1 < len(afterFirst) && afterFirst[bodyStart+1] == '\n' {
			bodyStart += 2
		} else if afterFirst[bodyStart] == '\n' {
			bodyStart++
		}
	}
	body := afterFirst[bodyStart:]

	var metadata map[string]any
	if len(bytes.TrimSpace(frontmatterBytes)) > 0 {
		if err := yaml.Unmarshal(frontmatterBytes, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Document{
		Metadata: metadata,
		Body:     string(body),
	}, nil
}
