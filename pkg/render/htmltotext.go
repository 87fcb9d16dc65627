package render

import (
	"fmt"

	"github.com/jaytaylor/html2text"
)

// HTMLToText derives a plaintext approximation of an HTML body. Embedded
// images are dropped. Used when no explicit plaintext template is supplied.
func HTMLToText(body string) (string, error) {
	text, err := html2text.FromString(body)
	if err != nil {
		return "", fmt.Errorf("convert html to text: %w", err)
	}
	return text, nil
}
