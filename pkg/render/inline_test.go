package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulkmail/pkg/render"
)

func TestInlineCSS_RuleBecomesStyleAttribute(t *testing.T) {
	t.Parallel()

	doc := `<html><head></head><body><p>Hello Ann</p></body></html>`
	out, err := render.InlineCSS(doc, "p { color:red }")
	require.NoError(t, err)
	assert.Contains(t, out, `style="color:red`)
	assert.Contains(t, out, "Hello Ann")
}

func TestInlineCSS_DocumentWithoutHead(t *testing.T) {
	t.Parallel()

	out, err := render.InlineCSS("<p>plain fragment</p>", "p { color:red }")
	require.NoError(t, err)
	assert.Contains(t, out, `style="color:red`)
}
