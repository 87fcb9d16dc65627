package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulkmail/pkg/recipients"
	"github.com/dmitrymomot/bulkmail/pkg/render"
)

func TestSplitDocument_EmptyDocument(t *testing.T) {
	t.Parallel()

	base := recipients.Context{"name": "Ann"}
	body, extended, err := render.SplitDocument("", base)
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.Equal(t, base, extended)
}

func TestSplitDocument_NoFrontmatter(t *testing.T) {
	t.Parallel()

	body, extended, err := render.SplitDocument("Hello {{.name}}", recipients.Context{"name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "Hello {{.name}}", body)
	assert.Equal(t, "Ann", extended["name"])
}

func TestSplitDocument_MetadataMergedOverBase(t *testing.T) {
	t.Parallel()

	doc := "---\nsubject: Offer\ncity: Berlin\n---\nbody"
	base := recipients.Context{"subject": "Old", "name": "Ann"}

	body, extended, err := render.SplitDocument(doc, base)
	require.NoError(t, err)
	assert.Equal(t, "body", body)
	assert.Equal(t, "Offer", extended["subject"], "metadata wins on conflict")
	assert.Equal(t, "Berlin", extended["city"])
	assert.Equal(t, "Ann", extended["name"])
}

func TestSplitDocument_MetadataRenderedAgainstContext(t *testing.T) {
	t.Parallel()

	doc := "---\nsubject: News for {{.first_name}}\n---\nbody"
	base := recipients.Context{"first_name": "Ann"}

	_, extended, err := render.SplitDocument(doc, base)
	require.NoError(t, err)
	assert.Equal(t, "News for Ann", extended["subject"])
}

func TestSplitDocument_MetadataUndefinedVariable(t *testing.T) {
	t.Parallel()

	doc := "---\nsubject: News for {{.missing}}\n---\nbody"

	_, _, err := render.SplitDocument(doc, recipients.Context{})
	require.Error(t, err)
	require.ErrorIs(t, err, render.ErrUndefinedVariable)
}

func TestSplitDocument_FromAliasesSender(t *testing.T) {
	t.Parallel()

	doc := "---\nfrom: a@b.com\n---\nbody"

	_, extended, err := render.SplitDocument(doc, recipients.Context{})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", extended["sender"])
	assert.Equal(t, "a@b.com", extended["from"])
}

func TestSplitDocument_ExplicitSenderNotOverridden(t *testing.T) {
	t.Parallel()

	doc := "---\nfrom: a@b.com\nsender: c@d.com\n---\nbody"

	_, extended, err := render.SplitDocument(doc, recipients.Context{})
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", extended["sender"])
}

func TestSplitDocument_NonStringScalar(t *testing.T) {
	t.Parallel()

	doc := "---\npriority: 1\n---\nbody"

	_, extended, err := render.SplitDocument(doc, recipients.Context{})
	require.NoError(t, err)
	assert.Equal(t, "1", extended["priority"])
}

func TestSplitDocument_MetadataOnlyDocument(t *testing.T) {
	t.Parallel()

	doc := "---\nsubject: Offer\n---\n"

	body, extended, err := render.SplitDocument(doc, recipients.Context{})
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.Equal(t, "Offer", extended["subject"])
}

func TestSplitDocument_MissingClosingDelimiter(t *testing.T) {
	t.Parallel()

	doc := "---\nsubject: Offer\nno closing"

	_, _, err := render.SplitDocument(doc, recipients.Context{})
	require.Error(t, err)
	require.ErrorIs(t, err, render.ErrInvalidFrontmatter)
}

func TestSplitDocument_BaseContextNotMutated(t *testing.T) {
	t.Parallel()

	base := recipients.Context{"name": "Ann"}
	_, _, err := render.SplitDocument("---\nsubject: x\n---\nbody", base)
	require.NoError(t, err)
	_, ok := base["subject"]
	assert.False(t, ok, "base context must stay untouched")
}
