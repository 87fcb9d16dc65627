package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulkmail/pkg/mailer"
	"github.com/dmitrymomot/bulkmail/pkg/recipients"
	"github.com/dmitrymomot/bulkmail/pkg/render"
)

func baseContext() recipients.Context {
	return recipients.Context{
		"sender":    "team@example.com",
		"from":      "team@example.com",
		"recipient": "ann@example.com",
		"to":        "ann@example.com",
		"subject":   "Hello",
		"name":      "Ann",
	}
}

func TestGenerate_MarkdownWithDefaultWrapper(t *testing.T) {
	t.Parallel()

	msg, err := mailer.Generate(mailer.Templates{
		Markdown: "**bold**\nline2",
	}, baseContext())
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, `<html dir="ltr">`)
	assert.Contains(t, msg.HTML, "</body></html>")
	assert.Contains(t, msg.HTML, "<strong>bold</strong>")
	assert.Contains(t, msg.HTML, "<br>", "single newline must render as a hard line break")
	assert.Equal(t, "team@example.com", msg.From)
	assert.Equal(t, []string{"ann@example.com"}, msg.To)
	assert.Equal(t, "Hello", msg.Subject)
	assert.NotEmpty(t, msg.Text, "text part must be derived from the HTML part")
}

func TestGenerate_MarkdownContentIntoExplicitHTML(t *testing.T) {
	t.Parallel()

	msg, err := mailer.Generate(mailer.Templates{
		Markdown: "Hello {{.name}}",
		HTML:     `<html><body><div class="wrap">{{.content}}</div></body></html>`,
	}, baseContext())
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, `<div class="wrap">`)
	assert.Contains(t, msg.HTML, "Hello Ann")
	assert.NotContains(t, msg.HTML, `dir="ltr"`, "default wrapper must not be used")
}

func TestGenerate_HTMLOnlyDerivesPlaintext(t *testing.T) {
	t.Parallel()

	msg, err := mailer.Generate(mailer.Templates{
		HTML: `<html><body><p>Hi {{.name}}</p><img src="logo.png" alt="Logo"></body></html>`,
	}, baseContext())
	require.NoError(t, err)

	assert.Contains(t, msg.Text, "Hi Ann")
	assert.NotContains(t, msg.Text, "logo.png")
	assert.NotContains(t, msg.Text, "Logo")
}

func TestGenerate_ExplicitPlaintextUsedVerbatim(t *testing.T) {
	t.Parallel()

	msg, err := mailer.Generate(mailer.Templates{
		HTML:      `<html><body><p>html part</p></body></html>`,
		Plaintext: "plain {{.name}}",
	}, baseContext())
	require.NoError(t, err)

	assert.Equal(t, "plain Ann", msg.Text)
}

func TestGenerate_PlaintextIndependentOfMarkdownMetadata(t *testing.T) {
	t.Parallel()

	// The plaintext document renders against the original context, so a
	// variable defined only in the Markdown front matter is undefined here.
	// This asymmetry is intentional.
	_, err := mailer.Generate(mailer.Templates{
		Markdown:  "---\ngreeting: Hi\n---\n{{.greeting}} {{.name}}",
		Plaintext: "{{.greeting}} {{.name}}",
	}, baseContext())
	require.Error(t, err)
	require.ErrorIs(t, err, render.ErrUndefinedVariable)
}

func TestGenerate_FrontmatterFromResolvesSender(t *testing.T) {
	t.Parallel()

	ctx := recipients.Context{
		"recipient": "ann@example.com",
		"to":        "ann@example.com",
	}
	msg, err := mailer.Generate(mailer.Templates{
		Markdown: "---\nfrom: a@b.com\n---\nbody",
	}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", msg.From)
}

func TestGenerate_PlaintextFrontmatterSenderFallback(t *testing.T) {
	t.Parallel()

	ctx := recipients.Context{
		"recipient": "ann@example.com",
		"to":        "ann@example.com",
	}
	msg, err := mailer.Generate(mailer.Templates{
		Plaintext: "---\nfrom: a@b.com\nsubject: Plain only\n---\nbody",
	}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", msg.From)
	assert.Equal(t, "Plain only", msg.Subject)
	assert.Equal(t, "body", msg.Text)
	assert.Empty(t, msg.HTML)
}

func TestGenerate_SubjectTemplatedFromCSVColumn(t *testing.T) {
	t.Parallel()

	ctx := baseContext()
	ctx["product"] = "Widget"

	msg, err := mailer.Generate(mailer.Templates{
		Markdown: "---\nsubject: Your {{.product}} is ready\n---\nbody",
	}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "Your Widget is ready", msg.Subject)
}

func TestGenerate_MissingSender(t *testing.T) {
	t.Parallel()

	ctx := recipients.Context{
		"recipient": "ann@example.com",
		"to":        "ann@example.com",
	}
	_, err := mailer.Generate(mailer.Templates{
		Markdown: "body without sender anywhere",
	}, ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, mailer.ErrMissingSender)
}

func TestGenerate_MissingRecipient(t *testing.T) {
	t.Parallel()

	ctx := recipients.Context{"sender": "team@example.com"}
	_, err := mailer.Generate(mailer.Templates{
		Markdown: "body",
	}, ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, mailer.ErrNoRecipient)
}

func TestGenerate_MetadataOnlyDocument(t *testing.T) {
	t.Parallel()

	ctx := recipients.Context{
		"sender":    "team@example.com",
		"recipient": "ann@example.com",
	}
	msg, err := mailer.Generate(mailer.Templates{
		Plaintext: "---\nsubject: Meta only\n---\n",
	}, ctx)
	require.NoError(t, err)
	assert.Empty(t, msg.Text)
	assert.Equal(t, "Meta only", msg.Subject)
}

func TestGenerate_UndefinedVariableInBody(t *testing.T) {
	t.Parallel()

	_, err := mailer.Generate(mailer.Templates{
		Markdown: "Hi {{.missing}}",
	}, baseContext())
	require.Error(t, err)
	require.ErrorIs(t, err, render.ErrUndefinedVariable)
}
