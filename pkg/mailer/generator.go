package mailer

import (
	"github.com/dmitrymomot/bulkmail/pkg/recipients"
	"github.com/dmitrymomot/bulkmail/pkg/render"
)

// DefaultHTMLTemplate wraps Markdown-derived content when no explicit HTML
// document is supplied.
const DefaultHTMLTemplate = `<html dir="ltr"><head></head><body style="text-align:left; direction:ltr;">{{.content}}</body></html>`

// Generate assembles one message from the template documents and a recipient
// context. See the package documentation for the fallback rules.
func Generate(tpls Templates, ctx recipients.Context) (*Message, error) {
	extended := ctx.Clone()
	htmlDocument := tpls.HTML

	if tpls.Markdown != "" {
		body, ext, err := render.SplitDocument(tpls.Markdown, ctx)
		if err != nil {
			return nil, err
		}
		rendered, err := render.Render(body, ext)
		if err != nil {
			return nil, err
		}
		content, err := render.MarkdownToHTML(rendered)
		if err != nil {
			return nil, err
		}
		ext["content"] = content
		extended = ext
		if htmlDocument == "" {
			htmlDocument = DefaultHTMLTemplate
		}
	}

	var htmlPart string
	if htmlDocument != "" {
		body, ext, err := render.SplitDocument(htmlDocument, extended)
		if err != nil {
			return nil, err
		}
		if htmlPart, err = render.Render(body, ext); err != nil {
			return nil, err
		}
		extended = ext
	}

	sender := extended["sender"]
	recipient := extended["recipient"]
	subject := extended["subject"]

	var textPart string
	if tpls.Plaintext != "" {
		// The plaintext document is resolved against the original context on
		// purpose: the text alternative stays independent of metadata
		// introduced by the Markdown or HTML documents.
		body, ext, err := render.SplitDocument(tpls.Plaintext, ctx)
		if err != nil {
			return nil, err
		}
		if textPart, err = render.Render(body, ext); err != nil {
			return nil, err
		}
		extended = ext
	} else {
		var err error
		if textPart, err = render.HTMLToText(htmlPart); err != nil {
			return nil, err
		}
	}

	if sender == "" {
		sender = extended["sender"]
	}
	if recipient == "" {
		recipient = extended["recipient"]
	}
	if subject == "" {
		subject = extended["subject"]
	}
	if sender == "" {
		return nil, ErrMissingSender
	}
	if recipient == "" {
		return nil, ErrNoRecipient
	}

	return &Message{
		From:    sender,
		To:      []string{recipient},
		Subject: subject,
		HTML:    htmlPart,
		Text:    textPart,
	}, nil
}
