package mailer

import (
	"fmt"
	"os"
)

// Message represents a fully-assembled email ready for delivery.
type Message struct {
	From    string   // Sender address
	To      []string // Recipients (at least one required)
	Subject string   // Subject line
	HTML    string   // HTML body (optional)
	Text    string   // Plain text alternative (optional)
}

// Templates holds the contents of the up to three template documents. Empty
// fields mean the corresponding document was not supplied.
type Templates struct {
	Plaintext string
	Markdown  string
	HTML      string
}

// TemplatesFromFiles reads template documents from disk. Empty paths leave
// the corresponding document empty.
func TemplatesFromFiles(plaintextPath, markdownPath, htmlPath string) (Templates, error) {
	read := func(path string) (string, error) {
		if path == "" {
			return "", nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		return string(content), nil
	}

	var t Templates
	var err error
	if t.Plaintext, err = read(plaintextPath); err != nil {
		return Templates{}, err
	}
	if t.Markdown, err = read(markdownPath); err != nil {
		return Templates{}, err
	}
	if t.HTML, err = read(htmlPath); err != nil {
		return Templates{}, err
	}
	return t, nil
}
