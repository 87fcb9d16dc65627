package render

import (
	"fmt"
	"strings"

	"github.com/vanng822/go-premailer/premailer"
)

// InlineCSS injects a stylesheet into an HTML document and inlines all rules
// into style attributes. Mail clients widely ignore <style> blocks, so
// inlining is the only reliable way to style generated mails.
func InlineCSS(doc, css string) (string, error) {
	if css != "" {
		style := "<style>" + css + "</style>"
		if idx := strings.Index(doc, "</head>"); idx != -1 {
			doc = doc[:idx] + style + doc[idx:]
		} else {
			doc = style + doc
		}
	}

	prem, err := premailer.NewPremailerFromString(doc, premailer.NewOptions())
	if err != nil {
		return "", fmt.Errorf("inline css: %w", err)
	}
	out, err := prem.Transform()
	if err != nil {
		return "", fmt.Errorf("inline css: %w", err)
	}
	return out, nil
}
