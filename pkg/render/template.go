package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/bulkmail/pkg/recipients"
)

// filters are the helper functions available inside template bodies and
// front matter values, e.g. {{.name | upper}}.
var filters = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
	"title": func(s string) string {
		return cases.Title(language.Und).String(s)
	},
	"replace": func(old, new, s string) string {
		return strings.ReplaceAll(s, old, new)
	},
	"default": func(def, s string) string {
		if s == "" {
			return def
		}
		return s
	},
}

var missingKeyPattern = regexp.MustCompile(`map has no entry for key "([^"]+)"`)

// Render substitutes context variables in a template body. Evaluation is
// strict: referencing a key absent from the context fails with
// ErrUndefinedVariable instead of producing an empty string.
func Render(body string, ctx recipients.Context) (string, error) {
	tmpl, err := template.New("body").
		Funcs(filters).
		Option("missingkey=error").
		Parse(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateSyntax, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		if m := missingKeyPattern.FindStringSubmatch(err.Error()); m != nil {
			return "", fmt.Errorf("%w: %s", ErrUndefinedVariable, m[1])
		}
		// Execution failures other than a missing key, such as a filter
		// called with the wrong argument type, also report as
		// ErrTemplateSyntax. Callers only distinguish undefined variables
		// from a broken template.
		return "", fmt.Errorf("%w: %v", ErrTemplateSyntax, err)
	}
	return buf.String(), nil
}
