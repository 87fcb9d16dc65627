package render

import "errors"

var (
	// ErrUndefinedVariable indicates a template referenced a context key that is not set.
	ErrUndefinedVariable = errors.New("undefined template variable")

	// ErrTemplateSyntax indicates the template could not be parsed or executed.
	ErrTemplateSyntax = errors.New("template syntax error")

	// ErrInvalidFrontmatter indicates a malformed YAML front matter block.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
