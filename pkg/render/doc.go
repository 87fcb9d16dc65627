// Package render implements the template pipeline for bulk mail generation.
//
// A template document is an optional YAML front matter block followed by a
// plaintext, Markdown or HTML body:
//
//	---
//	subject: News for {{.first_name}}
//	from: team@example.com
//	---
//	Hello {{.first_name}},
//	...
//
// SplitDocument separates metadata from body and merges it over the
// per-recipient context, Render substitutes variables in strict mode (an
// unknown variable is an error, never an empty string), MarkdownToHTML and
// HTMLToText convert between body representations.
package render
