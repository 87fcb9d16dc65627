package recipients

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

// recipientColumns are the header names recognized as the email column,
// checked in order after normalization.
var recipientColumns = []string{"mail", "e_mail", "email", "to"}

// Context holds the per-recipient template variables assembled from a CSV
// row, the detected recipient column and caller-level defaults.
type Context map[string]string

// Clone returns a shallow copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	maps.Copy(out, c)
	return out
}

// Source describes a single CSV input file.
type Source struct {
	Path      string
	Delimiter rune // defaults to ','
	SkipRows  int  // leading rows to discard before the header
}

// Defaults are caller-level values copied into every context unless a
// template document overrides them later.
type Defaults struct {
	Sender  string
	Subject string
}

// Load reads all sources and returns one context per data row, concatenated
// in source order. Rows shorter than the header simply leave the missing
// keys unset; extra cells beyond the header are ignored.
func Load(sources []Source, defaults Defaults) ([]Context, error) {
	var contexts []Context
	for _, src := range sources {
		recs, err := loadSource(src, defaults)
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, recs...)
	}
	return contexts, nil
}

func loadSource(src Source, defaults Defaults) ([]Context, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if src.Delimiter != 0 {
		r.Comma = src.Delimiter
	}
	r.FieldsPerRecord = -1

	for range src.SkipRows {
		if _, err := r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("read %s: %w", src.Path, err)
		}
	}

	headerRow, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", src.Path, err)
	}

	header := make([]string, len(headerRow))
	for i, cell := range headerRow {
		h := NormalizeHeader(cell)
		if h == "" {
			return nil, fmt.Errorf("%w: %s, column %d", ErrMissingHeader, src.Path, i+1)
		}
		header[i] = h
	}

	recipientIdx := -1
	for _, name := range recipientColumns {
		if idx := slices.Index(header, name); idx != -1 {
			recipientIdx = idx
			break
		}
	}
	if recipientIdx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRecipientColumn, src.Path)
	}

	var contexts []Context
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src.Path, err)
		}

		ctx := make(Context, len(header)+4)
		for i, val := range row {
			if i < len(header) {
				ctx[header[i]] = val
			}
		}
		if defaults.Sender != "" {
			ctx["from"] = defaults.Sender
			ctx["sender"] = defaults.Sender
		}
		if defaults.Subject != "" {
			ctx["subject"] = defaults.Subject
		}
		if recipientIdx < len(row) {
			ctx["recipient"] = row[recipientIdx]
			ctx["to"] = row[recipientIdx]
		}
		contexts = append(contexts, ctx)
	}
	return contexts, nil
}

// NormalizeHeader turns a CSV header cell into a template identifier:
// lowercased, characters outside [0-9a-z_] replaced with '_', leading
// characters that cannot start an identifier stripped. Idempotent.
func NormalizeHeader(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isIdentRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	i := 0
	for i < len(out) && !isIdentStart(rune(out[i])) {
		i++
	}
	return out[i:]
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z')
}
