package mailer

import (
	"fmt"
	"net/mail"
	"strings"
)

// ParseAddressList validates a comma-separated address list and removes
// duplicates, preserving first-seen order.
func ParseAddressList(raw string) ([]string, error) {
	addrs, err := mail.ParseAddressList(raw)
	if err != nil {
		return nil, fmt.Errorf("parse address list %q: %w", raw, err)
	}

	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		key := strings.ToLower(a.Address)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a.Address)
	}
	return out, nil
}

// ParseAddress validates a single address and returns it in plain form.
func ParseAddress(raw string) (string, error) {
	a, err := mail.ParseAddress(raw)
	if err != nil {
		return "", fmt.Errorf("parse address %q: %w", raw, err)
	}
	return a.Address, nil
}
