package recipients

import "errors"

var (
	// ErrMissingHeader indicates a CSV header cell normalized to an empty identifier.
	ErrMissingHeader = errors.New("csv header contains an empty column name")

	// ErrMissingRecipientColumn indicates no recognized email column was found.
	ErrMissingRecipientColumn = errors.New("csv header has no email column (mail, e_mail, email or to)")
)
