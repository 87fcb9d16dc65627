package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulkmail/pkg/mailer"
)

func TestParseAddressList_Deduplicates(t *testing.T) {
	t.Parallel()

	addrs, err := mailer.ParseAddressList("a@example.com, b@example.com, A@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, addrs)
}

func TestParseAddressList_NamedAddresses(t *testing.T) {
	t.Parallel()

	addrs, err := mailer.ParseAddressList("Ann <ann@example.com>")
	require.NoError(t, err)
	assert.Equal(t, []string{"ann@example.com"}, addrs)
}

func TestParseAddressList_Invalid(t *testing.T) {
	t.Parallel()

	_, err := mailer.ParseAddressList("not an address")
	require.Error(t, err)
}

func TestParseAddress_Single(t *testing.T) {
	t.Parallel()

	addr, err := mailer.ParseAddress("Team <team@example.com>")
	require.NoError(t, err)
	assert.Equal(t, "team@example.com", addr)
}
