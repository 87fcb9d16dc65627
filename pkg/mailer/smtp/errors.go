package smtp

import (
	"errors"
	"net"
	"strings"

	mail "github.com/wneessen/go-mail"
)

var (
	// ErrAuthentication indicates the server rejected the credentials.
	ErrAuthentication = errors.New("smtp authentication failed")

	// ErrConnection indicates the server could not be reached or dropped the session.
	ErrConnection = errors.New("smtp connection failed")
)

// classify maps transport failures onto the package sentinels so callers can
// distinguish bad credentials from an unreachable or disconnected server.
func classify(err error) error {
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.Reason == mail.ErrConnCheck {
		return errors.Join(ErrConnection, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Join(ErrConnection, err)
	}
	if strings.Contains(strings.ToLower(err.Error()), "auth") {
		return errors.Join(ErrAuthentication, err)
	}
	return errors.Join(ErrConnection, err)
}
