package instrument

import (
	"errors"
	"net"
	"syscall"
)

// ErrConnectFailure marks an error as a connection-level failure for
// counter classification. Units of work may wrap it when a transport
// library reports connection problems in its own vocabulary.
var ErrConnectFailure = errors.New("instrument: could not establish connection")

// IsConnectFailure reports whether the root cause of err is a failure
// to establish a network connection. It recognizes the ErrConnectFailure
// sentinel, dial-phase *net.OpError values, and the usual syscall
// errnos surfaced by refused or reset connections.
func IsConnectFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConnectFailure) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	return false
}
