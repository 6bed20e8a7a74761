package mirror

import "errors"

var (
	// ErrUnavailable means the mirror could not be reached or answered
	// with a server error. Queued operations stay put and are retried.
	ErrUnavailable = errors.New("remote mirror unavailable")
	// ErrUnauthorized means the mirror rejected our credentials. Also
	// retried, so that a token refresh unblocks the queue, but surfaced
	// separately in status output.
	ErrUnauthorized = errors.New("remote mirror rejected credentials")
)
