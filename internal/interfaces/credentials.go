package interfaces

import (
	"context"
	"errors"
)

// ErrReconnectRequired signals that no valid bearer credential is held, or
// that the remote API rejected the one we had. Callers surface this to the
// user as "reconnect the board account"; nothing retries the handshake
// automatically.
var ErrReconnectRequired = errors.New("board connection required: credential missing or rejected")

// CredentialStore holds the single bearer credential used for all remote
// canvas calls. Implementations must be safe for concurrent use; Invalidate
// is idempotent so concurrent 401 observers don't trample each other.
type CredentialStore interface {
	// Connected reports whether a credential is currently held.
	Connected() bool

	// Token returns the bearer token, or ErrReconnectRequired if no
	// credential is held.
	Token() (string, error)

	// Store saves a new bearer credential, replacing any previous one.
	Store(ctx context.Context, accessToken, baseURL string) error

	// Invalidate discards the held credential. Called when the remote API
	// answers with a 401-equivalent.
	Invalidate(ctx context.Context) error
}
