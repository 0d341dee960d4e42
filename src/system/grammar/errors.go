package grammar

import "errors"

// All derivation failures are terminal, the engine never retries on its
// own. A caller wanting another attempt has to build a fresh workspace.
var (
	ErrNoValidOperations   = errors.New("no valid operations available")
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
	ErrFeatureMismatch     = errors.New("feature mismatch")
	ErrEmptyWorkspace      = errors.New("empty workspace")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrUnknownToken        = errors.New("unknown token")
)

// UnknownTokenError carries the offending token, it unwraps to
// ErrUnknownToken so callers can errors.Is against the sentinel.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return "unknown token: " + e.Token
}

func (e *UnknownTokenError) Unwrap() error {
	return ErrUnknownToken
}
