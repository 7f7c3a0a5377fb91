package quote

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID has no live draft,
// either because it never existed or because the TTL expired.
var ErrSessionNotFound = errors.New("quote session not found or expired")

// FlowError is a user-input rejection: the action was understood but is not
// legal for the current draft. The draft is guaranteed unchanged.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFlowError(code, msg string) error {
	return &FlowError{
		Code:    code,
		Message: msg,
	}
}

// IsFlowError reports whether err is a user-input rejection.
func IsFlowError(err error) bool {
	var fe *FlowError
	return errors.As(err, &fe)
}
