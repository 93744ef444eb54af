package pricing

import (
	"errors"
	"fmt"
)

// UserError pairs a domain error with the message shown to the player.
type UserError struct {
	Err     error
	Message string
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func userError(err error, format string, args ...any) error {
	return &UserError{Err: err, Message: fmt.Sprintf(format, args...)}
}

// UserMessage returns the player-facing message carried by err, if any.
func UserMessage(err error) (string, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message, true
	}
	return "", false
}
