package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a malformed or missing form field. Key names the
// translation of the message.
type ValidationError struct {
	Field string
	Key   string
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid field %s: %s %s", e.Field, e.Key, e.Param)
	}
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Key)
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
