package users

import (
	"fmt"

	"github.com/dmitrijs2005/userholder/internal/common"
)

// ValidationError reports rejected input. Field is a stable logical name
// ("firstName", "phone", "hash", ...). It unwraps to common.ErrValidation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e ValidationError) Unwrap() error { return common.ErrValidation }

// DuplicateUserError reports that a login is already registered.
// It unwraps to common.ErrAlreadyExists.
type DuplicateUserError struct {
	Login string
}

func (e DuplicateUserError) Error() string {
	return fmt.Sprintf("a user with login %q already exists", e.Login)
}

func (e DuplicateUserError) Unwrap() error { return common.ErrAlreadyExists }

func invalid(field, msg string) error {
	return ValidationError{Field: field, Msg: msg}
}
