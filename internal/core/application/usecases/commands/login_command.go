package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrLoginCommandIsNotConstructed is returned by Validate on a zero value.
var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand carries the credentials of a login attempt.
//
// Example:
//
//	cmd, err := NewLoginCommand("clerk-1", password)
//	if err != nil {
//	    return err
//	}
//	sessionID, err := handler.Handle(ctx, cmd)
type LoginCommand struct { //nolint:recvcheck //using for validation
	userID   string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command. Both userID and password are
// required; every missing field is reported in the joined error.
func NewLoginCommand(userID, password string) (LoginCommand, error) {
	var errList []error
	if userID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("userID"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginCommand{}, err
	}
	return LoginCommand{userID: userID, password: password, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// UserID returns the account to log in.
func (c LoginCommand) UserID() string {
	return c.userID
}

// Password returns the plain text password to verify.
func (c LoginCommand) Password() string {
	return c.password
}
