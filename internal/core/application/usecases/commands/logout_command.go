package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrLogoutCommandIsNotConstructed is returned by Validate on a zero value.
var ErrLogoutCommandIsNotConstructed = errors.New("LogoutCommand must be created via NewLogoutCommand constructor")

// LogoutCommand ends the session that issued the request.
//
// Example:
//
//	cmd, err := NewLogoutCommand(sessionID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("logout failed: %w", err)
//	}
type LogoutCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a logout command for sessionID.
// Returns a ValueIsRequiredError when sessionID is empty.
func NewLogoutCommand(sessionID string) (LogoutCommand, error) {
	if sessionID == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("sessionID")
	}
	return LogoutCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLogoutCommandIsNotConstructed if validation fails.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// SessionID returns the session to end.
func (c LogoutCommand) SessionID() string {
	return c.sessionID
}
