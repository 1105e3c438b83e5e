package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// LogoutCommandHandler unbinds a session and stops tracking its idleness.
// A session that is already gone is not an error, so logging out twice
// succeeds.
//
// Example:
//
//	handler := NewLogoutCommandHandler(registry, activity)
//	cmd, _ := NewLogoutCommand(sessionID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// The session ID now answers NO_SESSION
type LogoutCommandHandler struct {
	registry ports.SessionRegistry
	activity ports.SessionActivity
}

// NewLogoutCommandHandler creates a handler on the session registry and the
// idle tracker of the same backend.
func NewLogoutCommandHandler(registry ports.SessionRegistry, activity ports.SessionActivity) LogoutCommandHandler {
	return LogoutCommandHandler{registry: registry, activity: activity}
}

// Handle unregisters the session, then forgets its activity. A registry
// failure is returned and the activity is kept, so an idle sweep can still
// clean up.
func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.registry.UnregisterBySessionID(ctx, cmd.SessionID()); err != nil {
		return err
	}
	h.activity.Forget(cmd.SessionID())
	return nil
}
