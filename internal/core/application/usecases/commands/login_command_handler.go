package commands

import (
	"context"
	"log/slog"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"
)

// LoginCommandHandler verifies credentials and registers a fresh session.
// A session the user already held becomes a logout target: its next request
// is told it was forced out.
//
// Example:
//
//	handler := NewLoginCommandHandler(verifier, registry, activity, logger)
//	cmd, _ := NewLoginCommand("clerk-1", password)
//	sessionID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // wrong password
//	}
type LoginCommandHandler struct {
	verifier ports.CredentialVerifier
	registry ports.SessionRegistry
	activity ports.SessionActivity
	logger   *slog.Logger
}

// NewLoginCommandHandler creates a handler. The logger is tagged with
// component=session.
func NewLoginCommandHandler(
	verifier ports.CredentialVerifier,
	registry ports.SessionRegistry,
	activity ports.SessionActivity,
	logger *slog.Logger,
) LoginCommandHandler {
	return LoginCommandHandler{
		verifier: verifier,
		registry: registry,
		activity: activity,
		logger:   logger.With("component", "session"),
	}
}

// Handle returns the new session id.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if err := h.verifier.Verify(ctx, cmd.UserID(), cmd.Password()); err != nil {
		return "", err
	}

	_, hadSession, err := h.registry.SessionOf(ctx, cmd.UserID())
	if err != nil {
		return "", err
	}

	sessionID := kernel.NewUUID().String()
	if err = h.registry.RegisterLogin(ctx, cmd.UserID(), sessionID); err != nil {
		return "", err
	}
	h.activity.Touch(sessionID)

	// The previous session stays tracked; if it never comes back its logout
	// mark is dropped when it expires.
	if hadSession {
		h.logger.InfoContext(ctx, "previous session marked for forced logout", "user", cmd.UserID())
	}
	return sessionID, nil
}
