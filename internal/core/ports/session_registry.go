package ports

import "context"

// SessionRegistry keeps at most one active session per user.
//
// Operations are atomic per key. Operations on different users or sessions
// do not block each other.
type SessionRegistry interface {
	// RegisterLogin binds sessionID to userID. A previous session of the user
	// is unbound and marked as a logout target in the same step. Registering
	// the session a user already holds changes nothing.
	RegisterLogin(ctx context.Context, userID, sessionID string) error

	// RemoveLogoutTarget clears the logout mark of sessionID and reports
	// whether it was set. Among concurrent callers with the same sessionID
	// exactly one sees true.
	RemoveLogoutTarget(ctx context.Context, sessionID string) (bool, error)

	// UnregisterBySessionID removes both directions of the binding of
	// sessionID and its logout mark. Unknown sessions are ignored.
	UnregisterBySessionID(ctx context.Context, sessionID string) error

	// SessionOf returns the active session of userID.
	SessionOf(ctx context.Context, userID string) (string, bool, error)

	// UserOf returns the user bound to sessionID.
	UserOf(ctx context.Context, sessionID string) (string, bool, error)
}

// SessionActivity tracks when sessions were last used so that idle ones can
// be unregistered.
//
// Implementations belong to the same backend as the SessionRegistry they
// expire, so that an idle session is unbound on every instance sharing it.
type SessionActivity interface {
	// Touch records a use of sessionID now. It never fails the request.
	Touch(sessionID string)
	// Forget stops tracking sessionID without unbinding it.
	Forget(sessionID string)
}
