package ports

import "context"

// CredentialVerifier checks a user's password. It returns an
// ObjectNotFoundError for unknown users and a ValueIsInvalidError for a wrong
// password.
type CredentialVerifier interface {
	Verify(ctx context.Context, userID, password string) error
}
