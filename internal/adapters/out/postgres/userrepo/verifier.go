// Package userrepo checks login credentials against bcrypt hashes stored in
// the users table.
package userrepo

import (
	"context"
	"errors"

	"procurement/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BcryptCredentialVerifier implements ports.CredentialVerifier.
type BcryptCredentialVerifier struct {
	db   *gorm.DB
	cost int
}

// NewBcryptCredentialVerifier creates a verifier hashing with
// bcrypt.DefaultCost.
func NewBcryptCredentialVerifier(db *gorm.DB) *BcryptCredentialVerifier {
	return &BcryptCredentialVerifier{db: db, cost: bcrypt.DefaultCost}
}

// Verify returns an ObjectNotFoundError for an unknown user and a
// ValueIsInvalidError for a wrong password.
func (v *BcryptCredentialVerifier) Verify(ctx context.Context, userID, password string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	var dto UserDTO
	if err := v.db.WithContext(ctx).First(&dto, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("user", userID)
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dto.PasswordHash), []byte(password)); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return nil
}

// SetPassword creates the user or replaces its password.
func (v *BcryptCredentialVerifier) SetPassword(ctx context.Context, userID, password string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	dto := UserDTO{ID: userID, PasswordHash: string(hash)}
	return v.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(&dto).Error
}
