package userrepo

import "time"

// UserDTO is a login account. Only the password hash is stored.
type UserDTO struct {
	ID           string    `gorm:"type:varchar(64);primaryKey"`
	PasswordHash string    `gorm:"type:varchar(72);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName overrides the gorm table name.
func (UserDTO) TableName() string {
	return "users"
}
