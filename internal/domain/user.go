// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account holder in the ledger system.
type User struct {
	ID        string    `db:"id" json:"id"`                 // Primary key, UUID in DB
	Name      string    `db:"name" json:"name"`             // Display name
	Email     string    `db:"email" json:"email"`           // Unique email address
	Password  string    `db:"password" json:"-"`            // Bcrypt hash, never serialized
	CreatedAt time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewUser creates a new User instance with a fresh identifier.
// The password is expected to be hashed already by the caller.
func NewUser(name, email, hashedPassword string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
