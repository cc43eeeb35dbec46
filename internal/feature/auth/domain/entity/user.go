// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials and metadata for account management.
type User struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Username is the login name used for authentication.
	// It must be unique across all accounts.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the account password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}
