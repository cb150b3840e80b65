// Package models holds the server-side domain types shared by repositories,
// services and transports.
package models

import "time"

// User is an anonymous account created at signup.
type User struct {
	ID        string
	CreatedAt time.Time
}
