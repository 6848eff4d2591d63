package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt digest and is
// only ever populated by the login path; it must never be serialized to
// clients.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
