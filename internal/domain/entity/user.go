// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account. It is created once at registration and never updated here.
type User struct {
	ID           int64     // Numeric identifier assigned by the store on insert.
	FirstName    string    // Given name as submitted at registration.
	Surname      string    // Family name as submitted at registration.
	Username     string    // Login identifier, unique and case-sensitive as stored.
	PasswordHash []byte    // Opaque bcrypt hash; the plaintext is never kept.
	CreatedAt    time.Time // Timestamp of when the account was registered.
}
