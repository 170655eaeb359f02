package models

import "time"

// Identity is a row of the identities table.
type Identity struct {
	IdentityID   int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
