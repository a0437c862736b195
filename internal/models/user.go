package models

import "time"

// User is a registered account. Password holds only the bcrypt digest,
// never the plaintext.
type User struct {
	ID        int
	Username  string
	Password  string
	CreatedAt time.Time
}
