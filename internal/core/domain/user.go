package domain

import "time"

// User is an account that owns documents and belongs to groups.
// Password holds the bcrypt digest, never plaintext; it must not leak
// into any response, which is why the API layer serializes dedicated
// projections instead of this struct.
type User struct {
	ID        int64
	Password  string
	Email     string
	PublicKey string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
