package domain

import "time"

// Group collects users and documents, both many-to-many. Membership only
// grows: the API exposes no removal operation. The relation slices are
// populated on demand; a nil slice means the relation was not loaded,
// not that it is empty.
type Group struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Users     []User
	Documents []Document
}
