package domain

import "time"

// Document is PDF metadata tied to exactly one owning user. Filename is
// the server-generated name the blob is stored under; OriginalName is
// whatever the client called the file and is advisory only. The digital
// signature is stored opaquely, this system never verifies it.
type Document struct {
	ID               int64
	UserID           int64
	Filename         string
	OriginalName     string
	DigitalSignature string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
