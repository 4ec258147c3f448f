package task

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier. IDs are generated once at
// creation and never change afterwards.
func NewID() string {
	return uuid.NewString()
}
