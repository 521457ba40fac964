package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a tour a user wants to find again. Each user can
// favorite a tour at most once. The tour is embedded so the favorites
// list renders without extra lookups.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Tour      Tour      `json:"tour"`
	CreatedAt time.Time `json:"createdAt"`
}
