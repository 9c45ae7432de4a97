package models

import (
	"time"
)

// Like represents a user's like on an artwork.
// The combination of ArtworkID and UserEmail must be unique; the composite
// index is what makes the insert-if-absent path race-safe.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtworkID uint      `gorm:"not null;uniqueIndex:idx_artwork_user_like" json:"artwork_id"`
	UserEmail string    `gorm:"not null;uniqueIndex:idx_artwork_user_like" json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}
