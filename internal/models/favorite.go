package models

import (
	"time"
)

// Favorite represents a user's bookmark of an artwork.
// Extra carries whatever additional fields the client sent when bookmarking
// (artwork title, thumbnail, etc.); it is persisted verbatim and never
// interpreted server-side.
type Favorite struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ArtworkID uint           `gorm:"not null;uniqueIndex:idx_artwork_user_fav" json:"artwork_id"`
	UserEmail string         `gorm:"not null;uniqueIndex:idx_artwork_user_fav" json:"user_email"`
	Extra     map[string]any `gorm:"serializer:json" json:"extra,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
