package models

import (
	"time"

	"gorm.io/gorm"
)

// VisibilityPublic marks an artwork as part of the public catalog.
// Anything else is hidden from listings, search, and the leaderboard.
const VisibilityPublic = "Public"

// Artwork represents a published piece in the gallery.
//
// ArtistName and ArtistPhoto are a denormalized copy of the owning User's
// DisplayName/PhotoURL as of the last profile sync; they can be stale until
// the owner edits their profile again. Likes is a counter maintained by the
// like flow, not recomputed on read.
type Artwork struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `json:"image_url"`
	Category    string         `gorm:"index" json:"category"`
	Visibility  string         `gorm:"index;default:'Public'" json:"visibility"`
	CreatedBy   string         `gorm:"index;not null" json:"created_by"`
	ArtistName  string         `json:"artist_name"`
	ArtistPhoto string         `json:"artist_photo"`
	Likes       int            `gorm:"not null;default:0" json:"likes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TopArtist is one row of the artist leaderboard: engagement totals for a
// single creator across their public artworks. Identity fields come from the
// creator's most recent public artwork.
type TopArtist struct {
	ArtistEmail   string `json:"artist_email"`
	ArtistName    string `json:"artist_name"`
	ArtistPhoto   string `json:"artist_photo"`
	TotalLikes    int    `json:"total_likes"`
	TotalArtworks int    `json:"total_artworks"`
}
