// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an artist account in the mindCanva application.
// Email is the natural key; DisplayName and PhotoURL are the canonical
// source of artist identity that gets denormalized onto artworks.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
