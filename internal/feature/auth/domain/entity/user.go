// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// Password always holds a bcrypt hash, never plaintext.
type User struct {
	ID uint `gorm:"primaryKey"`

	// FullName is the display name shown on the profile.
	FullName string `gorm:"size:255;not null"`

	// UserName is the unique handle, stored lowercase and trimmed.
	UserName string `gorm:"uniqueIndex;size:64;not null"`

	// Email is unique across all users, stored lowercase.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// ProfileTag is the short bio line under the handle.
	ProfileTag string `gorm:"size:255;not null"`

	// Avatar is the URL of the uploaded profile image.
	Avatar string `gorm:"size:512;not null"`

	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the public projection of a user attached to comments,
// reels and follow listings.
type Summary struct {
	ID       uint   `json:"_id"`
	UserName string `json:"user_name"`
	Avatar   string `json:"avatar"`
}

// Summarize returns the public projection of the user.
func (u *User) Summarize() Summary {
	return Summary{ID: u.ID, UserName: u.UserName, Avatar: u.Avatar}
}
