package model

import "time"

// Tag is a shared palette entry usable on projects and stands.
// The label is the display string referenced by project and stand tag
// lists; the color is the hex value used for every color lookup.
type Tag struct {
	ID        string    `json:"id" db:"id"`
	Label     string    `json:"label" db:"label"`
	Color     string    `json:"color" db:"color"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
