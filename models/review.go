package models

import "time"

// Review is submitted from the public form. There is no moderation queue;
// a validated submission is immediately public.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	Quote     string    `gorm:"not null" json:"quote"`
	Rating    int       `gorm:"not null" json:"rating"` // clamped to [1,5] server-side
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
