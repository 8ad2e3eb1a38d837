package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is an appointment request for bridal/party mehndi. Created from
// the public booking form, managed by an admin.
type Booking struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Reference string        `gorm:"uniqueIndex" json:"reference"` // quoted by customers in follow-ups
	UserID    string        `gorm:"index" json:"user_id"`         // empty for anonymous requests
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Phone     string        `gorm:"not null" json:"phone"`
	EventDate time.Time     `gorm:"not null" json:"event_date"`
	EventType string        `json:"event_type"` // bridal, engagement, party, festival
	PartySize int           `json:"party_size"`
	Location  string        `json:"location"`
	Notes     string        `json:"notes"`
	Status    BookingStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
