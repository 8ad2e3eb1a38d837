package bookingControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"gorm.io/gorm"
)

type BookingInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	EventDate string `json:"event_date" binding:"required"` // YYYY-MM-DD
	EventType string `json:"event_type"`
	PartySize int    `json:"party_size"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapBookingStatus(status string) (models.BookingStatus, error) {
	switch strings.ToLower(status) {
	case string(models.BookingStatusPending):
		return models.BookingStatusPending, nil
	case string(models.BookingStatusConfirmed):
		return models.BookingStatusConfirmed, nil
	case string(models.BookingStatusDeclined):
		return models.BookingStatusDeclined, nil
	case string(models.BookingStatusCompleted):
		return models.BookingStatusCompleted, nil
	default:
		return "", errors.New("invalid booking status")
	}
}

// generateBookingReference returns the code customers quote in follow-ups.
func generateBookingReference() string {
	return "bk_" + strings.Split(uuid.NewString(), "-")[0]
}

// parseEventDate accepts a calendar date and rejects dates in the past.
func parseEventDate(value string, now time.Time) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("event_date must be YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, errors.New("event_date cannot be in the past")
	}
	return date, nil
}

// POST /bookings
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		eventDate, err := parseEventDate(input.EventDate, time.Now().UTC())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		booking := models.Booking{
			Reference: generateBookingReference(),
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			EventDate: eventDate,
			EventType: input.EventType,
			PartySize: input.PartySize,
			Location:  input.Location,
			Notes:     input.Notes,
			Status:    models.BookingStatusPending,
		}
		// Signed-in visitors get their booking linked to their profile.
		if userIDVal, exists := c.Get("user_id"); exists {
			booking.UserID, _ = userIDVal.(string)
		}

		if err := db.Create(&booking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking request"})
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

// GET /admin/bookings
func GetAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking
		query := db.Order("event_date ASC")
		if status := c.Query("status"); status != "" {
			mapped, err := mapBookingStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		if err := query.Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// PUT /admin/bookings/:bookingID/status
func UpdateBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("bookingID")
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bookingID is required"})
			return
		}
		var req UpdateBookingStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapBookingStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Booking{}).Where("id = ?", bookingID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully"})
	}
}
