package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"` // Required
	InStock     bool           `gorm:"default:true" json:"in_stock"`
	StainColor  string         `json:"stain_color"` // e.g. "deep maroon", "cherry red"
	WeightGrams float64        `json:"weight_grams"`
	Image       string         `gorm:"not null" json:"image"`
	Gallery     string         `json:"gallery"` // comma-separated extra image URLs
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
