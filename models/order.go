package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Created at checkout, awaiting payment
	OrderStatusPaid       OrderStatus = "paid"       // Signature verified
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusCompleted  OrderStatus = "completed"  // Delivered
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by admin
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"index;not null" json:"user_id"`
	AddressID       uint        `gorm:"not null" json:"address_id"`
	Address         Address     `gorm:"foreignKey:AddressID" json:"address"`
	CustomerName    string      `json:"customer_name"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"total_amount"` // Server-computed, never client-supplied
	Currency        string      `gorm:"size:8" json:"currency"`
	ProviderOrderID string      `gorm:"uniqueIndex" json:"provider_order_id"`
	Receipt         string      `json:"receipt"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem snapshots the product at checkout time so later catalog edits do
// not rewrite order history.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}
