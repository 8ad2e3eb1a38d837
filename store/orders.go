package store

import (
	"context"

	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"gorm.io/gorm"
)

// OrderSource is the persistence surface payment verification needs: look an
// order up by the provider's id and flip it to paid. Tests substitute an
// in-memory one.
type OrderSource interface {
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Order, error)
	MarkPaid(ctx context.Context, orderID uint) error
}

type gormOrderSource struct {
	db *gorm.DB
}

// NewGormOrderSource wraps a GORM connection as an OrderSource.
func NewGormOrderSource(db *gorm.DB) OrderSource {
	return &gormOrderSource{db: db}
}

func (s *gormOrderSource) FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).
		Where("provider_order_id = ?", providerOrderID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *gormOrderSource) MarkPaid(ctx context.Context, orderID uint) error {
	return s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", models.OrderStatusPaid).Error
}
