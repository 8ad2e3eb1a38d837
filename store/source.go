package store

import (
	"context"
	"errors"

	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"gorm.io/gorm"
)

// Source is the persistent side of the cart store. The GORM implementation
// is used in production; tests substitute an in-memory one.
type Source interface {
	LoadCart(ctx context.Context, userID string) ([]models.CartItem, error)
	FindItem(ctx context.Context, userID string, productID uint) (*models.CartItem, error)
	InsertItem(ctx context.Context, item *models.CartItem) error
	SaveQuantity(ctx context.Context, userID string, cartItemID uint, quantity int) error
	DeleteItem(ctx context.Context, userID string, cartItemID uint) error
	DeleteAll(ctx context.Context, userID string) error
}

type gormSource struct {
	db *gorm.DB
}

// NewGormSource wraps a GORM connection as a cart Source.
func NewGormSource(db *gorm.DB) Source {
	return &gormSource{db: db}
}

func (s *gormSource) LoadCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *gormSource) FindItem(ctx context.Context, userID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *gormSource) InsertItem(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *gormSource) SaveQuantity(ctx context.Context, userID string, cartItemID uint, quantity int) error {
	// Scoping by user_id keeps one user's request from touching another
	// user's cart row.
	res := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormSource) DeleteItem(ctx context.Context, userID string, cartItemID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormSource) DeleteAll(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

// IsNotFound reports whether err is the source's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
