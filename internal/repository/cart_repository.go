package repository

import (
	"errors"

	"github.com/zhubao-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByToken(cartToken string) ([]models.CartItem, error)
	GetByTokenAndProduct(cartToken string, productID uint) (*models.CartItem, error)
	Upsert(item *models.CartItem) error
	DeleteByTokenAndProduct(cartToken string, productID uint) error
	ClearByToken(cartToken string) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByToken 获取某购物车令牌下的全部项
func (r *GormCartRepository) ListByToken(cartToken string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("cart_token = ?", cartToken).Order("updated_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByTokenAndProduct 获取购物车中指定商品项
func (r *GormCartRepository) GetByTokenAndProduct(cartToken string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_token = ? AND product_id = ?", cartToken, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert 添加或更新购物车项
func (r *GormCartRepository) Upsert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	var existing models.CartItem
	err := r.db.Where("cart_token = ? AND product_id = ?", item.CartToken, item.ProductID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(item).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("quantity", item.Quantity).Error
}

// DeleteByTokenAndProduct 删除购物车项
func (r *GormCartRepository) DeleteByTokenAndProduct(cartToken string, productID uint) error {
	return r.db.Where("cart_token = ? AND product_id = ?", cartToken, productID).Delete(&models.CartItem{}).Error
}

// ClearByToken 清空购物车
func (r *GormCartRepository) ClearByToken(cartToken string) error {
	return r.db.Where("cart_token = ?", cartToken).Delete(&models.CartItem{}).Error
}
