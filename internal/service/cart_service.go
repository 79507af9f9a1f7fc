package service

import (
	"strings"

	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/repository"

	"github.com/google/uuid"
)

// CartService 游客购物车服务。
// 购物车按请求头中的购物车令牌归属，令牌由服务端签发。
type CartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{repo: repo, productRepo: productRepo}
}

// NewCartToken 签发新的购物车令牌
func (s *CartService) NewCartToken() string {
	return uuid.NewString()
}

// List 获取购物车内容
func (s *CartService) List(cartToken string) ([]models.CartItem, error) {
	if strings.TrimSpace(cartToken) == "" {
		return []models.CartItem{}, nil
	}
	return s.repo.ListByToken(cartToken)
}

// SetItem 设置购物车项数量，数量为 0 时移除
func (s *CartService) SetItem(cartToken string, productID uint, quantity int) error {
	if strings.TrimSpace(cartToken) == "" || productID == 0 {
		return ErrQuantityInvalid
	}
	if quantity < 0 {
		return ErrQuantityInvalid
	}
	if quantity == 0 {
		return s.repo.DeleteByTokenAndProduct(cartToken, productID)
	}

	product, err := s.productRepo.GetByID(formatID(productID))
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductUnavailable
	}
	if product.Stock < quantity {
		return ErrProductOutOfStock
	}

	return s.repo.Upsert(&models.CartItem{
		CartToken: cartToken,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// RemoveItem 移除购物车项
func (s *CartService) RemoveItem(cartToken string, productID uint) error {
	if strings.TrimSpace(cartToken) == "" || productID == 0 {
		return nil
	}
	return s.repo.DeleteByTokenAndProduct(cartToken, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(cartToken string) error {
	if strings.TrimSpace(cartToken) == "" {
		return nil
	}
	return s.repo.ClearByToken(cartToken)
}
