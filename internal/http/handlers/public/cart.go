package public

import (
	"errors"
	"strconv"

	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CartProduct 购物车商品摘要
type CartProduct struct {
	ID          uint               `json:"id"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	PriceAmount models.Money       `json:"price_amount"`
	Images      models.StringArray `json:"images"`
	Stock       int                `json:"stock"`
	IsActive    bool               `json:"is_active"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ProductID uint        `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Product   CartProduct `json:"product"`
}

// IssueCartToken 签发购物车令牌
func (h *Handler) IssueCartToken(c *gin.Context) {
	response.Success(c, gin.H{"cart_token": h.CartService.NewCartToken()})
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}

	items, err := h.CartService.List(token)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		respItems = append(respItems, CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product: CartProduct{
				ID:          item.Product.ID,
				Slug:        item.Product.Slug,
				Name:        item.Product.Name,
				PriceAmount: item.Product.PriceAmount,
				Images:      item.Product.Images,
				Stock:       item.Product.Stock,
				IsActive:    item.Product.IsActive,
			},
		})
	}
	response.Success(c, gin.H{"items": respItems})
}

// SetCartItem 设置购物车项数量，数量为 0 时移除
func (h *Handler) SetCartItem(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.CartService.SetItem(token, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrQuantityInvalid):
			respondError(c, response.CodeBadRequest, "error.quantity_invalid", nil)
		case errors.Is(err, service.ErrProductUnavailable):
			respondError(c, response.CodeBadRequest, "error.product_unavailable", nil)
		case errors.Is(err, service.ErrProductOutOfStock):
			respondError(c, response.CodeBadRequest, "error.product_out_of_stock", nil)
		default:
			respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}
	if err := h.CartService.RemoveItem(token, uint(productID)); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(token); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
