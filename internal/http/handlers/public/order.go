package public

import (
	"errors"
	"strings"

	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 下单请求
type CheckoutRequest struct {
	GuestEmail string `json:"guest_email" binding:"required"`
	GuestName  string `json:"guest_name"`
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrProductUnavailable, code: response.CodeBadRequest, key: "error.product_unavailable"},
	{target: service.ErrProductOutOfStock, code: response.CodeBadRequest, key: "error.product_out_of_stock"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, key: "error.quantity_invalid"},
}

// CreateOrder 购物车结算下单
func (h *Handler) CreateOrder(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	order, err := h.OrderService.Checkout(service.CheckoutInput{
		CartToken:  token,
		GuestEmail: strings.TrimSpace(req.GuestEmail),
		GuestName:  strings.TrimSpace(req.GuestName),
		ClientIP:   c.ClientIP(),
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.order_create_failed")
		return
	}
	response.Success(c, order)
}

// GetOrderByOrderNo 根据订单编号查询订单
// 需携带下单邮箱，避免凭编号枚举他人订单。
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}

	order, err := h.OrderService.GetByOrderNo(c.Param("order_no"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if !strings.EqualFold(strings.TrimSpace(order.GuestEmail), email) {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}
	response.Success(c, order)
}
