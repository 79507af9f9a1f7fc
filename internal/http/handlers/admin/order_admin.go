package admin

import (
	"errors"
	"strconv"

	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/repository"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminOrders 获取订单列表 (Admin)
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		Status:     c.Query("status"),
		OrderNo:    c.Query("order_no"),
		GuestEmail: c.Query("guest_email"),
	}

	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminOrder 获取订单详情 (Admin)
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}

	order, err := h.OrderRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if order == nil {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Action string `json:"action" binding:"required,oneof=paid completed canceled"`
}

// UpdateAdminOrderStatus 推进订单状态
// 状态流转不合法时返回冲突，不做强制覆盖。
func (h *Handler) UpdateAdminOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	orderID := uint(id)
	switch req.Action {
	case "paid":
		err = h.OrderService.MarkPaid(orderID)
	case "completed":
		err = h.OrderService.MarkCompleted(orderID)
	case "canceled":
		err = h.OrderService.Cancel(orderID)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderStatusConflict):
			respondError(c, response.CodeConflict, "error.order_status_conflict", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_save_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"action": req.Action})
}
