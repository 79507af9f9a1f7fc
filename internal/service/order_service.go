package service

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/zhubao-next/internal/config"
	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/logger"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/queue"
	"github.com/zhubao-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单业务服务。
// 游客从购物车结算生成待支付订单，支付回执由外部系统承接，
// 超时未支付的订单由队列任务取消并回补库存。
type OrderService struct {
	repo           repository.OrderRepository
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	settingService *SettingService
	queueClient    *queue.Client
	orderCfg       config.OrderConfig
}

// NewOrderService 创建订单服务
func NewOrderService(
	repo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	settingService *SettingService,
	queueClient *queue.Client,
	orderCfg config.OrderConfig,
) *OrderService {
	return &OrderService{
		repo:           repo,
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		settingService: settingService,
		queueClient:    queueClient,
		orderCfg:       orderCfg,
	}
}

// CheckoutInput 结算输入
type CheckoutInput struct {
	CartToken  string
	GuestEmail string
	GuestName  string
	ClientIP   string
}

// List 订单列表（管理端）
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.repo.List(filter)
}

// GetByOrderNo 根据订单编号获取订单
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	order, err := s.repo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Checkout 从购物车结算生成待支付订单。
// 扣减库存、建单、清空购物车在同一事务内完成。
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	cartToken := strings.TrimSpace(input.CartToken)
	if cartToken == "" {
		return nil, ErrCartEmpty
	}

	cartItems, err := s.cartRepo.ListByToken(cartToken)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	expireMinutes := s.settingService.PaymentExpireMinutes(s.orderCfg.PaymentExpireMinutes)
	expiresAt := time.Now().Add(time.Duration(expireMinutes) * time.Minute)

	order := &models.Order{
		OrderNo:    generateOrderNo(),
		GuestEmail: strings.TrimSpace(input.GuestEmail),
		GuestName:  strings.TrimSpace(input.GuestName),
		Status:     constants.OrderStatusPendingPayment,
		Currency:   s.settingService.SiteCurrency(),
		ClientIP:   input.ClientIP,
		ExpiresAt:  &expiresAt,
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.repo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			if cartItem.Product == nil || !cartItem.Product.IsActive {
				return ErrProductUnavailable
			}
			if cartItem.Quantity <= 0 {
				return ErrQuantityInvalid
			}

			affected, err := productRepo.DecrementStock(cartItem.ProductID, cartItem.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrProductOutOfStock
			}

			unitPrice := cartItem.Product.PriceAmount.Decimal
			subtotal := unitPrice.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
			total = total.Add(subtotal)
			items = append(items, models.OrderItem{
				ProductID:   cartItem.ProductID,
				ProductName: cartItem.Product.Name,
				UnitPrice:   models.NewMoneyFromDecimal(unitPrice),
				Quantity:    cartItem.Quantity,
				Subtotal:    models.NewMoneyFromDecimal(subtotal),
			})
		}

		order.TotalAmount = models.NewMoneyFromDecimal(total)
		order.Items = items
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return cartRepo.ClearByToken(cartToken)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderTimeoutCancel(
		queue.OrderTimeoutCancelPayload{OrderID: order.ID},
		time.Until(expiresAt),
	); err != nil {
		logger.Warnw("order_timeout_cancel_enqueue_failed",
			"order_id", order.ID,
			"error", err,
		)
	}

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"total", order.TotalAmount.String(),
		"items", len(order.Items),
	)
	return order, nil
}

// MarkPaid 标记订单已支付（仅待支付可迁移）
func (s *OrderService) MarkPaid(id uint) error {
	now := time.Now()
	affected, err := s.repo.UpdateStatus(id, constants.OrderStatusPendingPayment, constants.OrderStatusPaid, map[string]interface{}{
		"paid_at": &now,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderStatusConflict
	}
	return nil
}

// MarkCompleted 标记订单完成（仅已支付可迁移）
func (s *OrderService) MarkCompleted(id uint) error {
	affected, err := s.repo.UpdateStatus(id, constants.OrderStatusPaid, constants.OrderStatusCompleted, nil)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderStatusConflict
	}
	return nil
}

// Cancel 取消待支付订单并回补库存
func (s *OrderService) Cancel(id uint) error {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNotFound
	}

	return s.repo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.repo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		now := time.Now()
		affected, err := orderRepo.UpdateStatus(id, constants.OrderStatusPendingPayment, constants.OrderStatusCanceled, map[string]interface{}{
			"canceled_at": &now,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatusConflict
		}

		for _, item := range order.Items {
			if _, err := productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// CancelIfExpired 订单仍处于待支付且已过期时取消（队列任务入口）
func (s *OrderService) CancelIfExpired(id uint) error {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil || order.Status != constants.OrderStatusPendingPayment {
		return nil
	}
	if order.ExpiresAt != nil && order.ExpiresAt.After(time.Now()) {
		return nil
	}

	if err := s.Cancel(id); err != nil {
		if err == ErrOrderStatusConflict {
			return nil
		}
		return err
	}
	logger.Infow("order_timeout_canceled", "order_id", id, "order_no", order.OrderNo)
	return nil
}

// CancelExpiredBatch 批量取消过期订单（兜底扫描）
func (s *OrderService) CancelExpiredBatch(limit int) (int, error) {
	orders, err := s.repo.ListExpiredPending(time.Now(), limit)
	if err != nil {
		return 0, err
	}
	canceled := 0
	for _, order := range orders {
		if err := s.CancelIfExpired(order.ID); err != nil {
			return canceled, err
		}
		canceled++
	}
	return canceled, nil
}

// generateOrderNo 生成订单编号（时间戳 + 随机尾号）
func generateOrderNo() string {
	var buf [4]byte
	suffix := uint32(time.Now().UnixNano())
	if _, err := rand.Read(buf[:]); err == nil {
		suffix = binary.BigEndian.Uint32(buf[:])
	}
	return fmt.Sprintf("ZB%s%06d", time.Now().Format("20060102150405"), suffix%1000000)
}
