package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/zhubao-next/internal/logger"
	"github.com/zhubao-next/internal/provider"
	"github.com/zhubao-next/internal/queue"
	"github.com/zhubao-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskKaratReprice, c.handleKaratReprice)
	mux.HandleFunc(queue.TaskOrderTimeoutCancel, c.handleOrderTimeoutCancel)
}

func (c *Consumer) handleKaratReprice(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_karat_reprice_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.KaratRepricePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_karat_reprice_unmarshal_failed", "error", err)
		return err
	}
	if payload.MaterialID == 0 {
		logger.Debugw("worker_karat_reprice_skip_invalid_payload", "material_id", payload.MaterialID)
		return nil
	}
	if c.MaterialService == nil {
		logger.Warnw("worker_karat_reprice_skip_material_service_nil", "material_id", payload.MaterialID)
		return nil
	}
	if err := c.MaterialService.RecomputeKaratPrices(payload.MaterialID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			logger.Debugw("worker_karat_reprice_skip_material_not_found", "material_id", payload.MaterialID)
			return nil
		}
		logger.Warnw("worker_karat_reprice_failed", "material_id", payload.MaterialID, "error", err)
		return err
	}
	// 克拉价格变更后目录快照失效
	if c.CatalogService != nil {
		c.CatalogService.InvalidateSnapshot(ctx)
	}
	return nil
}

func (c *Consumer) handleOrderTimeoutCancel(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_timeout_cancel_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_timeout_cancel_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_timeout_cancel_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.OrderService == nil {
		logger.Warnw("worker_order_timeout_cancel_skip_order_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.OrderService.CancelIfExpired(payload.OrderID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			logger.Debugw("worker_order_timeout_cancel_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		}
		logger.Warnw("worker_order_timeout_cancel_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}
