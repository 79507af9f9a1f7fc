package queue

import (
	"encoding/json"

	"github.com/zhubao-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskKaratReprice 材质基准价变更后的档位价重算任务
	TaskKaratReprice = constants.TaskKaratReprice
	// TaskOrderTimeoutCancel 订单超时取消任务
	TaskOrderTimeoutCancel = constants.TaskOrderTimeoutCancel
)

// KaratRepricePayload 档位价重算任务载荷
type KaratRepricePayload struct {
	MaterialID uint `json:"material_id"`
}

// OrderTimeoutCancelPayload 超时取消任务载荷
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// NewKaratRepriceTask 创建档位价重算任务
func NewKaratRepriceTask(payload KaratRepricePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskKaratReprice, body), nil
}

// NewOrderTimeoutCancelTask 创建超时取消任务
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}
