package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（游客下单，支付环节由外部系统承接）
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo     string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	GuestEmail  string         `gorm:"index;not null" json:"guest_email"`                         // 游客邮箱
	GuestName   string         `gorm:"type:varchar(100)" json:"guest_name"`                       // 游客姓名
	Status      string         `gorm:"index;not null" json:"status"`                              // 订单状态
	Currency    string         `gorm:"not null" json:"currency"`                                  // 币种
	TotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 实付金额
	ClientIP    string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`               // 下单客户端IP
	ExpiresAt   *time.Time     `gorm:"index" json:"expires_at"`                                   // 支付过期时间
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`                                      // 支付时间
	CanceledAt  *time.Time     `gorm:"index" json:"canceled_at"`                                  // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项表
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID     uint      `gorm:"not null;index" json:"order_id"`                          // 订单ID
	ProductID   uint      `gorm:"not null;index" json:"product_id"`                        // 商品ID
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`          // 商品名称快照
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价快照
	Quantity    int       `gorm:"not null" json:"quantity"`                                // 数量
	Subtotal    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`   // 小计
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                 // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
