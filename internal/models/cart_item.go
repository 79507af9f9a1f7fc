package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项（按游客购物车令牌归属）
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                                       // 主键
	CartToken string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_token_product" json:"-"`     // 购物车令牌
	ProductID uint           `gorm:"not null;uniqueIndex:idx_cart_token_product" json:"product_id"`             // 商品ID
	Quantity  int            `gorm:"not null" json:"quantity"`                                                  // 数量
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                                   // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                                   // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                            // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
