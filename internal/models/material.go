package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Material 材质表（金/银），持有基准克价
type Material struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                             // 主键
	Name             string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`               // 材质名称
	Type             string         `gorm:"type:varchar(20);not null;index" json:"type"`                      // 材质类型（gold/silver）
	BasePricePerGram Money          `gorm:"type:decimal(20,2);not null;default:0" json:"base_price_per_gram"` // 基准克价（最高纯度）
	IsActive         bool           `gorm:"not null;index" json:"is_active"`                                  // 是否启用（无列默认值，false 才能落库）
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                          // 创建时间
	UpdatedAt        time.Time      `json:"updated_at"`                                                       // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                                   // 软删除时间

	// 关联
	Karats []Karat `gorm:"foreignKey:MaterialID" json:"karats,omitempty"` // 纯度档位列表
}

// TableName 指定表名
func (Material) TableName() string {
	return "materials"
}

// Karat 纯度档位表，克价由材质基准价推导
type Karat struct {
	ID           uint            `gorm:"primarykey" json:"id"`                                        // 主键
	MaterialID   uint            `gorm:"not null;index" json:"material_id"`                           // 所属材质ID
	Value        string          `gorm:"type:varchar(20);not null" json:"value"`                      // 档位标签（如 22K）
	Purity       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"purity"`                    // 纯度百分比（0-100）
	MaterialType string          `gorm:"type:varchar(20);not null;index" json:"material_type"`        // 材质类型冗余（随所属材质）
	PricePerGram Money           `gorm:"type:decimal(20,2);not null;default:0" json:"price_per_gram"` // 推导克价（整数单位）
	IsActive     bool            `gorm:"not null;index" json:"is_active"`                             // 是否启用（无列默认值，false 才能落库）
	CreatedAt    time.Time       `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt    time.Time       `json:"updated_at"`                                                  // 更新时间
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Karat) TableName() string {
	return "karats"
}
