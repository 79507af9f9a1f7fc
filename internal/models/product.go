package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint             `gorm:"primarykey" json:"id"`                             // 主键
	CategoryID  uint             `gorm:"not null;index" json:"category_id"`                // 分类ID
	MaterialID  uint             `gorm:"index" json:"material_id"`                         // 材质ID（0 表示未关联）
	Slug        string           `gorm:"uniqueIndex;not null" json:"slug"`                 // 唯一标识
	Name        string           `gorm:"type:varchar(200);not null;index" json:"name"`     // 商品名称
	Description string           `gorm:"type:text" json:"description"`                     // 商品描述
	Gemstone    string           `gorm:"type:varchar(100);index" json:"gemstone"`          // 宝石名称（空表示无镶嵌）
	PriceAmount Money            `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 价格金额
	Stock       int              `gorm:"not null;default:0" json:"stock"`                  // 库存数量
	Featured    bool             `gorm:"default:false;index" json:"featured"`              // 是否精选
	Images      StringArray      `gorm:"type:json" json:"images"`                          // 图片数组（首图为主图）
	WeightGrams *decimal.Decimal `gorm:"type:decimal(10,3)" json:"weight_grams,omitempty"` // 克重（可选）
	IsActive    bool             `gorm:"not null;index" json:"is_active"`                  // 是否上架（无列默认值，false 才能落库）
	SortOrder   int              `gorm:"default:0;index" json:"sort_order"`                // 排序权重
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt   time.Time        `json:"updated_at"`                                       // 更新时间
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`                                   // 软删除时间

	// 关联
	Category Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Material *Material `gorm:"foreignKey:MaterialID" json:"material,omitempty"` // 材质信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
