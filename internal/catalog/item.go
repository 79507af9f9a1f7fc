package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item 目录商品的规范化视图。
// 材质引用在入口处解析为名称（缺失材质归一化为空串），
// 核心逻辑不感知任何备用字段名。
type Item struct {
	ID          uint            `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Material    string          `json:"material"`
	Gemstone    string          `json:"gemstone"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FilterState 目录筛选状态（仅存在于单次请求，不落库）
type FilterState struct {
	Categories []string        `json:"categories"`
	Materials  []string        `json:"materials"`
	Gemstones  []string        `json:"gemstones"`
	PriceMin   decimal.Decimal `json:"price_min"`
	PriceMax   decimal.Decimal `json:"price_max"`
	InStock    bool            `json:"in_stock"`
	Featured   bool            `json:"featured"`
}

// DefaultFilterState 返回覆盖 [0,maxPrice] 全价格区间的默认筛选状态
func DefaultFilterState(maxPrice decimal.Decimal) FilterState {
	if maxPrice.IsNegative() {
		maxPrice = decimal.Zero
	}
	return FilterState{
		PriceMin: decimal.Zero,
		PriceMax: maxPrice,
	}
}

// MaxPrice 计算商品集合的最高价格（空集合为 0）
func MaxPrice(items []Item) decimal.Decimal {
	max := decimal.Zero
	for _, item := range items {
		if item.Price.GreaterThan(max) {
			max = item.Price
		}
	}
	return max
}
