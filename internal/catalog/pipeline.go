package catalog

import (
	"github.com/shopspring/decimal"

	"golang.org/x/text/collate"
)

// Pipeline 目录筛选管线。
// 可见列表是四个输入（基础商品列表、搜索词、排序键、筛选状态）的纯函数，
// 任一输入变化后重新执行 Run 即可得到最新结果。
type Pipeline struct {
	baseItems []Item
	query     string
	sortKey   SortKey
	filters   FilterState
	maxPrice  decimal.Decimal
	collator  *collate.Collator
}

// NewPipeline 创建管线，locale 决定名称排序的 collation
func NewPipeline(locale string) *Pipeline {
	p := &Pipeline{
		sortKey:  SortByName,
		collator: NewCollator(locale),
	}
	p.filters = DefaultFilterState(decimal.Zero)
	return p
}

// SetBaseItems 替换基础商品列表。
// 价格上限按未筛选的基础列表重新计算，价格区间重置为 [0,newMax]，
// 其余筛选条件保持不变（对应前台切换分类后的行为）。
func (p *Pipeline) SetBaseItems(items []Item) {
	p.baseItems = make([]Item, len(items))
	copy(p.baseItems, items)
	p.maxPrice = MaxPrice(p.baseItems)
	p.filters.PriceMin = decimal.Zero
	p.filters.PriceMax = p.maxPrice
}

// MaxPrice 返回基础列表的最高价格（价格区间的默认上限）
func (p *Pipeline) MaxPrice() decimal.Decimal {
	return p.maxPrice
}

// SetQuery 设置搜索词
func (p *Pipeline) SetQuery(query string) {
	p.query = query
}

// SetSortKey 设置排序键
func (p *Pipeline) SetSortKey(key SortKey) {
	p.sortKey = key
}

// Filters 返回当前筛选状态
func (p *Pipeline) Filters() FilterState {
	return p.filters
}

// SetFilters 设置筛选状态并归一化价格区间：
// 负的下限提升为 0，零值上限落回默认上限，min > max 时交换。
func (p *Pipeline) SetFilters(filters FilterState) {
	if filters.PriceMin.IsNegative() {
		filters.PriceMin = decimal.Zero
	}
	if filters.PriceMax.IsZero() {
		filters.PriceMax = p.maxPrice
	}
	if filters.PriceMin.GreaterThan(filters.PriceMax) {
		filters.PriceMin, filters.PriceMax = filters.PriceMax, filters.PriceMin
	}
	p.filters = filters
}

// Reset 清空搜索、筛选与排序（空结果页的重置动作）
func (p *Pipeline) Reset() {
	p.query = ""
	p.sortKey = SortByName
	p.filters = DefaultFilterState(p.maxPrice)
}

// Run 重新计算可见列表：谓词链全部执行后再排序
func (p *Pipeline) Run() []Item {
	return Compute(p.baseItems, p.filters, p.query, p.sortKey, p.collator)
}

// Compute 管线的纯函数形式，便于独立调用与测试
func Compute(items []Item, filters FilterState, query string, key SortKey, collator *collate.Collator) []Item {
	return SortItems(ApplyFilters(items, filters, query), key, collator)
}
