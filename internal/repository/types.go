package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	MaterialID   string
	Gemstone     string
	Search       string
	Featured     *bool
	InStockOnly  bool
	OnlyActive   bool
	WithCategory bool
	WithMaterial bool
}

// MaterialListFilter 查询材质列表的过滤条件
type MaterialListFilter struct {
	Type       string
	OnlyActive bool
	WithKarats bool
}

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page          int
	PageSize      int
	Type          string
	Search        string
	OnlyPublished bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	Status      string
	OrderNo     string
	GuestEmail  string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
