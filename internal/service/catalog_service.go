package service

import (
	"context"
	"time"

	"github.com/zhubao-next/internal/cache"
	"github.com/zhubao-next/internal/catalog"
	"github.com/zhubao-next/internal/config"
	"github.com/zhubao-next/internal/logger"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/repository"

	"golang.org/x/text/collate"
)

const catalogSnapshotCacheKey = "catalog:snapshot"

// CatalogService 商品目录查询服务。
// 将上架商品归一化为目录条目后交给筛选管线计算，
// 归一化快照可缓存，筛选计算始终按请求参数执行。
type CatalogService struct {
	productRepo repository.ProductRepository
	cfg         config.CatalogConfig
	collator    *collate.Collator
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, cfg config.CatalogConfig) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		cfg:         cfg,
		collator:    catalog.NewCollator(cfg.Locale),
	}
}

// CatalogQuery 目录查询参数（单次请求的全部输入）
type CatalogQuery struct {
	Search     string
	Sort       string
	Categories []string
	Materials  []string
	Gemstones  []string
	PriceMin   string
	PriceMax   string
	InStock    bool
	Featured   bool
}

// CatalogResult 目录查询结果
type CatalogResult struct {
	Items    []catalog.Item         `json:"items"`
	Total    int                    `json:"total"`
	Filters  catalog.FilterState    `json:"filters"`
	SortKey  catalog.SortKey        `json:"sort_key"`
	Metadata catalog.FilterMetadata `json:"metadata"`
}

// Query 执行目录查询：加载基础列表、归一化筛选输入、运行管线
func (s *CatalogService) Query(ctx context.Context, query CatalogQuery) (*CatalogResult, error) {
	items, err := s.loadBaseItems(ctx)
	if err != nil {
		return nil, err
	}

	pipeline := catalog.NewPipeline(s.cfg.Locale)
	pipeline.SetBaseItems(items)
	pipeline.SetQuery(query.Search)
	pipeline.SetSortKey(catalog.ParseSortKey(query.Sort))

	filters := pipeline.Filters()
	filters.Categories = query.Categories
	filters.Materials = query.Materials
	filters.Gemstones = query.Gemstones
	filters.InStock = query.InStock
	filters.Featured = query.Featured
	if min, ok := parsePrice(query.PriceMin); ok {
		filters.PriceMin = min
	}
	if max, ok := parsePrice(query.PriceMax); ok {
		filters.PriceMax = max
	}
	pipeline.SetFilters(filters)

	visible := pipeline.Run()
	return &CatalogResult{
		Items:    visible,
		Total:    len(visible),
		Filters:  pipeline.Filters(),
		SortKey:  catalog.ParseSortKey(query.Sort),
		Metadata: catalog.Metadata(items),
	}, nil
}

// Metadata 返回筛选侧栏元数据（基于未筛选的基础列表）
func (s *CatalogService) Metadata(ctx context.Context) (catalog.FilterMetadata, error) {
	items, err := s.loadBaseItems(ctx)
	if err != nil {
		return catalog.FilterMetadata{}, err
	}
	return catalog.Metadata(items), nil
}

// InvalidateSnapshot 商品/材质变更后失效基础列表快照
func (s *CatalogService) InvalidateSnapshot(ctx context.Context) {
	if err := cache.Del(ctx, catalogSnapshotCacheKey); err != nil {
		logger.Warnw("catalog_snapshot_invalidate_failed", "error", err)
	}
}

// loadBaseItems 加载归一化基础列表，优先读缓存快照
func (s *CatalogService) loadBaseItems(ctx context.Context) ([]catalog.Item, error) {
	var cached []catalog.Item
	hit, err := cache.GetJSON(ctx, catalogSnapshotCacheKey, &cached)
	if err != nil {
		logger.Warnw("catalog_snapshot_read_failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	products, err := s.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	items := buildCatalogItems(products)

	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	if ttl > 0 {
		if err := cache.SetJSON(ctx, catalogSnapshotCacheKey, items, ttl); err != nil {
			logger.Warnw("catalog_snapshot_write_failed", "error", err)
		}
	}
	return items, nil
}

// buildCatalogItems 将商品记录归一化为目录条目。
// 材质引用在此处解析为名称，缺失材质归一化为空串。
func buildCatalogItems(products []models.Product) []catalog.Item {
	items := make([]catalog.Item, 0, len(products))
	for _, p := range products {
		materialName := ""
		if p.Material != nil {
			materialName = p.Material.Name
		}
		items = append(items, catalog.Item{
			ID:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category.Name,
			Material:    materialName,
			Gemstone:    p.Gemstone,
			Price:       p.PriceAmount.Decimal,
			Stock:       p.Stock,
			Featured:    p.Featured,
			Images:      p.Images,
			CreatedAt:   p.CreatedAt,
		})
	}
	return items
}
