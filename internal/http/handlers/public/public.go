package public

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/zhubao-next/internal/cache"
	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/repository"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig 获取全局站点配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	siteConfig, err := h.SettingService.GetSiteConfig()
	if err != nil {
		respondError(c, response.CodeInternal, "error.config_fetch_failed", err)
		return
	}

	data := map[string]interface{}{
		"languages":   []string{"zh-CN", "en-US"},
		"site_config": siteConfig,
		"currency":    h.SettingService.SiteCurrency(),
		"captcha": map[string]interface{}{
			"enabled": h.CaptchaService.Enabled(),
		},
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// GetCatalog 目录查询：筛选、排序与侧栏元数据一次返回
func (h *Handler) GetCatalog(c *gin.Context) {
	query := service.CatalogQuery{
		Search:     strings.TrimSpace(c.Query("search")),
		Sort:       c.Query("sort"),
		Categories: splitListParam(c.Query("categories")),
		Materials:  splitListParam(c.Query("materials")),
		Gemstones:  splitListParam(c.Query("gemstones")),
		PriceMin:   c.Query("price_min"),
		PriceMax:   c.Query("price_max"),
		InStock:    parseBoolParam(c.Query("in_stock")),
		Featured:   parseBoolParam(c.Query("featured")),
	}

	result, err := h.CatalogService.Query(c.Request.Context(), query)
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, result)
}

// GetCatalogFilters 获取筛选侧栏元数据
func (h *Handler) GetCatalogFilters(c *gin.Context) {
	metadata, err := h.CatalogService.Metadata(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, metadata)
}

// GetProductBySlug 根据 slug 获取商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": categories})
}

// GetMaterials 获取材质列表（含启用中的纯度档位）
func (h *Handler) GetMaterials(c *gin.Context) {
	materials, err := h.MaterialService.List(true)
	if err != nil {
		respondError(c, response.CodeInternal, "error.material_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": materials})
}

// GetPosts 获取已发布文章列表
func (h *Handler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	posts, total, err := h.PostService.List(repository.PostListFilter{
		Page:          page,
		PageSize:      pageSize,
		Type:          strings.TrimSpace(c.Query("type")),
		OnlyPublished: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, posts, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetPostBySlug 根据 slug 获取已发布文章
func (h *Handler) GetPostBySlug(c *gin.Context) {
	post, err := h.PostService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.Success(c, post)
}

func splitListParam(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func parseBoolParam(raw string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return value
}
