package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zhubao-next/internal/cache"
	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/i18n"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/repository"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const publicConfigCacheKey = "public:config"

// LoginRequest 登录请求
type LoginRequest struct {
	Username       string                       `json:"username" binding:"required"`
	Password       string                       `json:"password" binding:"required"`
	CaptchaPayload service.CaptchaVerifyPayload `json:"captcha_payload"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(req.CaptchaPayload); captchaErr != nil {
			switch {
			case errors.Is(captchaErr, service.ErrCaptchaRequired):
				respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
			case errors.Is(captchaErr, service.ErrCaptchaInvalid):
				respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
			default:
				respondError(c, response.CodeInternal, "error.captcha_config_invalid", captchaErr)
			}
			return
		}
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.login_failed", err)
		return
	}
	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":       admin.ID,
			"username": admin.Username,
			"is_super": admin.IsSuper,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetAdminMe 获取当前管理员信息与角色
func (h *Handler) GetAdminMe(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil || admin == nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}

	roles := make([]string, 0)
	if !admin.IsSuper {
		roles, err = h.AuthzService.GetAdminRoles(id)
		if err != nil {
			respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
			return
		}
	}

	response.Success(c, gin.H{
		"id":            admin.ID,
		"username":      admin.Username,
		"is_super":      admin.IsSuper,
		"roles":         roles,
		"last_login_at": admin.LastLoginAt,
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword 修改管理员密码
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			respondError(c, response.CodeBadRequest, "error.invalid_password", nil)
			return
		}
		if errors.Is(err, service.ErrWeakPassword) {
			locale := i18n.ResolveLocale(c)
			if perr, ok := err.(interface {
				Key() string
				Args() []interface{}
			}); ok {
				msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
				respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
				return
			}
			respondError(c, response.CodeBadRequest, "error.weak_password", nil)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	response.Success(c, nil)
}

// ====================  商品管理  ====================

// GetAdminProducts 获取商品列表 (Admin)
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   c.Query("category_id"),
		MaterialID:   c.Query("material_id"),
		Gemstone:     strings.TrimSpace(c.Query("gemstone")),
		Search:       strings.TrimSpace(c.Query("search")),
		WithCategory: true,
		WithMaterial: true,
	}
	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminProduct 获取商品详情 (Admin)
func (h *Handler) GetAdminProduct(c *gin.Context) {
	product, err := h.ProductService.GetByID(c.Param("id"))
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

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	CategoryID  uint     `json:"category_id" binding:"required"`
	MaterialID  uint     `json:"material_id"`
	Slug        string   `json:"slug" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Gemstone    string   `json:"gemstone"`
	Price       string   `json:"price" binding:"required"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
	Images      []string `json:"images"`
	WeightGrams string   `json:"weight_grams"`
	IsActive    *bool    `json:"is_active"`
	SortOrder   int      `json:"sort_order"`
}

func (req CreateProductRequest) toServiceInput() (service.CreateProductInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return service.CreateProductInput{}, err
	}
	input := service.CreateProductInput{
		CategoryID:  req.CategoryID,
		MaterialID:  req.MaterialID,
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Gemstone:    req.Gemstone,
		Price:       price,
		Stock:       req.Stock,
		Featured:    req.Featured,
		Images:      req.Images,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	if raw := strings.TrimSpace(req.WeightGrams); raw != "" {
		weight, werr := decimal.NewFromString(raw)
		if werr != nil {
			return service.CreateProductInput{}, werr
		}
		input.WeightGrams = &weight
	}
	return input, nil
}

func respondProductSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrBasePriceInvalid):
		respondError(c, response.CodeBadRequest, "error.base_price_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
	}
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.base_price_invalid", err)
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		respondProductSaveError(c, err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.base_price_invalid", err)
		return
	}

	product, err := h.ProductService.Update(c.Param("id"), input)
	if err != nil {
		respondProductSaveError(c, err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, product)
}

// DeleteProduct 删除商品（软删除）
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.ProductService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_delete_failed", err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, nil)
}

// ====================  分类管理  ====================

// GetAdminCategories 获取分类列表 (Admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	category, err := h.CategoryService.Create(service.CreateCategoryInput{
		Slug:      req.Slug,
		Name:      req.Name,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_save_failed", err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	category, err := h.CategoryService.Update(c.Param("id"), service.CreateCategoryInput{
		Slug:      req.Slug,
		Name:      req.Name,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		if errors.Is(err, service.ErrSlugExists) {
			respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_save_failed", err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, category)
}

// DeleteCategory 删除分类（软删除）
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.CategoryService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCategoryInUse) {
			respondError(c, response.CodeBadRequest, "error.category_in_use", nil)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.category_delete_failed", err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, nil)
}

// ====================  文章管理  ====================

// GetAdminPosts 获取文章列表 (Admin)
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	posts, total, err := h.PostService.List(repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     strings.TrimSpace(c.Query("type")),
		Search:   strings.TrimSpace(c.Query("search")),
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

// CreatePostRequest 创建文章请求
type CreatePostRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Type        string `json:"type" binding:"required"` // blog 或 policy
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	IsPublished bool   `json:"is_published"`
}

func respondPostSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	default:
		respondError(c, response.CodeInternal, "error.post_save_failed", err)
	}
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	post, err := h.PostService.Create(service.CreatePostInput{
		Slug:        req.Slug,
		Type:        req.Type,
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		respondPostSaveError(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost 更新文章
func (h *Handler) UpdatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	post, err := h.PostService.Update(c.Param("id"), service.CreatePostInput{
		Slug:        req.Slug,
		Type:        req.Type,
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		respondPostSaveError(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost 删除文章（软删除）
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.PostService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_delete_failed", err)
		return
	}
	response.Success(c, nil)
}

// ====================  设置管理  ====================

// GetSettings 获取设置
func (h *Handler) GetSettings(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		key = constants.SettingKeySiteConfig
	}

	value, err := h.SettingService.Get(key)
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_fetch_failed", err)
		return
	}
	response.Success(c, value)
}

// UpdateSettingsRequest 更新设置请求
type UpdateSettingsRequest struct {
	Value models.JSON `json:"value" binding:"required"`
}

// UpdateSettings 更新设置
func (h *Handler) UpdateSettings(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	value, err := h.SettingService.Update(key, req.Value)
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_save_failed", err)
		return
	}

	if key == constants.SettingKeySiteConfig {
		_ = cache.Del(c.Request.Context(), publicConfigCacheKey)
	}
	response.Success(c, value)
}
