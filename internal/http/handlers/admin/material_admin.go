package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetAdminMaterials 获取材质列表 (Admin)
func (h *Handler) GetAdminMaterials(c *gin.Context) {
	materials, err := h.MaterialService.List(false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.material_fetch_failed", err)
		return
	}
	response.Success(c, materials)
}

// GetAdminMaterial 获取材质详情 (Admin)
func (h *Handler) GetAdminMaterial(c *gin.Context) {
	material, err := h.MaterialService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.material_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.material_fetch_failed", err)
		return
	}
	response.Success(c, material)
}

// MaterialRequest 创建/更新材质请求
type MaterialRequest struct {
	Name             string `json:"name" binding:"required"`
	Type             string `json:"type" binding:"required"` // gold 或 silver
	BasePricePerGram string `json:"base_price_per_gram" binding:"required"`
	IsActive         *bool  `json:"is_active"`
}

func (req MaterialRequest) toServiceInput() (service.CreateMaterialInput, error) {
	basePrice, err := decimal.NewFromString(strings.TrimSpace(req.BasePricePerGram))
	if err != nil {
		return service.CreateMaterialInput{}, err
	}
	input := service.CreateMaterialInput{
		Name:             req.Name,
		Type:             req.Type,
		BasePricePerGram: basePrice,
		IsActive:         true,
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	return input, nil
}

func respondMaterialSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.material_not_found", nil)
	case errors.Is(err, service.ErrMaterialNameRequired):
		respondError(c, response.CodeBadRequest, "error.material_name_required", nil)
	case errors.Is(err, service.ErrMaterialNameExists):
		respondError(c, response.CodeBadRequest, "error.material_name_exists", nil)
	case errors.Is(err, service.ErrMaterialTypeInvalid):
		respondError(c, response.CodeBadRequest, "error.material_type_invalid", nil)
	case errors.Is(err, service.ErrBasePriceInvalid):
		respondError(c, response.CodeBadRequest, "error.base_price_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.material_save_failed", err)
	}
}

// CreateMaterial 创建材质
func (h *Handler) CreateMaterial(c *gin.Context) {
	var req MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.base_price_invalid", err)
		return
	}

	material, err := h.MaterialService.Create(input)
	if err != nil {
		respondMaterialSaveError(c, err)
		return
	}
	response.Success(c, material)
}

// UpdateMaterial 更新材质。
// 基础克价变化时会按纯度重算该材质全部档位价格，
// 重算失败不阻塞保存，由队列任务补偿。
func (h *Handler) UpdateMaterial(c *gin.Context) {
	var req MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.base_price_invalid", err)
		return
	}

	material, err := h.MaterialService.Update(c.Param("id"), input)
	if err != nil {
		if material != nil {
			// 材质已保存，仅档位重算失败
			h.CatalogService.InvalidateSnapshot(c.Request.Context())
			response.SuccessWithMsg(c, "karat reprice deferred", material)
			return
		}
		respondMaterialSaveError(c, err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, material)
}

// DeleteMaterial 删除材质
func (h *Handler) DeleteMaterial(c *gin.Context) {
	if err := h.MaterialService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMaterialInUse) {
			respondError(c, response.CodeBadRequest, "error.material_in_use", nil)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.material_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.material_delete_failed", err)
		return
	}
	response.Success(c, nil)
}

// RepriceMaterialKarats 手动触发材质档位价格重算
func (h *Handler) RepriceMaterialKarats(c *gin.Context) {
	materialID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || materialID == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}
	if err := h.MaterialService.RecomputeKaratPrices(uint(materialID)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.material_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.karat_save_failed", err)
		return
	}
	h.CatalogService.InvalidateSnapshot(c.Request.Context())
	response.Success(c, gin.H{"repriced": true})
}

// ====================  纯度档位管理  ====================

// KaratRequest 创建/更新纯度档位请求。
// price_per_gram 非空时作为手工改价落库，基准价保存时会被推导结果覆盖。
type KaratRequest struct {
	Value        string `json:"value" binding:"required"` // 例如 24K、22K、925
	Purity       string `json:"purity" binding:"required"`
	PricePerGram string `json:"price_per_gram"`
	IsActive     *bool  `json:"is_active"`
}

func (req KaratRequest) toServiceInput() (service.CreateKaratInput, error) {
	purity, err := decimal.NewFromString(strings.TrimSpace(req.Purity))
	if err != nil {
		return service.CreateKaratInput{}, err
	}
	input := service.CreateKaratInput{
		Value:    req.Value,
		Purity:   purity,
		IsActive: true,
	}
	if raw := strings.TrimSpace(req.PricePerGram); raw != "" {
		override, err := decimal.NewFromString(raw)
		if err != nil {
			return service.CreateKaratInput{}, service.ErrKaratPriceInvalid
		}
		input.PriceOverride = &override
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
	}
	return input, nil
}

func respondKaratSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.material_not_found", nil)
	case errors.Is(err, service.ErrKaratPurityInvalid):
		respondError(c, response.CodeBadRequest, "error.karat_purity_invalid", nil)
	case errors.Is(err, service.ErrKaratPriceInvalid):
		respondError(c, response.CodeBadRequest, "error.karat_price_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.karat_save_failed", err)
	}
}

// CreateKarat 为材质创建纯度档位
func (h *Handler) CreateKarat(c *gin.Context) {
	var req KaratRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		if errors.Is(err, service.ErrKaratPriceInvalid) {
			respondError(c, response.CodeBadRequest, "error.karat_price_invalid", nil)
			return
		}
		respondError(c, response.CodeBadRequest, "error.karat_purity_invalid", err)
		return
	}

	karat, err := h.MaterialService.CreateKarat(c.Param("id"), input)
	if err != nil {
		respondKaratSaveError(c, err)
		return
	}
	response.Success(c, karat)
}

// UpdateKarat 更新纯度档位
func (h *Handler) UpdateKarat(c *gin.Context) {
	var req KaratRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	input, err := req.toServiceInput()
	if err != nil {
		if errors.Is(err, service.ErrKaratPriceInvalid) {
			respondError(c, response.CodeBadRequest, "error.karat_price_invalid", nil)
			return
		}
		respondError(c, response.CodeBadRequest, "error.karat_purity_invalid", err)
		return
	}

	karat, err := h.MaterialService.UpdateKarat(c.Param("id"), input)
	if err != nil {
		respondKaratSaveError(c, err)
		return
	}
	response.Success(c, karat)
}

// DeleteKarat 删除纯度档位
func (h *Handler) DeleteKarat(c *gin.Context) {
	if err := h.MaterialService.DeleteKarat(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.material_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.karat_delete_failed", err)
		return
	}
	response.Success(c, nil)
}
