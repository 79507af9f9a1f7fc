package service

import (
	"strings"

	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	materialRepo repository.MaterialRepository
}

// NewProductService 创建商品服务
func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	materialRepo repository.MaterialRepository,
) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		materialRepo: materialRepo,
	}
}

// CreateProductInput 创建/更新商品输入
type CreateProductInput struct {
	CategoryID  uint
	MaterialID  uint
	Slug        string
	Name        string
	Description string
	Gemstone    string
	Price       decimal.Decimal
	Stock       int
	Featured    bool
	Images      []string
	WeightGrams *decimal.Decimal
	IsActive    bool
	SortOrder   int
}

// List 商品列表（管理端）
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// GetBySlug 根据 slug 获取商品
func (s *ProductService) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug, onlyActive)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetByID 根据 ID 获取商品
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	product := models.Product{
		CategoryID:  input.CategoryID,
		MaterialID:  input.MaterialID,
		Slug:        strings.TrimSpace(input.Slug),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Gemstone:    strings.TrimSpace(input.Gemstone),
		PriceAmount: models.NewMoneyFromDecimal(input.Price),
		Stock:       input.Stock,
		Featured:    input.Featured,
		Images:      models.StringArray(input.Images),
		WeightGrams: input.WeightGrams,
		IsActive:    input.IsActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 更新商品
func (s *ProductService) Update(id string, input CreateProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	product.CategoryID = input.CategoryID
	product.MaterialID = input.MaterialID
	product.Slug = strings.TrimSpace(input.Slug)
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Gemstone = strings.TrimSpace(input.Gemstone)
	product.PriceAmount = models.NewMoneyFromDecimal(input.Price)
	product.Stock = input.Stock
	product.Featured = input.Featured
	product.Images = models.StringArray(input.Images)
	product.WeightGrams = input.WeightGrams
	product.IsActive = input.IsActive
	product.SortOrder = input.SortOrder

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// validateInput 校验分类与材质引用是否存在
func (s *ProductService) validateInput(input CreateProductInput) error {
	if input.Price.IsNegative() {
		return ErrBasePriceInvalid
	}
	if input.Stock < 0 {
		return ErrQuantityInvalid
	}

	category, err := s.categoryRepo.GetByID(formatID(input.CategoryID))
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	// MaterialID 为 0 表示商品不关联材质
	if input.MaterialID != 0 {
		material, err := s.materialRepo.GetByID(formatID(input.MaterialID))
		if err != nil {
			return err
		}
		if material == nil {
			return ErrNotFound
		}
	}
	return nil
}
