package service

import (
	"context"
	"testing"

	"github.com/zhubao-next/internal/config"
	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Material{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewCatalogService(repository.NewProductRepository(db), config.CatalogConfig{
		Locale:          "en",
		CacheTTLSeconds: 0,
	})
	return svc, db
}

func seedCatalogProducts(t *testing.T, db *gorm.DB) {
	t.Helper()
	category := models.Category{Slug: "catalog-rings", Name: "Rings"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	material := models.Material{
		Name:             "Gold Catalog",
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(6000)),
		IsActive:         true,
	}
	if err := db.Create(&material).Error; err != nil {
		t.Fatalf("create material failed: %v", err)
	}

	products := []models.Product{
		{CategoryID: category.ID, MaterialID: material.ID, Slug: "catalog-ring-a", Name: "Ring A", Description: "classic band", Gemstone: "Diamond", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(5000)), Stock: 3, Featured: true, IsActive: true},
		{CategoryID: category.ID, Slug: "catalog-ring-b", Name: "Ring B", Description: "plain band", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(1200)), Stock: 0, IsActive: true},
		{CategoryID: category.ID, MaterialID: material.ID, Slug: "catalog-hidden", Name: "Hidden Ring", PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(900)), Stock: 2, IsActive: false},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
}

func TestCatalogQueryNormalizesAndFilters(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalogProducts(t, db)

	result, err := svc.Query(context.Background(), CatalogQuery{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	// 未上架商品不进入基础列表
	if result.Total != 2 {
		t.Fatalf("total want 2 got %d", result.Total)
	}
	for _, item := range result.Items {
		if item.Slug == "catalog-hidden" {
			t.Fatalf("inactive product must not appear")
		}
		if item.Slug == "catalog-ring-a" && item.Material != "Gold Catalog" {
			t.Fatalf("material should resolve to name, got %q", item.Material)
		}
		if item.Slug == "catalog-ring-b" && item.Material != "" {
			t.Fatalf("missing material should normalize to empty, got %q", item.Material)
		}
	}

	result, err = svc.Query(context.Background(), CatalogQuery{
		Materials: []string{"Gold Catalog"},
	})
	if err != nil {
		t.Fatalf("query with material failed: %v", err)
	}
	if result.Total != 1 || result.Items[0].Slug != "catalog-ring-a" {
		t.Fatalf("material filter mismatch: %+v", result.Items)
	}

	result, err = svc.Query(context.Background(), CatalogQuery{
		InStock: true,
		Sort:    constants.SortKeyPriceHigh,
	})
	if err != nil {
		t.Fatalf("query in stock failed: %v", err)
	}
	if result.Total != 1 || result.Items[0].Slug != "catalog-ring-a" {
		t.Fatalf("in-stock filter mismatch: %+v", result.Items)
	}
}

func TestCatalogQueryPriceRangeDefaults(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalogProducts(t, db)

	result, err := svc.Query(context.Background(), CatalogQuery{PriceMin: "-10"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !result.Filters.PriceMin.IsZero() {
		t.Fatalf("negative min should clamp to 0, got %s", result.Filters.PriceMin)
	}
	if !result.Filters.PriceMax.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("default max should be base list max, got %s", result.Filters.PriceMax)
	}

	meta, err := svc.Metadata(context.Background())
	if err != nil {
		t.Fatalf("metadata failed: %v", err)
	}
	if meta.Availability.InStock != 1 || meta.Availability.OutOfStock != 1 {
		t.Fatalf("availability mismatch: %+v", meta.Availability)
	}
}
