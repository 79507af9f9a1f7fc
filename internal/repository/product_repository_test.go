package repository

import (
	"strconv"
	"testing"

	"github.com/zhubao-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Material{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, slug, name string, price int64, stock int, featured bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Slug:        slug,
		Name:        name,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Stock:       stock,
		Featured:    featured,
		IsActive:    true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestDecrementStockLifecycle(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "stock-lifecycle-ring", "Stock Lifecycle Ring", 5000, 10, false)

	affected, err := repo.DecrementStock(product.ID, 3)
	if err != nil {
		t.Fatalf("decrement stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("decrement affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Stock != 7 {
		t.Fatalf("stock want 7 got %d", got.Stock)
	}

	affected, err = repo.DecrementStock(product.ID, 8)
	if err != nil {
		t.Fatalf("decrement over available failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("decrement over available affected want 0 got %d", affected)
	}

	affected, err = repo.IncrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("increment stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("increment affected want 1 got %d", affected)
	}

	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Stock != 9 {
		t.Fatalf("stock want 9 got %d", got.Stock)
	}
}

func TestListProductsWithFilters(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "filters-gold-ring", "Filters Gold Ring", 5000, 3, true)
	createTestProduct(t, repo, "filters-silver-ring", "Filters Silver Ring", 1200, 0, false)
	createTestProduct(t, repo, "filters-necklace", "Filters Ruby Necklace", 8000, 5, false)

	featured := true
	products, total, err := repo.List(ProductListFilter{
		Page:     1,
		PageSize: 100,
		Search:   "filters",
		Featured: &featured,
	})
	if err != nil {
		t.Fatalf("list featured failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Slug != "filters-gold-ring" {
		t.Fatalf("featured filter mismatch: total=%d products=%v", total, products)
	}

	products, total, err = repo.List(ProductListFilter{
		Page:        1,
		PageSize:    100,
		Search:      "filters",
		InStockOnly: true,
	})
	if err != nil {
		t.Fatalf("list in-stock failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("in-stock filter total want 2 got %d", total)
	}

	products, total, err = repo.List(ProductListFilter{
		Page:     1,
		PageSize: 100,
		Search:   "RUBY",
	})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 || products[0].Slug != "filters-necklace" {
		t.Fatalf("search filter mismatch: total=%d", total)
	}
}

func TestCountProductBySlug(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "count-slug-ring", "Count Slug Ring", 5000, 1, false)

	count, err := repo.CountBySlug("count-slug-ring", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	id := strconv.FormatUint(uint64(product.ID), 10)
	count, err = repo.CountBySlug("count-slug-ring", &id)
	if err != nil {
		t.Fatalf("count by slug exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count with exclude want 0 got %d", count)
	}
}

func TestCreateInactiveProductPersistsFlag(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	product := &models.Product{
		CategoryID:  1,
		Slug:        "drafted-opal-ring",
		Name:        "Drafted Opal Ring",
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(3000)),
		Stock:       2,
		IsActive:    false,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.IsActive {
		t.Fatalf("inactive product must stay inactive after insert")
	}

	_, total, err := repo.List(ProductListFilter{OnlyActive: true, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("inactive product must not appear in active listing, total=%d", total)
	}
}
