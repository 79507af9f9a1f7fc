package repository

import (
	"testing"

	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupMaterialRepositoryTest(t *testing.T) (*GormMaterialRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Material{}, &models.Karat{}); err != nil {
		t.Fatalf("migrate material failed: %v", err)
	}
	return NewMaterialRepository(db), db
}

func TestMaterialKaratLifecycle(t *testing.T) {
	repo, db := setupMaterialRepositoryTest(t)

	material := &models.Material{
		Name:             "Gold Lifecycle",
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(6000)),
		IsActive:         true,
	}
	if err := repo.Create(material); err != nil {
		t.Fatalf("create material failed: %v", err)
	}

	karat := &models.Karat{
		MaterialID:   material.ID,
		Value:        "22K",
		Purity:       decimal.RequireFromString("91.7"),
		MaterialType: constants.MaterialTypeGold,
		PricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(5502)),
		IsActive:     true,
	}
	if err := repo.CreateKarat(karat); err != nil {
		t.Fatalf("create karat failed: %v", err)
	}

	if err := repo.UpdateKaratPrice(karat.ID, models.NewMoneyFromDecimal(decimal.NewFromInt(5777))); err != nil {
		t.Fatalf("update karat price failed: %v", err)
	}

	var got models.Karat
	if err := db.First(&got, karat.ID).Error; err != nil {
		t.Fatalf("reload karat failed: %v", err)
	}
	if !got.PricePerGram.Decimal.Equal(decimal.NewFromInt(5777)) {
		t.Fatalf("karat price want 5777 got %s", got.PricePerGram)
	}

	karats, err := repo.ListKarats(material.ID, true)
	if err != nil {
		t.Fatalf("list karats failed: %v", err)
	}
	if len(karats) != 1 || karats[0].Value != "22K" {
		t.Fatalf("list karats mismatch: %v", karats)
	}
}

func TestListMaterialsOrdersKaratsByPurity(t *testing.T) {
	repo, _ := setupMaterialRepositoryTest(t)

	material := &models.Material{
		Name:             "Gold Purity Order",
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(6000)),
		IsActive:         true,
	}
	if err := repo.Create(material); err != nil {
		t.Fatalf("create material failed: %v", err)
	}
	for _, k := range []struct {
		value  string
		purity string
	}{
		{"18K", "75"},
		{"24K", "100"},
		{"22K", "91.7"},
	} {
		karat := &models.Karat{
			MaterialID:   material.ID,
			Value:        k.value,
			Purity:       decimal.RequireFromString(k.purity),
			MaterialType: constants.MaterialTypeGold,
			IsActive:     true,
		}
		if err := repo.CreateKarat(karat); err != nil {
			t.Fatalf("create karat %s failed: %v", k.value, err)
		}
	}

	materials, err := repo.List(MaterialListFilter{Type: constants.MaterialTypeGold, WithKarats: true})
	if err != nil {
		t.Fatalf("list materials failed: %v", err)
	}
	var found *models.Material
	for i := range materials {
		if materials[i].Name == "Gold Purity Order" {
			found = &materials[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("material not found in list")
	}
	if len(found.Karats) != 3 {
		t.Fatalf("karats want 3 got %d", len(found.Karats))
	}
	if found.Karats[0].Value != "24K" || found.Karats[1].Value != "22K" || found.Karats[2].Value != "18K" {
		t.Fatalf("karats should order by purity desc: %v", found.Karats)
	}
}

func TestCreateInactiveMaterialAndKaratPersistFlags(t *testing.T) {
	repo, db := setupMaterialRepositoryTest(t)

	material := &models.Material{
		Name:             "Retired Silver",
		Type:             constants.MaterialTypeSilver,
		BasePricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(80)),
		IsActive:         false,
	}
	if err := repo.Create(material); err != nil {
		t.Fatalf("create material failed: %v", err)
	}
	karat := &models.Karat{
		MaterialID:   material.ID,
		Value:        "925",
		Purity:       decimal.RequireFromString("92.5"),
		MaterialType: constants.MaterialTypeSilver,
		PricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(74)),
		IsActive:     false,
	}
	if err := repo.CreateKarat(karat); err != nil {
		t.Fatalf("create karat failed: %v", err)
	}

	var reloadedMaterial models.Material
	if err := db.First(&reloadedMaterial, material.ID).Error; err != nil {
		t.Fatalf("reload material failed: %v", err)
	}
	if reloadedMaterial.IsActive {
		t.Fatalf("inactive material must stay inactive after insert")
	}

	karats, err := repo.ListKarats(material.ID, true)
	if err != nil {
		t.Fatalf("list active karats failed: %v", err)
	}
	if len(karats) != 0 {
		t.Fatalf("inactive karat must not appear in active listing, got %d", len(karats))
	}
}
