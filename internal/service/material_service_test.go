package service

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/queue"
	"github.com/zhubao-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupMaterialServiceTest(t *testing.T) (*MaterialService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Material{}, &models.Karat{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}
	return NewMaterialService(repository.NewMaterialRepository(db), queueClient), db
}

func createGoldMaterial(t *testing.T, svc *MaterialService, name string, basePrice int64) *models.Material {
	t.Helper()
	material, err := svc.Create(CreateMaterialInput{
		Name:             name,
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: decimal.NewFromInt(basePrice),
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("create material failed: %v", err)
	}
	return material
}

func TestCreateKaratDerivesPrice(t *testing.T) {
	svc, _ := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold Derive", 6000)

	karat, err := svc.CreateKarat(strconv.FormatUint(uint64(material.ID), 10), CreateKaratInput{
		Value:    "22K",
		Purity:   decimal.RequireFromString("91.7"),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create karat failed: %v", err)
	}
	if !karat.PricePerGram.Decimal.Equal(decimal.NewFromInt(5502)) {
		t.Fatalf("derived price want 5502 got %s", karat.PricePerGram)
	}
	if karat.MaterialType != constants.MaterialTypeGold {
		t.Fatalf("material type want gold got %s", karat.MaterialType)
	}
}

func TestCreateKaratRejectsInvalidPurity(t *testing.T) {
	svc, _ := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold Bad Purity", 6000)

	_, err := svc.CreateKarat(strconv.FormatUint(uint64(material.ID), 10), CreateKaratInput{
		Value:  "bad",
		Purity: decimal.RequireFromString("120"),
	})
	if !errors.Is(err, ErrKaratPurityInvalid) {
		t.Fatalf("want ErrKaratPurityInvalid got %v", err)
	}
}

func TestUpdateBasePriceRecomputesKaratPrices(t *testing.T) {
	svc, db := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold Reprice", 6000)
	materialID := strconv.FormatUint(uint64(material.ID), 10)

	created := make(map[string]*models.Karat)
	for _, k := range []struct {
		value  string
		purity string
		active bool
	}{
		{"24K", "100", true},
		{"22K", "91.7", true},
		{"18K", "75", false}, // 停用档位同样参与重算，重新启用时不会带旧价
	} {
		karat, err := svc.CreateKarat(materialID, CreateKaratInput{
			Value:    k.value,
			Purity:   decimal.RequireFromString(k.purity),
			IsActive: k.active,
		})
		if err != nil {
			t.Fatalf("create karat %s failed: %v", k.value, err)
		}
		created[k.value] = karat
	}

	// 手工改价会在下一次保存基准价时被推导结果覆盖
	override := decimal.NewFromInt(9999)
	if _, err := svc.UpdateKarat(strconv.FormatUint(uint64(created["22K"].ID), 10), CreateKaratInput{
		Value:         "22K",
		Purity:        decimal.RequireFromString("91.7"),
		PriceOverride: &override,
		IsActive:      true,
	}); err != nil {
		t.Fatalf("manual price edit failed: %v", err)
	}

	if _, err := svc.Update(materialID, CreateMaterialInput{
		Name:             "Gold Reprice",
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: decimal.NewFromInt(7000),
		IsActive:         true,
	}); err != nil {
		t.Fatalf("update material failed: %v", err)
	}

	expected := map[string]int64{
		"24K": 7000,
		"22K": 6419, // 7000 × 91.7% = 6419
		"18K": 5250,
	}
	var karats []models.Karat
	if err := db.Where("material_id = ?", material.ID).Find(&karats).Error; err != nil {
		t.Fatalf("reload karats failed: %v", err)
	}
	if len(karats) != 3 {
		t.Fatalf("karats want 3 got %d", len(karats))
	}
	for _, karat := range karats {
		want, ok := expected[karat.Value]
		if !ok {
			t.Fatalf("unexpected karat %s", karat.Value)
		}
		if !karat.PricePerGram.Decimal.Equal(decimal.NewFromInt(want)) {
			t.Fatalf("karat %s price want %d got %s", karat.Value, want, karat.PricePerGram)
		}
	}
}

// failingKaratPriceRepo 在第 N 次改价时注入失败
type failingKaratPriceRepo struct {
	repository.MaterialRepository
	failAt int
	calls  int
}

func (r *failingKaratPriceRepo) UpdateKaratPrice(id uint, price models.Money) error {
	r.calls++
	if r.calls == r.failAt {
		return errors.New("karat price write failed")
	}
	return r.MaterialRepository.UpdateKaratPrice(id, price)
}

func TestRecomputeAbortsOnFirstFailure(t *testing.T) {
	svc, db := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold Partial", 6000)
	materialID := strconv.FormatUint(uint64(material.ID), 10)

	for _, k := range []struct {
		value  string
		purity string
	}{
		{"24K", "100"},
		{"22K", "91.7"},
		{"18K", "75"},
	} {
		if _, err := svc.CreateKarat(materialID, CreateKaratInput{
			Value:    k.value,
			Purity:   decimal.RequireFromString(k.purity),
			IsActive: true,
		}); err != nil {
			t.Fatalf("create karat %s failed: %v", k.value, err)
		}
	}

	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}
	failing := &failingKaratPriceRepo{
		MaterialRepository: repository.NewMaterialRepository(db),
		failAt:             2,
	}
	partialSvc := NewMaterialService(failing, queueClient)

	updated, err := partialSvc.Update(materialID, CreateMaterialInput{
		Name:             "Gold Partial",
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: decimal.NewFromInt(7000),
		IsActive:         true,
	})
	if err == nil {
		t.Fatalf("expected recompute failure")
	}
	if updated == nil {
		t.Fatalf("base price save must survive recompute failure")
	}
	if !strings.Contains(err.Error(), "updated 1 of 3") {
		t.Fatalf("error should report progress, got %v", err)
	}

	// 纯度降序逐档重算：24K 已写入新价，失败档及其后保持旧价
	expected := map[string]int64{
		"24K": 7000,
		"22K": 5502,
		"18K": 4500,
	}
	var karats []models.Karat
	if err := db.Where("material_id = ?", material.ID).Find(&karats).Error; err != nil {
		t.Fatalf("reload karats failed: %v", err)
	}
	for _, karat := range karats {
		want := expected[karat.Value]
		if !karat.PricePerGram.Decimal.Equal(decimal.NewFromInt(want)) {
			t.Fatalf("karat %s price want %d got %s", karat.Value, want, karat.PricePerGram)
		}
	}
}

func TestUpdateWithoutPriceChangeSkipsRecompute(t *testing.T) {
	svc, db := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold Stable", 6000)
	materialID := strconv.FormatUint(uint64(material.ID), 10)

	karat, err := svc.CreateKarat(materialID, CreateKaratInput{
		Value:    "22K",
		Purity:   decimal.RequireFromString("91.7"),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create karat failed: %v", err)
	}

	override := decimal.NewFromInt(1111)
	if _, err := svc.UpdateKarat(strconv.FormatUint(uint64(karat.ID), 10), CreateKaratInput{
		Value:         "22K",
		Purity:        decimal.RequireFromString("91.7"),
		PriceOverride: &override,
		IsActive:      true,
	}); err != nil {
		t.Fatalf("manual price edit failed: %v", err)
	}

	if _, err := svc.Update(materialID, CreateMaterialInput{
		Name:             "Gold Stable Renamed",
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: decimal.NewFromInt(6000),
		IsActive:         true,
	}); err != nil {
		t.Fatalf("update material failed: %v", err)
	}

	var reloaded models.Karat
	if err := db.Where("material_id = ?", material.ID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload karat failed: %v", err)
	}
	if !reloaded.PricePerGram.Decimal.Equal(decimal.NewFromInt(1111)) {
		t.Fatalf("price should be untouched when base price unchanged, got %s", reloaded.PricePerGram)
	}
}

func TestDeleteMaterialInUse(t *testing.T) {
	svc, db := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold In Use", 6000)

	product := models.Product{
		CategoryID:  1,
		MaterialID:  material.ID,
		Slug:        "material-in-use-ring",
		Name:        "Material In Use Ring",
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(5000)),
		IsActive:    true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	err := svc.Delete(strconv.FormatUint(uint64(material.ID), 10))
	if !errors.Is(err, ErrMaterialInUse) {
		t.Fatalf("want ErrMaterialInUse got %v", err)
	}
}

func TestUpdateKaratManualPriceOverride(t *testing.T) {
	svc, _ := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold Override", 6000)
	materialID := strconv.FormatUint(uint64(material.ID), 10)

	karat, err := svc.CreateKarat(materialID, CreateKaratInput{
		Value:    "22K",
		Purity:   decimal.RequireFromString("91.7"),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create karat failed: %v", err)
	}
	karatID := strconv.FormatUint(uint64(karat.ID), 10)

	override := decimal.NewFromInt(5800)
	updated, err := svc.UpdateKarat(karatID, CreateKaratInput{
		Value:         "22K",
		Purity:        decimal.RequireFromString("91.7"),
		PriceOverride: &override,
		IsActive:      true,
	})
	if err != nil {
		t.Fatalf("override update failed: %v", err)
	}
	if !updated.PricePerGram.Decimal.Equal(decimal.NewFromInt(5800)) {
		t.Fatalf("manual price want 5800 got %s", updated.PricePerGram)
	}

	negative := decimal.NewFromInt(-1)
	if _, err := svc.UpdateKarat(karatID, CreateKaratInput{
		Value:         "22K",
		Purity:        decimal.RequireFromString("91.7"),
		PriceOverride: &negative,
		IsActive:      true,
	}); !errors.Is(err, ErrKaratPriceInvalid) {
		t.Fatalf("want ErrKaratPriceInvalid got %v", err)
	}

	// 不带手工价的更新回到推导价
	reverted, err := svc.UpdateKarat(karatID, CreateKaratInput{
		Value:    "22K",
		Purity:   decimal.RequireFromString("91.7"),
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("revert update failed: %v", err)
	}
	if !reverted.PricePerGram.Decimal.Equal(decimal.NewFromInt(5502)) {
		t.Fatalf("derived price want 5502 got %s", reverted.PricePerGram)
	}
}

func TestUpdateMaterialTypeSyncsKarats(t *testing.T) {
	svc, db := setupMaterialServiceTest(t)
	material := createGoldMaterial(t, svc, "Gold To Silver", 6000)
	materialID := strconv.FormatUint(uint64(material.ID), 10)

	if _, err := svc.CreateKarat(materialID, CreateKaratInput{
		Value:    "24K",
		Purity:   decimal.RequireFromString("100"),
		IsActive: true,
	}); err != nil {
		t.Fatalf("create karat failed: %v", err)
	}

	if _, err := svc.Update(materialID, CreateMaterialInput{
		Name:             "Gold To Silver",
		Type:             constants.MaterialTypeSilver,
		BasePricePerGram: decimal.NewFromInt(6000),
		IsActive:         true,
	}); err != nil {
		t.Fatalf("update material failed: %v", err)
	}

	var karats []models.Karat
	if err := db.Where("material_id = ?", material.ID).Find(&karats).Error; err != nil {
		t.Fatalf("reload karats failed: %v", err)
	}
	if len(karats) != 1 {
		t.Fatalf("karats want 1 got %d", len(karats))
	}
	if karats[0].MaterialType != constants.MaterialTypeSilver {
		t.Fatalf("karat material type must follow material, got %s", karats[0].MaterialType)
	}
}
