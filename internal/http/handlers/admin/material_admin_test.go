package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zhubao-next/internal/config"
	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/provider"
	"github.com/zhubao-next/internal/repository"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupMaterialAdminHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:material_admin_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Material{},
		&models.Karat{},
		&models.Product{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	materialRepo := repository.NewMaterialRepository(db)
	productRepo := repository.NewProductRepository(db)

	h := &Handler{Container: &provider.Container{
		MaterialService: service.NewMaterialService(materialRepo, nil),
		CatalogService:  service.NewCatalogService(productRepo, config.CatalogConfig{}),
	}}
	return h, db
}

func newMaterialAdminRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.POST("/admin/materials", h.CreateMaterial)
	r.PUT("/admin/materials/:id", h.UpdateMaterial)
	r.DELETE("/admin/materials/:id", h.DeleteMaterial)
	r.POST("/admin/materials/:id/karats", h.CreateKarat)
	r.PUT("/admin/karats/:id", h.UpdateKarat)
	return r
}

func performMaterialAdminRequest(t *testing.T, r *gin.Engine, method, path, body string) (int, json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp struct {
		StatusCode int             `json:"status_code"`
		Data       json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v body=%s", err, w.Body.String())
	}
	return resp.StatusCode, resp.Data
}

func seedHandlerMaterial(t *testing.T, db *gorm.DB, name string, basePrice int64) models.Material {
	t.Helper()
	material := models.Material{
		Name:             name,
		Type:             constants.MaterialTypeGold,
		BasePricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(basePrice)),
		IsActive:         true,
	}
	if err := db.Create(&material).Error; err != nil {
		t.Fatalf("create material failed: %v", err)
	}
	return material
}

func TestCreateMaterialHandler(t *testing.T) {
	h, db := setupMaterialAdminHandlerTest(t)
	r := newMaterialAdminRouter(h)

	code, data := performMaterialAdminRequest(t, r, http.MethodPost, "/admin/materials",
		`{"name":"Gold","type":"gold","base_price_per_gram":"6000.00"}`)
	if code != 0 {
		t.Fatalf("create material status_code got %d", code)
	}
	var created models.Material
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("unmarshal material failed: %v", err)
	}
	if created.ID == 0 || created.Name != "Gold" {
		t.Fatalf("unexpected created material: %+v", created)
	}

	var count int64
	if err := db.Model(&models.Material{}).Count(&count).Error; err != nil {
		t.Fatalf("count materials failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 material, got %d", count)
	}

	cases := []struct {
		name string
		body string
	}{
		{"duplicate name", `{"name":"Gold","type":"gold","base_price_per_gram":"5000"}`},
		{"invalid type", `{"name":"Platinum","type":"platinum","base_price_per_gram":"9000"}`},
		{"bad price string", `{"name":"Silver","type":"silver","base_price_per_gram":"80.x"}`},
		{"negative price", `{"name":"Silver","type":"silver","base_price_per_gram":"-80"}`},
	}
	for _, tc := range cases {
		code, _ := performMaterialAdminRequest(t, r, http.MethodPost, "/admin/materials", tc.body)
		if code != 400 {
			t.Fatalf("%s: status_code got %d, expected 400", tc.name, code)
		}
	}
}

func TestCreateKaratHandlerDerivesPrice(t *testing.T) {
	h, db := setupMaterialAdminHandlerTest(t)
	r := newMaterialAdminRouter(h)
	material := seedHandlerMaterial(t, db, "Gold", 6000)

	code, data := performMaterialAdminRequest(t, r, http.MethodPost,
		fmt.Sprintf("/admin/materials/%d/karats", material.ID),
		`{"value":"22K","purity":"91.6"}`)
	if code != 0 {
		t.Fatalf("create karat status_code got %d", code)
	}
	var karat models.Karat
	if err := json.Unmarshal(data, &karat); err != nil {
		t.Fatalf("unmarshal karat failed: %v", err)
	}
	// 6000 × 91.6% = 5496，整数化后无舍入余量
	if !karat.PricePerGram.Decimal.Equal(decimal.NewFromInt(5496)) {
		t.Fatalf("derived price got %s, expected 5496", karat.PricePerGram.Decimal)
	}
	if karat.MaterialType != constants.MaterialTypeGold {
		t.Fatalf("karat material type got %q", karat.MaterialType)
	}

	code, _ = performMaterialAdminRequest(t, r, http.MethodPost,
		fmt.Sprintf("/admin/materials/%d/karats", material.ID),
		`{"value":"bad","purity":"120"}`)
	if code != 400 {
		t.Fatalf("out-of-range purity status_code got %d, expected 400", code)
	}

	code, _ = performMaterialAdminRequest(t, r, http.MethodPost,
		"/admin/materials/99999/karats", `{"value":"24K","purity":"99.9"}`)
	if code != 404 {
		t.Fatalf("unknown material status_code got %d, expected 404", code)
	}
}

func TestUpdateKaratHandlerManualPrice(t *testing.T) {
	h, db := setupMaterialAdminHandlerTest(t)
	r := newMaterialAdminRouter(h)
	material := seedHandlerMaterial(t, db, "Gold", 6000)

	_, data := performMaterialAdminRequest(t, r, http.MethodPost,
		fmt.Sprintf("/admin/materials/%d/karats", material.ID),
		`{"value":"22K","purity":"91.6"}`)
	var karat models.Karat
	if err := json.Unmarshal(data, &karat); err != nil {
		t.Fatalf("unmarshal karat failed: %v", err)
	}

	code, data := performMaterialAdminRequest(t, r, http.MethodPut,
		fmt.Sprintf("/admin/karats/%d", karat.ID),
		`{"value":"22K","purity":"91.6","price_per_gram":"5800"}`)
	if code != 0 {
		t.Fatalf("manual price update status_code got %d", code)
	}
	var updated models.Karat
	if err := json.Unmarshal(data, &updated); err != nil {
		t.Fatalf("unmarshal updated karat failed: %v", err)
	}
	if !updated.PricePerGram.Decimal.Equal(decimal.NewFromInt(5800)) {
		t.Fatalf("manual price want 5800 got %s", updated.PricePerGram.Decimal)
	}

	code, _ = performMaterialAdminRequest(t, r, http.MethodPut,
		fmt.Sprintf("/admin/karats/%d", karat.ID),
		`{"value":"22K","purity":"91.6","price_per_gram":"abc"}`)
	if code != 400 {
		t.Fatalf("malformed manual price status_code got %d, expected 400", code)
	}
}

func TestUpdateMaterialRepricesKarats(t *testing.T) {
	h, db := setupMaterialAdminHandlerTest(t)
	r := newMaterialAdminRouter(h)
	material := seedHandlerMaterial(t, db, "Gold", 6000)

	karat := models.Karat{
		MaterialID:   material.ID,
		Value:        "22K",
		Purity:       decimal.RequireFromString("91.6"),
		MaterialType: constants.MaterialTypeGold,
		PricePerGram: models.NewMoneyFromDecimal(decimal.NewFromInt(5496)),
		IsActive:     true,
	}
	if err := db.Create(&karat).Error; err != nil {
		t.Fatalf("create karat failed: %v", err)
	}

	code, _ := performMaterialAdminRequest(t, r, http.MethodPut,
		fmt.Sprintf("/admin/materials/%d", material.ID),
		`{"name":"Gold","type":"gold","base_price_per_gram":"6500"}`)
	if code != 0 {
		t.Fatalf("update material status_code got %d", code)
	}

	var reloaded models.Karat
	if err := db.First(&reloaded, karat.ID).Error; err != nil {
		t.Fatalf("reload karat failed: %v", err)
	}
	// 6500 × 91.6% = 5954
	if !reloaded.PricePerGram.Decimal.Equal(decimal.NewFromInt(5954)) {
		t.Fatalf("repriced karat got %s, expected 5954", reloaded.PricePerGram.Decimal)
	}
}

func TestDeleteMaterialHandler(t *testing.T) {
	h, db := setupMaterialAdminHandlerTest(t)
	r := newMaterialAdminRouter(h)

	used := seedHandlerMaterial(t, db, "Gold", 6000)
	unused := seedHandlerMaterial(t, db, "Silver", 80)

	product := models.Product{
		CategoryID:  1,
		MaterialID:  used.ID,
		Slug:        "classic-gold-band",
		Name:        "Classic Gold Band",
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(12000)),
		Stock:       3,
		IsActive:    true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	code, _ := performMaterialAdminRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/admin/materials/%d", used.ID), "")
	if code != 400 {
		t.Fatalf("delete in-use material status_code got %d, expected 400", code)
	}

	code, _ = performMaterialAdminRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/admin/materials/%d", unused.ID), "")
	if code != 0 {
		t.Fatalf("delete unused material status_code got %d", code)
	}

	var remaining int64
	if err := db.Model(&models.Material{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count materials failed: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected 1 material after delete, got %d", remaining)
	}
}
