package main

import (
	"time"

	"github.com/zhubao-next/internal/config"
	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/logger"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/pricing"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Rings", Slug: "rings", SortOrder: 1},
		{Name: "Necklaces", Slug: "necklaces", SortOrder: 2},
		{Name: "Earrings", Slug: "earrings", SortOrder: 3},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"rings", "necklaces", "earrings"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加材质与纯度档位
	goldID := seedMaterial(stdLog, "Gold", constants.MaterialTypeGold, decimal.NewFromInt(6000), map[string]decimal.Decimal{
		"24K": decimal.RequireFromString("99.9"),
		"22K": decimal.RequireFromString("91.6"),
		"18K": decimal.RequireFromString("75"),
	})
	silverID := seedMaterial(stdLog, "Silver", constants.MaterialTypeSilver, decimal.NewFromInt(80), map[string]decimal.Decimal{
		"999": decimal.RequireFromString("99.9"),
		"925": decimal.RequireFromString("92.5"),
	})

	// 添加商品
	weight := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	products := []models.Product{
		{
			CategoryID:  categoryIDs["rings"],
			MaterialID:  goldID,
			Slug:        "classic-gold-band",
			Name:        "Classic Gold Band",
			Description: "A timeless 22K gold wedding band with a polished finish.",
			PriceAmount: models.NewMoneyFromInt(28500),
			Stock:       12,
			Featured:    true,
			WeightGrams: weight("4.2"),
			IsActive:    true,
			SortOrder:   1,
		},
		{
			CategoryID:  categoryIDs["rings"],
			MaterialID:  goldID,
			Slug:        "emerald-solitaire-ring",
			Name:        "Emerald Solitaire Ring",
			Description: "18K gold ring set with a single emerald.",
			Gemstone:    "Emerald",
			PriceAmount: models.NewMoneyFromInt(45200),
			Stock:       5,
			Featured:    true,
			WeightGrams: weight("3.8"),
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  categoryIDs["necklaces"],
			MaterialID:  goldID,
			Slug:        "rope-chain-necklace",
			Name:        "Rope Chain Necklace",
			Description: "Hand-braided 22K gold rope chain, 45cm.",
			PriceAmount: models.NewMoneyFromInt(98000),
			Stock:       8,
			WeightGrams: weight("15.5"),
			IsActive:    true,
			SortOrder:   3,
		},
		{
			CategoryID:  categoryIDs["earrings"],
			MaterialID:  silverID,
			Slug:        "pearl-drop-earrings",
			Name:        "Pearl Drop Earrings",
			Description: "Sterling silver earrings with freshwater pearl drops.",
			Gemstone:    "Pearl",
			PriceAmount: models.NewMoneyFromInt(3200),
			Stock:       30,
			WeightGrams: weight("2.1"),
			IsActive:    true,
			SortOrder:   4,
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	// 站点配置
	var siteConfig models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeySiteConfig).First(&siteConfig).Error; err != nil {
		siteConfig = models.Setting{
			Key: constants.SettingKeySiteConfig,
			ValueJSON: models.JSON(map[string]interface{}{
				"site_name": "Zhubao Jewelry",
				"currency":  "CNY",
			}),
		}
		if err := models.DB.Create(&siteConfig).Error; err != nil {
			stdLog.Printf("Failed to create site config: %v", err)
		} else {
			stdLog.Printf("Created site config")
		}
	}

	// 示例文章
	now := time.Now()
	posts := []models.Post{
		{
			Slug:        "care-guide",
			Type:        constants.PostTypeBlog,
			Title:       "Jewelry Care Guide",
			Summary:     "How to keep gold and silver pieces looking new.",
			Content:     "Store pieces separately, avoid chemicals, and polish with a soft cloth.",
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Slug:        "return-policy",
			Type:        constants.PostTypePolicy,
			Title:       "Return Policy",
			Summary:     "Returns accepted within 14 days.",
			Content:     "Unworn items may be returned within 14 days of delivery with the original receipt.",
			IsPublished: true,
			PublishedAt: &now,
		},
	}
	for _, post := range posts {
		var existing models.Post
		if err := models.DB.Where("slug = ?", post.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&post).Error; err != nil {
				stdLog.Printf("Failed to create post %s: %v", post.Slug, err)
			} else {
				stdLog.Printf("Created post: %s", post.Slug)
			}
		} else {
			stdLog.Printf("Post already exists: %s", post.Slug)
		}
	}

	stdLog.Printf("Seed completed")
}

// seedMaterial 创建材质及其纯度档位，档位克价按纯度从基准价推导
func seedMaterial(stdLog interface{ Printf(string, ...interface{}) }, name, materialType string, basePrice decimal.Decimal, karats map[string]decimal.Decimal) uint {
	var material models.Material
	if err := models.DB.Where("name = ?", name).First(&material).Error; err != nil {
		material = models.Material{
			Name:             name,
			Type:             materialType,
			BasePricePerGram: models.NewMoneyFromDecimal(basePrice),
			IsActive:         true,
		}
		if err := models.DB.Create(&material).Error; err != nil {
			stdLog.Printf("Failed to create material %s: %v", name, err)
			return 0
		}
		stdLog.Printf("Created material: %s", name)
	} else {
		stdLog.Printf("Material already exists: %s", name)
	}

	for value, purity := range karats {
		var existing models.Karat
		if err := models.DB.Where("material_id = ? AND value = ?", material.ID, value).First(&existing).Error; err == nil {
			continue
		}
		price, err := pricing.DerivePrice(basePrice, purity)
		if err != nil {
			stdLog.Printf("Failed to derive price for %s %s: %v", name, value, err)
			continue
		}
		karat := models.Karat{
			MaterialID:   material.ID,
			Value:        value,
			Purity:       purity,
			MaterialType: materialType,
			PricePerGram: models.NewMoneyFromDecimal(price),
			IsActive:     true,
		}
		if err := models.DB.Create(&karat).Error; err != nil {
			stdLog.Printf("Failed to create karat %s %s: %v", name, value, err)
		} else {
			stdLog.Printf("Created karat: %s %s", name, value)
		}
	}
	return material.ID
}
