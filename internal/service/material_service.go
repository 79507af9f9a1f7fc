package service

import (
	"fmt"
	"strings"

	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/logger"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/pricing"
	"github.com/zhubao-next/internal/queue"
	"github.com/zhubao-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaterialService 材质与纯度档位业务服务
type MaterialService struct {
	repo        repository.MaterialRepository
	queueClient *queue.Client
}

// NewMaterialService 创建材质服务
func NewMaterialService(repo repository.MaterialRepository, queueClient *queue.Client) *MaterialService {
	return &MaterialService{repo: repo, queueClient: queueClient}
}

// CreateMaterialInput 创建/更新材质输入
type CreateMaterialInput struct {
	Name             string
	Type             string
	BasePricePerGram decimal.Decimal
	IsActive         bool
}

// CreateKaratInput 创建/更新纯度档位输入。
// PriceOverride 非空时直接作为档位克价落库（手工改价），
// 下一次基准价保存会用推导结果覆盖它。
type CreateKaratInput struct {
	Value         string
	Purity        decimal.Decimal
	PriceOverride *decimal.Decimal
	IsActive      bool
}

// List 材质列表（含纯度档位）
func (s *MaterialService) List(onlyActive bool) ([]models.Material, error) {
	return s.repo.List(repository.MaterialListFilter{
		OnlyActive: onlyActive,
		WithKarats: true,
	})
}

// Get 获取材质详情
func (s *MaterialService) Get(id string) (*models.Material, error) {
	material, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, ErrNotFound
	}
	return material, nil
}

// Create 创建材质
func (s *MaterialService) Create(input CreateMaterialInput) (*models.Material, error) {
	if err := validateMaterialInput(input); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByName(input.Name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrMaterialNameExists
	}

	material := models.Material{
		Name:             strings.TrimSpace(input.Name),
		Type:             input.Type,
		BasePricePerGram: models.NewMoneyFromDecimal(input.BasePricePerGram),
		IsActive:         input.IsActive,
	}
	if err := s.repo.Create(&material); err != nil {
		return nil, err
	}
	return &material, nil
}

// Update 更新材质。基准克价变更后推导价立即重算，
// 档位上的手工改价会在下一次保存时被推导结果覆盖。
func (s *MaterialService) Update(id string, input CreateMaterialInput) (*models.Material, error) {
	if err := validateMaterialInput(input); err != nil {
		return nil, err
	}

	material, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountByName(input.Name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrMaterialNameExists
	}

	priceChanged := !material.BasePricePerGram.Decimal.Equal(input.BasePricePerGram)
	typeChanged := material.Type != input.Type

	material.Name = strings.TrimSpace(input.Name)
	material.Type = input.Type
	material.BasePricePerGram = models.NewMoneyFromDecimal(input.BasePricePerGram)
	material.IsActive = input.IsActive

	// 材质类型变更需同步档位上的冗余类型，二者同事务落库
	if err := s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Update(material); err != nil {
			return err
		}
		if typeChanged {
			return txRepo.UpdateKaratsMaterialType(material.ID, material.Type)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if priceChanged {
		if err := s.RecomputeKaratPrices(material.ID); err != nil {
			// 基准价已保存，重算失败转入队列延后重试
			logger.Warnw("karat_reprice_deferred",
				"material_id", material.ID,
				"error", err,
			)
			if enqueueErr := s.queueClient.EnqueueKaratReprice(queue.KaratRepricePayload{MaterialID: material.ID}); enqueueErr != nil {
				logger.Errorw("karat_reprice_enqueue_failed",
					"material_id", material.ID,
					"error", enqueueErr,
				)
			}
			return material, err
		}
	}
	return material, nil
}

// Delete 删除材质，仍被商品引用时拒绝
func (s *MaterialService) Delete(id string) error {
	material, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return ErrNotFound
	}

	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMaterialInUse
	}
	return s.repo.Delete(id)
}

// RecomputeKaratPrices 按材质当前基准克价重算全部档位推导价。
// 逐个更新，失败即中止并报告进度，剩余档位保留旧价。
func (s *MaterialService) RecomputeKaratPrices(materialID uint) error {
	material, err := s.repo.GetByID(fmt.Sprintf("%d", materialID))
	if err != nil {
		return err
	}
	if material == nil {
		return ErrNotFound
	}

	karats, err := s.repo.ListKarats(materialID, false)
	if err != nil {
		return err
	}

	updated := 0
	for _, karat := range karats {
		price, err := pricing.DerivePrice(material.BasePricePerGram.Decimal, karat.Purity)
		if err != nil {
			return fmt.Errorf("karat reprice aborted at %q, updated %d of %d: %w", karat.Value, updated, len(karats), err)
		}
		if err := s.repo.UpdateKaratPrice(karat.ID, models.NewMoneyFromDecimal(price)); err != nil {
			return fmt.Errorf("karat reprice aborted at %q, updated %d of %d: %w", karat.Value, updated, len(karats), err)
		}
		updated++
	}

	logger.Infow("karat_prices_recomputed",
		"material_id", materialID,
		"updated", updated,
	)
	return nil
}

// CreateKarat 创建纯度档位，推导价按当前基准克价计算
func (s *MaterialService) CreateKarat(materialID string, input CreateKaratInput) (*models.Karat, error) {
	material, err := s.repo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, ErrNotFound
	}

	price, err := pricing.DerivePrice(material.BasePricePerGram.Decimal, input.Purity)
	if err != nil {
		return nil, ErrKaratPurityInvalid
	}
	if input.PriceOverride != nil {
		if input.PriceOverride.IsNegative() {
			return nil, ErrKaratPriceInvalid
		}
		price = *input.PriceOverride
	}

	karat := models.Karat{
		MaterialID:   material.ID,
		Value:        strings.TrimSpace(input.Value),
		Purity:       input.Purity,
		MaterialType: material.Type,
		PricePerGram: models.NewMoneyFromDecimal(price),
		IsActive:     input.IsActive,
	}
	if err := s.repo.CreateKarat(&karat); err != nil {
		return nil, err
	}
	return &karat, nil
}

// UpdateKarat 更新纯度档位，纯度变化后推导价同步重算。
// 带 PriceOverride 时保留手工价，直到下一次基准价保存。
func (s *MaterialService) UpdateKarat(karatID string, input CreateKaratInput) (*models.Karat, error) {
	karat, err := s.repo.GetKaratByID(karatID)
	if err != nil {
		return nil, err
	}
	if karat == nil {
		return nil, ErrNotFound
	}

	material, err := s.repo.GetByID(fmt.Sprintf("%d", karat.MaterialID))
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, ErrNotFound
	}

	price, err := pricing.DerivePrice(material.BasePricePerGram.Decimal, input.Purity)
	if err != nil {
		return nil, ErrKaratPurityInvalid
	}
	if input.PriceOverride != nil {
		if input.PriceOverride.IsNegative() {
			return nil, ErrKaratPriceInvalid
		}
		price = *input.PriceOverride
	}

	karat.Value = strings.TrimSpace(input.Value)
	karat.Purity = input.Purity
	karat.MaterialType = material.Type
	karat.PricePerGram = models.NewMoneyFromDecimal(price)
	karat.IsActive = input.IsActive

	if err := s.repo.UpdateKarat(karat); err != nil {
		return nil, err
	}
	return karat, nil
}

// DeleteKarat 删除纯度档位
func (s *MaterialService) DeleteKarat(karatID string) error {
	karat, err := s.repo.GetKaratByID(karatID)
	if err != nil {
		return err
	}
	if karat == nil {
		return ErrNotFound
	}
	return s.repo.DeleteKarat(karatID)
}

func validateMaterialInput(input CreateMaterialInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrMaterialNameRequired
	}
	if input.Type != constants.MaterialTypeGold && input.Type != constants.MaterialTypeSilver {
		return ErrMaterialTypeInvalid
	}
	if input.BasePricePerGram.IsNegative() {
		return ErrBasePriceInvalid
	}
	return nil
}
