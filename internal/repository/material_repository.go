package repository

import (
	"errors"

	"github.com/zhubao-next/internal/models"

	"gorm.io/gorm"
)

// MaterialRepository 材质与纯度档位数据访问接口
type MaterialRepository interface {
	List(filter MaterialListFilter) ([]models.Material, error)
	GetByID(id string) (*models.Material, error)
	GetByName(name string) (*models.Material, error)
	Create(material *models.Material) error
	Update(material *models.Material) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountProducts(materialID string) (int64, error)

	ListKarats(materialID uint, onlyActive bool) ([]models.Karat, error)
	GetKaratByID(id string) (*models.Karat, error)
	CreateKarat(karat *models.Karat) error
	UpdateKarat(karat *models.Karat) error
	DeleteKarat(id string) error
	UpdateKaratPrice(id uint, price models.Money) error
	UpdateKaratsMaterialType(materialID uint, materialType string) error

	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) MaterialRepository
}

// GormMaterialRepository GORM 实现
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository 创建材质仓库
func NewMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// WithTx 绑定事务
func (r *GormMaterialRepository) WithTx(tx *gorm.DB) MaterialRepository {
	if tx == nil {
		return r
	}
	return &GormMaterialRepository{db: tx}
}

// Transaction 执行事务
func (r *GormMaterialRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 材质列表
func (r *GormMaterialRepository) List(filter MaterialListFilter) ([]models.Material, error) {
	var materials []models.Material
	query := r.db.Order("id ASC")
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.WithKarats {
		if filter.OnlyActive {
			query = query.Preload("Karats", func(db *gorm.DB) *gorm.DB {
				return db.Where("is_active = ?", true).Order("purity DESC, id ASC")
			})
		} else {
			query = query.Preload("Karats", func(db *gorm.DB) *gorm.DB {
				return db.Order("purity DESC, id ASC")
			})
		}
	}
	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// GetByID 根据 ID 获取材质（含纯度档位）
func (r *GormMaterialRepository) GetByID(id string) (*models.Material, error) {
	var material models.Material
	err := r.db.Preload("Karats", func(db *gorm.DB) *gorm.DB {
		return db.Order("purity DESC, id ASC")
	}).First(&material, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &material, nil
}

// GetByName 根据名称获取材质
func (r *GormMaterialRepository) GetByName(name string) (*models.Material, error) {
	var material models.Material
	if err := r.db.Where("name = ?", name).First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &material, nil
}

// Create 创建材质
func (r *GormMaterialRepository) Create(material *models.Material) error {
	return r.db.Create(material).Error
}

// Update 更新材质
func (r *GormMaterialRepository) Update(material *models.Material) error {
	return r.db.Save(material).Error
}

// Delete 删除材质
func (r *GormMaterialRepository) Delete(id string) error {
	return r.db.Delete(&models.Material{}, id).Error
}

// CountByName 统计材质名称数量
func (r *GormMaterialRepository) CountByName(name string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Material{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts 统计引用某材质的商品数
func (r *GormMaterialRepository) CountProducts(materialID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("material_id = ?", materialID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListKarats 获取某材质的纯度档位
func (r *GormMaterialRepository) ListKarats(materialID uint, onlyActive bool) ([]models.Karat, error) {
	var karats []models.Karat
	query := r.db.Where("material_id = ?", materialID).Order("purity DESC, id ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&karats).Error; err != nil {
		return nil, err
	}
	return karats, nil
}

// GetKaratByID 根据 ID 获取纯度档位
func (r *GormMaterialRepository) GetKaratByID(id string) (*models.Karat, error) {
	var karat models.Karat
	if err := r.db.First(&karat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &karat, nil
}

// CreateKarat 创建纯度档位
func (r *GormMaterialRepository) CreateKarat(karat *models.Karat) error {
	return r.db.Create(karat).Error
}

// UpdateKarat 更新纯度档位
func (r *GormMaterialRepository) UpdateKarat(karat *models.Karat) error {
	return r.db.Save(karat).Error
}

// DeleteKarat 删除纯度档位
func (r *GormMaterialRepository) DeleteKarat(id string) error {
	return r.db.Delete(&models.Karat{}, id).Error
}

// UpdateKaratPrice 仅更新档位推导克价
func (r *GormMaterialRepository) UpdateKaratPrice(id uint, price models.Money) error {
	if id == 0 {
		return errors.New("invalid karat id")
	}
	return r.db.Model(&models.Karat{}).Where("id = ?", id).Update("price_per_gram", price).Error
}

// UpdateKaratsMaterialType 同步某材质全部档位的冗余材质类型
func (r *GormMaterialRepository) UpdateKaratsMaterialType(materialID uint, materialType string) error {
	return r.db.Model(&models.Karat{}).
		Where("material_id = ?", materialID).
		Update("material_type", materialType).Error
}
