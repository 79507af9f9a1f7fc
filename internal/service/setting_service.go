package service

import (
	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/repository"
)

// SettingService 系统设置服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// Get 获取设置值，不存在时返回空对象
func (s *SettingService) Get(key string) (models.JSON, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return models.JSON{}, nil
	}
	return setting.ValueJSON, nil
}

// Update 更新设置值
func (s *SettingService) Update(key string, value models.JSON) (models.JSON, error) {
	setting, err := s.repo.Upsert(key, value)
	if err != nil {
		return nil, err
	}
	return setting.ValueJSON, nil
}

// GetSiteConfig 获取站点配置（补全默认值）
func (s *SettingService) GetSiteConfig() (models.JSON, error) {
	value, err := s.Get(constants.SettingKeySiteConfig)
	if err != nil {
		return nil, err
	}
	if _, ok := value[constants.SettingFieldSiteCurrency]; !ok {
		value[constants.SettingFieldSiteCurrency] = constants.SiteCurrencyDefault
	}
	return value, nil
}

// SiteCurrency 获取站点币种
func (s *SettingService) SiteCurrency() string {
	value, err := s.GetSiteConfig()
	if err != nil {
		return constants.SiteCurrencyDefault
	}
	if currency, ok := value[constants.SettingFieldSiteCurrency].(string); ok && currency != "" {
		return currency
	}
	return constants.SiteCurrencyDefault
}

// PaymentExpireMinutes 获取订单支付有效期（分钟），设置缺失时回退默认值
func (s *SettingService) PaymentExpireMinutes(fallback int) int {
	value, err := s.Get(constants.SettingKeyOrderConfig)
	if err != nil {
		return fallback
	}
	switch v := value[constants.SettingFieldPaymentExpireMinutes].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return fallback
}
