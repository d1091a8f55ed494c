package repository

import (
	"errors"

	"btube-go/internal/config"
	"btube-go/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get 获取站点配置单例
func (r *SettingRepository) Get() (*model.Setting, error) {
	var s model.Setting
	err := r.db.Where("id = ?", model.SettingID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save 整体保存站点配置
func (r *SettingRepository) Save(s *model.Setting) error {
	s.ID = model.SettingID
	return r.db.Save(s).Error
}

// EnsureDefault 首次启动时用配置文件中的默认值播种 settings 表
func (r *SettingRepository) EnsureDefault(defaults *config.MonetizeConfig) (*model.Setting, error) {
	s, err := r.Get()
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	seeded := &model.Setting{
		ID:           model.SettingID,
		RPM:          defaults.RPM,
		CreatorShare: defaults.CreatorShare,
		MinPayout:    defaults.MinPayout,
		Currency:     defaults.Currency,
		SiteName:     defaults.SiteName,
	}
	if err := r.db.Create(seeded).Error; err != nil {
		return nil, err
	}
	return seeded, nil
}
