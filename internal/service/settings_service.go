package service

import (
	"btube-go/internal/api/dto"
	"btube-go/internal/config"
	"btube-go/internal/ledger"
	"btube-go/internal/model"
	"btube-go/internal/repository"
	"btube-go/pkg/logger"

	"go.uber.org/zap"
)

type SettingsService struct {
	settingRepo *repository.SettingRepository
}

func NewSettingsService(settingRepo *repository.SettingRepository) *SettingsService {
	return &SettingsService{settingRepo: settingRepo}
}

// Get 站点配置详情（管理员）
func (s *SettingsService) Get() (*dto.SettingsInfo, error) {
	setting, err := s.settingRepo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsInfo(setting), nil
}

// Site 公开的站点信息（前端展示用，未登录可访问）
func (s *SettingsService) Site() *dto.SiteInfo {
	setting := loadSetting(s.settingRepo)
	return &dto.SiteInfo{
		SiteName:      setting.SiteName,
		Currency:      setting.Currency,
		MinPayout:     setting.MinPayout,
		Categories:    model.VideoCategories,
		PayoutMethods: model.PayoutMethods,
	}
}

// Update 管理员修改站点配置（整体替换），改动立刻作用于后续所有收益计算
func (s *SettingsService) Update(req *dto.SettingsUpdateRequest, actor *model.User) (*dto.SettingsInfo, error) {
	current, err := s.settingRepo.Get()
	if err != nil {
		return nil, err
	}

	patch := ledger.SettingsPatch{
		RPM:          req.RPM,
		CreatorShare: req.CreatorShare,
		MinPayout:    req.MinPayout,
		Currency:     req.Currency,
		SiteName:     req.SiteName,
	}

	updated, err := ledger.ApplySettingsPatch(*current, patch, actor)
	if err != nil {
		return nil, err
	}

	if err := s.settingRepo.Save(&updated); err != nil {
		return nil, err
	}

	logger.Info("Site settings updated",
		zap.Int64("admin_id", actor.ID),
		zap.Float64("rpm", updated.RPM),
		zap.Float64("creator_share", updated.CreatorShare),
	)

	return toSettingsInfo(&updated), nil
}

// loadSetting 读取站点收益配置，读不到时退回配置文件默认值
func loadSetting(repo *repository.SettingRepository) model.Setting {
	setting, err := repo.Get()
	if err != nil {
		m := config.GetMonetize()
		return model.Setting{
			RPM:          m.RPM,
			CreatorShare: m.CreatorShare,
			MinPayout:    m.MinPayout,
			Currency:     m.Currency,
			SiteName:     m.SiteName,
		}
	}
	return *setting
}

func toSettingsInfo(s *model.Setting) *dto.SettingsInfo {
	return &dto.SettingsInfo{
		RPM:          s.RPM,
		CreatorShare: s.CreatorShare,
		MinPayout:    s.MinPayout,
		Currency:     s.Currency,
		SiteName:     s.SiteName,
		UpdatedAt:    s.UpdatedAt,
	}
}
