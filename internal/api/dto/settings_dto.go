package dto

import "time"

// SettingsUpdateRequest 站点配置修改请求（整体替换，字段全量提交）
type SettingsUpdateRequest struct {
	RPM          float64 `json:"rpm" binding:"min=0"`
	CreatorShare float64 `json:"creator_share" binding:"min=0,max=1"`
	MinPayout    float64 `json:"min_payout" binding:"min=0"`
	Currency     string  `json:"currency" binding:"required,max=10"`
	SiteName     string  `json:"site_name" binding:"required,max=100"`
}

// SettingsInfo 站点配置详情（管理员）
type SettingsInfo struct {
	RPM          float64   `json:"rpm"`
	CreatorShare float64   `json:"creator_share"`
	MinPayout    float64   `json:"min_payout"`
	Currency     string    `json:"currency"`
	SiteName     string    `json:"site_name"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SiteInfo 公开的站点信息（未登录也可访问）
type SiteInfo struct {
	SiteName      string   `json:"site_name"`
	Currency      string   `json:"currency"`
	MinPayout     float64  `json:"min_payout"`
	Categories    []string `json:"categories"`
	PayoutMethods []string `json:"payout_methods"`
}
