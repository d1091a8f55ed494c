package model

import "time"

// SettingID settings 表固定只有一行
const SettingID int64 = 1

// Setting 站点收益配置（单例，仅管理员可修改，所有收益计算都读取它）
type Setting struct {
	ID           int64     `gorm:"primaryKey;comment:固定为1" json:"id"`
	RPM          float64   `gorm:"not null;comment:每千次播放收入" json:"rpm"`
	CreatorShare float64   `gorm:"not null;comment:创作者分成比例0~1" json:"creator_share"`
	MinPayout    float64   `gorm:"not null;comment:最低提现金额" json:"min_payout"`
	Currency     string    `gorm:"size:10;not null;comment:展示货币" json:"currency"`
	SiteName     string    `gorm:"size:100;not null;comment:站点名称" json:"site_name"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
