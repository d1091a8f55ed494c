package model

import "time"

// 视频分类
var VideoCategories = []string{"Entertainment", "Education", "News", "Sports", "Technology", "Music"}

// Video 视频模型
// Approved=false 的视频不会出现在公开 Feed 和热门榜中
// Earnings 为该视频累计给作者带来的收益（信息性字段，结算以 User.Balance 为准）
type Video struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	OwnerID     int64     `gorm:"not null;index:idx_owner_id;index:idx_composite_owner_approved;comment:视频作者ID" json:"owner_id"`
	Title       string    `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description string    `gorm:"type:text;comment:视频描述" json:"description"`
	Category    string    `gorm:"size:50;not null;default:'Entertainment';comment:视频分类" json:"category"`
	SrcURL      string    `gorm:"size:500;comment:视频播放地址" json:"src_url"`
	ThumbURL    *string   `gorm:"size:500;comment:视频封面地址" json:"thumb_url"`
	Views       int64     `gorm:"not null;default:0;comment:播放量" json:"views"`
	Likes       int64     `gorm:"not null;default:0;comment:点赞数" json:"likes"`
	Comments    int64     `gorm:"not null;default:0;comment:评论数" json:"comments"`
	Approved    bool      `gorm:"not null;default:false;index:idx_approved;index:idx_composite_owner_approved;comment:是否审核通过" json:"approved"`
	Earnings    float64   `gorm:"not null;default:0;comment:累计收益" json:"earnings"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
