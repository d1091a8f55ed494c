package dto

import (
	"time"

	"btube-go/internal/ledger"
)

// VideoUploadRequest 视频上传请求（multipart/form-data，视频文件和封面走文件字段）
type VideoUploadRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=200"`
	Description string `form:"description" binding:"omitempty"`
	Category    string `form:"category" binding:"required,max=50"`
}

// FeedRequest 公开视频流请求
// Q 非空时对标题/描述/分类做大小写不敏感的子串过滤
type FeedRequest struct {
	Q string `form:"q" binding:"omitempty,max=200"`
}

// OwnerBrief 视频中嵌套的作者简要信息
type OwnerBrief struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// VideoInfo 视频详情
// EstimatedNet 按当前费率对播放量的估算，与逐次计收的余额是两个口径
type VideoInfo struct {
	ID           int64       `json:"id"`
	OwnerID      int64       `json:"owner_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	SrcURL       string      `json:"src_url"`
	ThumbURL     *string     `json:"thumb_url"`
	Views        int64       `json:"views"`
	Likes        int64       `json:"likes"`
	Comments     int64       `json:"comments"`
	Approved     bool        `json:"approved"`
	EstimatedNet float64     `json:"estimated_net"`
	CreatedAt    time.Time   `json:"created_at"`
	Owner        *OwnerBrief `json:"owner,omitempty"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos []VideoInfo `json:"videos"`
	Total  int64       `json:"total"`
}

// EngagementData 互动操作后返回的最新计数
type EngagementData struct {
	VideoID  int64 `json:"video_id"`
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// ViewRegisterData 播放上报结果
// Counted=false 表示该播放在去重窗口内，未计收
type ViewRegisterData struct {
	VideoID int64 `json:"video_id"`
	Counted bool  `json:"counted"`
}

// CreatorDashboardData 创作者看板：聚合数据 + 本人全部视频（含未过审）
type CreatorDashboardData struct {
	Summary ledger.CreatorSummary `json:"summary"`
	Balance float64               `json:"balance"`
	Videos  []VideoInfo           `json:"videos"`
}
