package dto

// SearchVideoRequest 视频检索请求
type SearchVideoRequest struct {
	Q        string `form:"q" binding:"required,min=1,max=200"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SearchVideoData 视频检索响应数据
type SearchVideoData struct {
	Videos   []VideoInfo `json:"videos"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}
