package handler

import (
	"btube-go/internal/api/dto"
	"btube-go/internal/api/response"
	"btube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchVideos 搜索视频
// @Summary 搜索视频
// @Description 对审核通过的视频做全文检索（ES 优先，失败降级到 DB）
// @Tags 搜索
// @Produce json
// @Param q query string true "搜索关键词"
// @Param page query int false "页码，默认 1"
// @Param page_size query int false "每页数量，默认 20"
// @Success 200 {object} response.Response{data=dto.SearchVideoData} "搜索成功"
// @Router /search/videos [get]
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	var req dto.SearchVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.searchService.SearchVideos(&req)
	if err != nil {
		handleServiceError(c, err, "Search videos failed")
		return
	}

	response.OK(c, "搜索成功", data)
}
