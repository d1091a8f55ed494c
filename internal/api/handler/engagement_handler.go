package handler

import (
	"strconv"

	"btube-go/internal/api/dto"
	"btube-go/internal/api/middleware"
	"btube-go/internal/api/response"
	"btube-go/internal/model"
	"btube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementService *service.EngagementService
}

func NewEngagementHandler(engagementService *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// RegisterView 播放上报
// @Summary 播放上报
// @Description 同一用户对同一视频在去重窗口内只计一次播放，计收由后台账本异步完成
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.ViewRegisterData} "上报成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/view [post]
func (h *EngagementHandler) RegisterView(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	viewer, _ := middleware.GetCurrentUser(c)

	data, err := h.engagementService.RegisterView(c.Request.Context(), viewer, videoID)
	if err != nil {
		handleServiceError(c, err, "Register view failed")
		return
	}

	response.OK(c, "播放已上报", data)
}

// Like 点赞
// @Summary 点赞
// @Description 点赞计数 +1，不做重复点赞去重
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.EngagementData} "点赞成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/like [post]
func (h *EngagementHandler) Like(c *gin.Context) {
	h.bump(c, h.engagementService.Like, "Like video failed", "点赞成功")
}

// Comment 评论计数
// @Summary 评论计数
// @Description 评论计数 +1（评论正文不落库）
// @Tags 互动
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.EngagementData} "评论成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/comment [post]
func (h *EngagementHandler) Comment(c *gin.Context) {
	h.bump(c, h.engagementService.Comment, "Comment video failed", "评论成功")
}

func (h *EngagementHandler) bump(c *gin.Context,
	op func(int64, *model.User) (*dto.EngagementData, error), logMsg, okMsg string) {

	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	actor, _ := middleware.GetCurrentUser(c)

	data, err := op(videoID, actor)
	if err != nil {
		handleServiceError(c, err, logMsg)
		return
	}

	response.OK(c, okMsg, data)
}
