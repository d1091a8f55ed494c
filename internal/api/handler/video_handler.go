package handler

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"btube-go/internal/api/dto"
	"btube-go/internal/api/middleware"
	"btube-go/internal/api/response"
	"btube-go/internal/service"

	"github.com/gin-gonic/gin"
)

// 上传限制
const maxVideoSize = 500 * 1024 * 1024 // 500MB
const maxThumbSize = 5 * 1024 * 1024   // 5MB

var allowedVideoExts = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true,
	".mkv": true, ".flv": true, ".webm": true,
}

var allowedThumbExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Upload 上传视频
// @Summary 上传视频
// @Description 上传视频文件与可选封面。管理员上传直接过审，普通用户进入待审核队列
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "视频标题"
// @Param description formData string false "视频描述"
// @Param category formData string true "视频分类"
// @Param video_file formData file true "视频文件"
// @Param thumb_file formData file false "封面图片"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "上传成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /videos/upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	var req dto.VideoUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoFile, err := c.FormFile("video_file")
	if err != nil {
		response.BadRequest(c, "请上传视频文件")
		return
	}

	videoExt := strings.ToLower(filepath.Ext(videoFile.Filename))
	if !allowedVideoExts[videoExt] {
		response.BadRequest(c, "不支持的视频格式，支持: mp4, avi, mov, mkv, flv, webm")
		return
	}
	if videoFile.Size <= 0 || videoFile.Size > maxVideoSize {
		response.BadRequest(c, "视频文件大小无效（不能为空，最大 500MB）")
		return
	}

	owner, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	vf, err := videoFile.Open()
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer vf.Close()

	// 封面可选
	var thumbReader io.Reader
	var thumbSize int64
	var thumbExt string
	if thumbFile, err := c.FormFile("thumb_file"); err == nil {
		thumbExt = strings.ToLower(filepath.Ext(thumbFile.Filename))
		if !allowedThumbExts[thumbExt] {
			response.BadRequest(c, "不支持的封面格式，支持: jpg, jpeg, png, webp")
			return
		}
		if thumbFile.Size <= 0 || thumbFile.Size > maxThumbSize {
			response.BadRequest(c, "封面文件大小无效（不能为空，最大 5MB）")
			return
		}
		tf, err := thumbFile.Open()
		if err != nil {
			response.InternalError(c, "打开封面文件失败")
			return
		}
		defer tf.Close()
		thumbReader = tf
		thumbSize = thumbFile.Size
	}

	info, err := h.videoService.Upload(owner, &req, vf, videoFile.Size, videoExt, thumbReader, thumbSize, thumbExt)
	if err != nil {
		handleServiceError(c, err, "Upload video failed")
		return
	}

	response.Created(c, "视频上传成功", info)
}

// Feed 公开视频流
// @Summary 公开视频流
// @Description 审核通过的视频按创建时间倒序，q 非空时做关键词过滤
// @Tags 视频
// @Produce json
// @Param q query string false "过滤关键词"
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos/feed [get]
func (h *VideoHandler) Feed(c *gin.Context) {
	var req dto.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.videoService.Feed(req.Q)
	if err != nil {
		handleServiceError(c, err, "Get video feed failed")
		return
	}

	response.OK(c, "获取视频流成功", data)
}

// Trending 热门榜
// @Summary 热门视频榜
// @Description 审核通过的视频按播放量取前几名
// @Tags 视频
// @Produce json
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos/trending [get]
func (h *VideoHandler) Trending(c *gin.Context) {
	data, err := h.videoService.Trending(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Get trending videos failed")
		return
	}

	response.OK(c, "获取热门榜成功", data)
}

// GetDetail 视频详情
// @Summary 视频详情
// @Description 未过审的视频只有作者本人和管理员可见
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetDetail(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	viewer, _ := middleware.GetCurrentUser(c)

	info, err := h.videoService.GetDetail(videoID, viewer)
	if err != nil {
		handleServiceError(c, err, "Get video detail failed")
		return
	}

	response.OK(c, "获取视频详情成功", info)
}

// Dashboard 创作者看板
// @Summary 创作者看板
// @Description 本人全部视频（含未过审）与播放/互动/收益聚合数据
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.CreatorDashboardData} "获取成功"
// @Router /videos/my/dashboard [get]
func (h *VideoHandler) Dashboard(c *gin.Context) {
	owner, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	data, err := h.videoService.Dashboard(owner)
	if err != nil {
		handleServiceError(c, err, "Get creator dashboard failed")
		return
	}

	response.OK(c, "获取看板成功", data)
}

// ListPending 待审核视频列表（管理员）
// @Summary 待审核视频列表（管理员）
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /admin/videos/pending [get]
func (h *VideoHandler) ListPending(c *gin.Context) {
	data, err := h.videoService.ListPending()
	if err != nil {
		handleServiceError(c, err, "List pending videos failed")
		return
	}

	response.OK(c, "获取待审核列表成功", data)
}

// Approve 审核通过视频（管理员）
// @Summary 审核通过视频（管理员）
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "审核成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /admin/videos/{id}/approve [post]
func (h *VideoHandler) Approve(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	info, err := h.videoService.Approve(videoID, actor)
	if err != nil {
		handleServiceError(c, err, "Approve video failed")
		return
	}

	response.OK(c, "审核通过", info)
}

// Remove 下架视频（管理员）
// @Summary 下架视频（管理员）
// @Description 硬删除视频记录，已计入作者余额的收益不回退
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "下架成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /admin/videos/{id} [delete]
func (h *VideoHandler) Remove(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	if err := h.videoService.Remove(videoID, actor); err != nil {
		handleServiceError(c, err, "Remove video failed")
		return
	}

	response.OK(c, "视频已下架", nil)
}
