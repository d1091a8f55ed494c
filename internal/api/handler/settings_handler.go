package handler

import (
	"btube-go/internal/api/dto"
	"btube-go/internal/api/middleware"
	"btube-go/internal/api/response"
	"btube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Site 公开站点信息
// @Summary 公开站点信息
// @Description 站点名称、货币、最低提现额、分类与提现渠道列表
// @Tags 站点
// @Produce json
// @Success 200 {object} response.Response{data=dto.SiteInfo} "获取成功"
// @Router /site [get]
func (h *SettingsHandler) Site(c *gin.Context) {
	response.OK(c, "获取站点信息成功", h.settingsService.Site())
}

// Get 站点配置详情（管理员）
// @Summary 站点配置详情（管理员）
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.SettingsInfo} "获取成功"
// @Router /admin/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	info, err := h.settingsService.Get()
	if err != nil {
		handleServiceError(c, err, "Get settings failed")
		return
	}

	response.OK(c, "获取站点配置成功", info)
}

// Update 修改站点配置（管理员）
// @Summary 修改站点配置（管理员）
// @Description 整体替换费率配置，改动立刻作用于后续所有收益计算
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SettingsUpdateRequest true "站点配置"
// @Success 200 {object} response.Response{data=dto.SettingsInfo} "修改成功"
// @Failure 400 {object} response.ErrorResponse "参数校验失败"
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	info, err := h.settingsService.Update(&req, actor)
	if err != nil {
		handleServiceError(c, err, "Update settings failed")
		return
	}

	response.OK(c, "站点配置已更新", info)
}
