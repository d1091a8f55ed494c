package handler

import (
	"strconv"

	"btube-go/internal/api/dto"
	"btube-go/internal/api/middleware"
	"btube-go/internal/api/response"
	"btube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	payoutService *service.PayoutService
}

func NewPayoutHandler(payoutService *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService}
}

// Submit 提交提现申请
// @Summary 提交提现申请
// @Description 金额不低于最低提现额且不超过可用余额。提交时不冻结余额
// @Tags 提现
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PayoutSubmitRequest true "提现信息"
// @Success 201 {object} response.Response{data=dto.PayoutInfo} "提交成功"
// @Failure 400 {object} response.ErrorResponse "金额或渠道无效"
// @Router /payouts [post]
func (h *PayoutHandler) Submit(c *gin.Context) {
	var req dto.PayoutSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	info, err := h.payoutService.Submit(actor, &req)
	if err != nil {
		handleServiceError(c, err, "Submit payout failed")
		return
	}

	response.Created(c, "提现申请已提交", info)
}

// ListMine 本人提现单列表
// @Summary 本人提现单列表
// @Tags 提现
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.PayoutListData} "获取成功"
// @Router /payouts/my [get]
func (h *PayoutHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	data, err := h.payoutService.ListMine(userID)
	if err != nil {
		handleServiceError(c, err, "List my payouts failed")
		return
	}

	response.OK(c, "获取提现单列表成功", data)
}

// ListAll 全部提现单（管理员）
// @Summary 全部提现单（管理员）
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Param status query string false "状态筛选: pending/paid/rejected"
// @Success 200 {object} response.Response{data=dto.PayoutListData} "获取成功"
// @Router /admin/payouts [get]
func (h *PayoutHandler) ListAll(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	data, err := h.payoutService.ListAll(status)
	if err != nil {
		handleServiceError(c, err, "List payouts failed")
		return
	}

	response.OK(c, "获取提现单列表成功", data)
}

// Settle 结算提现单（管理员）
// @Summary 结算提现单（管理员）
// @Description pending -> paid/rejected。paid 时重新校验余额并扣减，终态不可再变更
// @Tags 管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "提现单ID"
// @Param request body dto.PayoutSettleRequest true "结算结果"
// @Success 200 {object} response.Response{data=dto.PayoutInfo} "结算成功"
// @Failure 409 {object} response.ErrorResponse "提现单已结算"
// @Router /admin/payouts/{id}/settle [post]
func (h *PayoutHandler) Settle(c *gin.Context) {
	payoutID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的提现单ID")
		return
	}

	var req dto.PayoutSettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Unauthorized(c, "缺少认证信息")
		return
	}

	info, err := h.payoutService.Settle(payoutID, req.Outcome, actor)
	if err != nil {
		handleServiceError(c, err, "Settle payout failed")
		return
	}

	response.OK(c, "提现单已结算", info)
}
