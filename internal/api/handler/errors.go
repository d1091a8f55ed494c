package handler

import (
	"errors"

	"btube-go/internal/api/response"
	"btube-go/internal/ledger"
	"btube-go/internal/service"
	"btube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError 把账本/服务层的类型化错误映射为 HTTP 响应。
// 未识别的错误记日志并返回 500，对外不暴露内部细节
func handleServiceError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, ledger.ErrUnauthenticated):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, ledger.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, ledger.ErrBelowMinimum),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ledger.ErrNotPending):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrPayoutNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCategory):
		response.BadRequest(c, err.Error())
	default:
		logger.Error(logMsg, zap.Error(err))
		response.InternalError(c, "服务内部错误，请稍后重试")
	}
}
