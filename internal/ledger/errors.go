package ledger

import "errors"

// 账本操作的类型化错误，全部可恢复，由上层映射为 HTTP 响应
var (
	ErrUnauthenticated     = errors.New("请先登录")
	ErrForbidden           = errors.New("需要管理员权限")
	ErrBelowMinimum        = errors.New("提现金额低于最低提现额")
	ErrInsufficientBalance = errors.New("提现金额超过可用余额")
	ErrNotPending          = errors.New("提现单已结算，不可再变更")
	ErrValidation          = errors.New("参数校验失败")
)
