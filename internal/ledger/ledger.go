// Package ledger 实现平台的收益账本：播放计收、互动计数、提现单状态机与管理员操作。
// 所有函数都是纯函数：入参按值传递，返回新的快照或类型化错误，
// 由 service 层在同一个数据库事务内落库，保证不出现部分更新。
package ledger

import (
	"fmt"
	"time"

	"btube-go/internal/model"
)

// RevenuePerView 单次播放给创作者带来的净收益
func RevenuePerView(s model.Setting) float64 {
	return s.RPM / 1000 * s.CreatorShare
}

// CreditView 播放计收：视频播放量 +1，作者余额与累计收益增加单次播放净收益。
// 去重（同一播放会话只计一次）是调用方的责任，这里每次调用都记一次播放。
func CreditView(video model.Video, owner model.User, s model.Setting) (model.Video, model.User) {
	credit := RevenuePerView(s)

	video.Views++
	video.Earnings += credit

	owner.Balance += credit
	owner.TotalEarnings += credit

	return video, owner
}

// Like 点赞：计数 +1，无收益影响。未登录返回 ErrUnauthenticated。
// 重复点赞不去重（与产品确认过的已知限制，勿擅自修改）
func Like(video model.Video, actor *model.User) (model.Video, error) {
	if actor == nil {
		return video, ErrUnauthenticated
	}
	video.Likes++
	return video, nil
}

// Comment 评论计数 +1，无收益影响。未登录返回 ErrUnauthenticated。
func Comment(video model.Video, actor *model.User) (model.Video, error) {
	if actor == nil {
		return video, ErrUnauthenticated
	}
	video.Comments++
	return video, nil
}

// SubmitPayout 提交提现申请。
// 金额低于最低提现额返回 ErrBelowMinimum，超过余额返回 ErrInsufficientBalance。
// 提交时不扣减、不冻结余额，扣减发生在结算时。
func SubmitPayout(requester model.User, amount float64, method string, s model.Setting, now time.Time) (model.PayoutRequest, error) {
	if !model.ValidPayoutMethod(method) {
		return model.PayoutRequest{}, fmt.Errorf("%w: 不支持的提现渠道 %q", ErrValidation, method)
	}
	if amount < s.MinPayout {
		return model.PayoutRequest{}, ErrBelowMinimum
	}
	if amount > requester.Balance {
		return model.PayoutRequest{}, ErrInsufficientBalance
	}

	return model.PayoutRequest{
		UserID:    requester.ID,
		Amount:    amount,
		Method:    method,
		Status:    model.PayoutStatusPending,
		CreatedAt: now,
	}, nil
}

// SettlePayout 管理员结算提现单：pending -> paid / rejected。
// paid 时扣减申请人余额；由于提交时未冻结资金，这里会重新校验余额，
// 不足则返回 ErrInsufficientBalance 且不改变任何状态。
// rejected 不影响余额。终态提现单返回 ErrNotPending。
func SettlePayout(req model.PayoutRequest, requester model.User, outcome string, actor *model.User) (model.PayoutRequest, model.User, error) {
	if actor == nil || !CanAdminister(actor) {
		return req, requester, ErrForbidden
	}
	if !req.IsPending() {
		return req, requester, ErrNotPending
	}

	switch outcome {
	case model.PayoutStatusPaid:
		if req.Amount > requester.Balance {
			return req, requester, ErrInsufficientBalance
		}
		req.Status = model.PayoutStatusPaid
		requester.Balance -= req.Amount
	case model.PayoutStatusRejected:
		req.Status = model.PayoutStatusRejected
	default:
		return req, requester, fmt.Errorf("%w: 无效的结算结果 %q", ErrValidation, outcome)
	}

	return req, requester, nil
}

// ApproveVideo 管理员审核通过视频
func ApproveVideo(video model.Video, actor *model.User) (model.Video, error) {
	if actor == nil || !CanAdminister(actor) {
		return video, ErrForbidden
	}
	video.Approved = true
	return video, nil
}

// CanRemoveVideo 删除视频的权限门禁（删除为硬删除，互动计数随记录一并丢弃）
func CanRemoveVideo(actor *model.User) error {
	if actor == nil || !CanAdminister(actor) {
		return ErrForbidden
	}
	return nil
}

// SettingsPatch 站点配置修改请求（整体替换）
type SettingsPatch struct {
	RPM          float64
	CreatorShare float64
	MinPayout    float64
	Currency     string
	SiteName     string
}

// ApplySettingsPatch 管理员修改站点配置。
// CreatorShare 必须在 [0,1]，数值字段不得为负；校验通过后整体替换。
func ApplySettingsPatch(current model.Setting, patch SettingsPatch, actor *model.User) (model.Setting, error) {
	if actor == nil || !CanAdminister(actor) {
		return current, ErrForbidden
	}
	if patch.CreatorShare < 0 || patch.CreatorShare > 1 {
		return current, fmt.Errorf("%w: creator_share 必须在 0~1 之间", ErrValidation)
	}
	if patch.RPM < 0 || patch.MinPayout < 0 {
		return current, fmt.Errorf("%w: 数值字段不能为负", ErrValidation)
	}
	if patch.Currency == "" || patch.SiteName == "" {
		return current, fmt.Errorf("%w: currency 和 site_name 不能为空", ErrValidation)
	}

	current.RPM = patch.RPM
	current.CreatorShare = patch.CreatorShare
	current.MinPayout = patch.MinPayout
	current.Currency = patch.Currency
	current.SiteName = patch.SiteName
	return current, nil
}

// CanAdminister 角色门禁：仅 admin 可执行特权操作
func CanAdminister(actor *model.User) bool {
	return actor != nil && actor.IsAdmin()
}
