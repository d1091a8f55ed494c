package dto

import "time"

// PayoutSubmitRequest 提现申请
type PayoutSubmitRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"required,max=50"`
}

// PayoutSettleRequest 管理员结算提现单
type PayoutSettleRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=paid rejected"`
}

// PayoutInfo 提现单详情
type PayoutInfo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PayoutListData 提现单列表响应数据
type PayoutListData struct {
	Payouts []PayoutInfo `json:"payouts"`
	Total   int64        `json:"total"`
}
