package model

import "time"

// 提现单状态机：pending -> paid / rejected，终态不可再变更
const (
	PayoutStatusPending  = "pending"
	PayoutStatusPaid     = "paid"
	PayoutStatusRejected = "rejected"
)

// 支持的提现渠道（仅记录，不做真实打款）
var PayoutMethods = []string{"bKash", "Nagad", "Rocket", "Bank Transfer", "PayPal"}

// PayoutRequest 提现申请模型
// 提交时不冻结余额，结算为 paid 时才扣减（结算时会重新校验余额）
type PayoutRequest struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:提现单ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_payouts_user_id;comment:申请用户ID" json:"user_id"`
	Amount    float64   `gorm:"not null;comment:提现金额" json:"amount"`
	Method    string    `gorm:"size:50;not null;comment:提现渠道" json:"method"`
	Status    string    `gorm:"size:20;not null;default:'pending';index:idx_payouts_status;comment:状态" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_payouts_created_at;comment:申请时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PayoutRequest) TableName() string {
	return "payout_requests"
}

// IsPending 是否处于待结算状态
func (p *PayoutRequest) IsPending() bool {
	return p.Status == PayoutStatusPending
}

// ValidPayoutMethod 检查提现渠道是否在支持列表内
func ValidPayoutMethod(method string) bool {
	for _, m := range PayoutMethods {
		if m == method {
			return true
		}
	}
	return false
}
