package model

import "time"

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 用户模型
// Balance 为可提现余额，TotalEarnings 为累计收益（只增不减）
type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName      string    `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"user_name"`
	Password      string    `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	UserRole      string    `gorm:"size:20;not null;default:'user';comment:用户角色" json:"user_role"`
	Balance       float64   `gorm:"not null;default:0;comment:可提现余额" json:"balance"`
	TotalEarnings float64   `gorm:"not null;default:0;comment:累计收益" json:"total_earnings"`
	CreatedAt     time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Videos  []Video         `gorm:"foreignKey:OwnerID" json:"videos,omitempty"`
	Payouts []PayoutRequest `gorm:"foreignKey:UserID" json:"payouts,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.UserRole == RoleAdmin
}
