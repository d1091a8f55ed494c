package repository

import (
	"btube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// WithTx 返回绑定到事务的仓库实例
func (r *PayoutRepository) WithTx(tx *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: tx}
}

// GetByID 根据 ID 获取提现单
func (r *PayoutRepository) GetByID(id int64) (*model.PayoutRequest, error) {
	var req model.PayoutRequest
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByIDForUpdate 在事务内按 ID 查询提现单并加行锁，
// 让并发的结算请求在此排队而不是同时读到 pending
func (r *PayoutRepository) GetByIDForUpdate(id int64) (*model.PayoutRequest, error) {
	var req model.PayoutRequest
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create 创建提现单
func (r *PayoutRepository) Create(req *model.PayoutRequest) error {
	return r.db.Create(req).Error
}

// ListByUser 获取某个用户的提现单列表
func (r *PayoutRepository) ListByUser(userID int64) ([]model.PayoutRequest, error) {
	var reqs []model.PayoutRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

// ListAll 获取全部提现单（管理员，可按状态筛选）
func (r *PayoutRepository) ListAll(status *string) ([]model.PayoutRequest, error) {
	query := r.db.Preload("User").Order("created_at DESC")
	if status != nil && *status != "" {
		query = query.Where("status = ?", *status)
	}
	var reqs []model.PayoutRequest
	err := query.Find(&reqs).Error
	return reqs, err
}

// SaveStatus 持久化账本结算后的状态。
// 条件更新只允许从 pending 迁出：单子已被并发结算（或不存在）时
// 更新不命中任何行，返回 gorm.ErrRecordNotFound，调用方据此拒绝二次结算
func (r *PayoutRepository) SaveStatus(id int64, status string) error {
	result := r.db.Model(&model.PayoutRequest{}).
		Where("id = ? AND status = ?", id, model.PayoutStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
