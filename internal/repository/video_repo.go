package repository

import (
	"btube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// WithTx 返回绑定到事务的仓库实例
func (r *VideoRepository) WithTx(tx *gorm.DB) *VideoRepository {
	return &VideoRepository{db: tx}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDForUpdate 在事务内按 ID 查询视频并加行锁。
// 互动计数写回同样是整值覆盖，并发点赞/评论需要持锁读
func (r *VideoRepository) GetByIDForUpdate(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner 根据 ID 获取视频（含作者信息）
func (r *VideoRepository) GetByIDWithOwner(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// ListApproved 获取全部审核通过的视频，按创建时间倒序。
// Feed 需要的就是这个顺序，排序交给索引完成；
// 关键词过滤与热门榜仍在账本查询层对快照计算
func (r *VideoRepository) ListApproved() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Preload("Owner").Where("approved = ?", true).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// SearchApproved 审核通过视频的模糊检索（ES 不可用时的降级路径）
func (r *VideoRepository) SearchApproved(term string, skip, limit int) ([]model.Video, int64, error) {
	pattern := "%" + term + "%"
	query := r.db.Model(&model.Video{}).
		Where("approved = ?", true).
		Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Owner").Order("created_at DESC").Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// ListByIDs 按 ID 批量获取视频（含作者信息），ES 检索回查用
func (r *VideoRepository) ListByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// ListByOwner 获取某个作者的全部视频（含未过审）
func (r *VideoRepository) ListByOwner(ownerID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// ListPending 获取全部待审核视频（管理员）
func (r *VideoRepository) ListPending() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Preload("Owner").Where("approved = ?", false).Order("created_at ASC").Find(&videos).Error
	return videos, err
}

// SetApproved 审核通过
func (r *VideoRepository) SetApproved(id int64) error {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete 物理删除视频记录（互动计数随记录一并丢弃）
func (r *VideoRepository) HardDelete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&model.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveEngagement 持久化账本计算后的互动计数
func (r *VideoRepository) SaveEngagement(id int64, likes, comments int64) error {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(map[string]interface{}{
		"likes":    likes,
		"comments": comments,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveViewCredit 持久化账本计算后的播放量与视频累计收益
func (r *VideoRepository) SaveViewCredit(id int64, views int64, earnings float64) error {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(map[string]interface{}{
		"views":    views,
		"earnings": earnings,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
