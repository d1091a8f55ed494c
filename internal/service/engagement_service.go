package service

import (
	"context"
	"errors"
	"time"

	"btube-go/internal/api/dto"
	"btube-go/internal/config"
	infraKafka "btube-go/internal/infra/kafka"
	infraRedis "btube-go/internal/infra/redis"
	"btube-go/internal/ledger"
	"btube-go/internal/model"
	"btube-go/internal/repository"
	"btube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EngagementService struct {
	db          *gorm.DB
	videoRepo   *repository.VideoRepository
	userRepo    *repository.UserRepository
	settingRepo *repository.SettingRepository
}

func NewEngagementService(db *gorm.DB, videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository, settingRepo *repository.SettingRepository) *EngagementService {
	return &EngagementService{db: db, videoRepo: videoRepo, userRepo: userRepo, settingRepo: settingRepo}
}

// RegisterView 播放上报：Redis 窗口去重后投递播放事件，
// 实际计收由账本 worker 消费事件后串行完成。
// 同一用户对同一视频在窗口期内只计一次，重复上报返回 Counted=false。
func (s *EngagementService) RegisterView(ctx context.Context, viewer *model.User, videoID int64) (*dto.ViewRegisterData, error) {
	if viewer == nil {
		return nil, ledger.ErrUnauthenticated
	}

	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if !video.Approved {
		return nil, ErrVideoNotFound
	}

	first, err := infraRedis.MarkViewOnce(ctx, viewer.ID, videoID, config.GetMonetize().ViewWindow())
	if err != nil {
		return nil, err
	}
	if !first {
		return &dto.ViewRegisterData{VideoID: videoID, Counted: false}, nil
	}

	event := &infraKafka.ViewEvent{
		VideoID:    videoID,
		ViewerID:   viewer.ID,
		OccurredAt: time.Now().Unix(),
	}
	topic := config.GetKafka().Topics["view_events"]
	if err := infraKafka.SendViewEvent(ctx, topic, event); err != nil {
		return nil, err
	}

	return &dto.ViewRegisterData{VideoID: videoID, Counted: true}, nil
}

// ApplyViewCredit 账本 worker 的计收入口：在一个事务内
// 同时更新视频播放量/累计收益与作者余额/累计收益。
// 作者行持锁读，避免与同时进行的提现结算互相覆盖余额。
// 视频在事件投递后被下架的情况直接丢弃事件。
func (s *EngagementService) ApplyViewCredit(event *infraKafka.ViewEvent) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		videoRepo := s.videoRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)

		video, err := videoRepo.GetByID(event.VideoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("View event for removed video dropped", zap.Int64("video_id", event.VideoID))
				return nil
			}
			return err
		}

		owner, err := userRepo.GetByIDForUpdate(video.OwnerID)
		if err != nil {
			return err
		}

		setting := loadSetting(s.settingRepo)
		creditedVideo, creditedOwner := ledger.CreditView(*video, *owner, setting)

		if err := videoRepo.SaveViewCredit(creditedVideo.ID, creditedVideo.Views, creditedVideo.Earnings); err != nil {
			return err
		}
		return userRepo.SaveMoney(creditedOwner.ID, creditedOwner.Balance, creditedOwner.TotalEarnings)
	})
}

// Like 点赞：计数 +1，无收益影响
func (s *EngagementService) Like(videoID int64, actor *model.User) (*dto.EngagementData, error) {
	return s.bumpEngagement(videoID, actor, ledger.Like)
}

// Comment 评论计数 +1，无收益影响
func (s *EngagementService) Comment(videoID int64, actor *model.User) (*dto.EngagementData, error) {
	return s.bumpEngagement(videoID, actor, ledger.Comment)
}

// bumpEngagement 互动计数写回也是整值覆盖，
// 视频行持锁读，避免并发点赞/评论互相丢计数
func (s *EngagementService) bumpEngagement(videoID int64, actor *model.User,
	op func(model.Video, *model.User) (model.Video, error)) (*dto.EngagementData, error) {

	var updated model.Video

	err := s.db.Transaction(func(tx *gorm.DB) error {
		videoRepo := s.videoRepo.WithTx(tx)

		video, err := videoRepo.GetByIDForUpdate(videoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVideoNotFound
			}
			return err
		}
		if !video.Approved {
			return ErrVideoNotFound
		}

		updated, err = op(*video, actor)
		if err != nil {
			return err
		}

		return videoRepo.SaveEngagement(updated.ID, updated.Likes, updated.Comments)
	})
	if err != nil {
		return nil, err
	}

	return &dto.EngagementData{
		VideoID:  updated.ID,
		Views:    updated.Views,
		Likes:    updated.Likes,
		Comments: updated.Comments,
	}, nil
}
