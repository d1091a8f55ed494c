package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"btube-go/internal/api/dto"
	"btube-go/internal/config"
	infraES "btube-go/internal/infra/elasticsearch"
	infraMinio "btube-go/internal/infra/minio"
	infraRedis "btube-go/internal/infra/redis"
	"btube-go/internal/ledger"
	"btube-go/internal/model"
	"btube-go/internal/repository"
	"btube-go/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound   = errors.New("视频不存在")
	ErrInvalidCategory = errors.New("不支持的视频分类")
)

// 热门榜缓存：TTL 内播放量变化不会反映到榜单上，可接受
const (
	trendingCacheKey = "cache:trending"
	trendingCacheTTL = 30 * time.Second
)

type VideoService struct {
	videoRepo   *repository.VideoRepository
	settingRepo *repository.SettingRepository
}

func NewVideoService(videoRepo *repository.VideoRepository, settingRepo *repository.SettingRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo, settingRepo: settingRepo}
}

// Upload 上传视频：媒体文件进 MinIO，记录落库。
// 管理员上传的视频直接过审，普通用户的进入待审核队列。
func (s *VideoService) Upload(owner *model.User, req *dto.VideoUploadRequest,
	videoFile io.Reader, videoSize int64, videoExt string,
	thumbFile io.Reader, thumbSize int64, thumbExt string) (*dto.VideoInfo, error) {

	if !validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	minioCfg := config.GetMinIO()

	videoObject := fmt.Sprintf("%d/%s%s", owner.ID, uuid.NewString(), videoExt)
	contentType := "video/" + strings.TrimPrefix(videoExt, ".")
	if _, err := infraMinio.UploadFile(ctx, infraMinio.VideoBucket, videoObject, videoFile, videoSize, contentType); err != nil {
		return nil, fmt.Errorf("上传视频文件失败: %w", err)
	}

	var thumbURL *string
	if thumbFile != nil {
		thumbObject := fmt.Sprintf("%d/%s%s", owner.ID, uuid.NewString(), thumbExt)
		thumbType := "image/" + strings.TrimPrefix(thumbExt, ".")
		if _, err := infraMinio.UploadFile(ctx, infraMinio.ThumbBucket, thumbObject, thumbFile, thumbSize, thumbType); err != nil {
			logger.Warn("Thumbnail upload failed, keeping video without cover",
				zap.Int64("owner_id", owner.ID), zap.Error(err))
		} else {
			u := infraMinio.PublicURL(minioCfg.Endpoint, minioCfg.UseSSL, infraMinio.ThumbBucket, thumbObject)
			thumbURL = &u
		}
	}

	video := &model.Video{
		OwnerID:     owner.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		SrcURL:      infraMinio.PublicURL(minioCfg.Endpoint, minioCfg.UseSSL, infraMinio.VideoBucket, videoObject),
		ThumbURL:    thumbURL,
		Approved:    owner.IsAdmin(),
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	if video.Approved {
		s.syncToIndex(video, owner.UserName)
	}

	logger.Info("Video uploaded",
		zap.Int64("video_id", video.ID),
		zap.Int64("owner_id", owner.ID),
		zap.Bool("approved", video.Approved),
	)

	setting := s.currentSetting()
	info := toVideoInfo(video, setting)
	info.Owner = &dto.OwnerBrief{ID: owner.ID, Username: owner.UserName}
	return info, nil
}

// Feed 公开视频流：仅审核通过的视频，按创建时间倒序，可按关键词过滤
func (s *VideoService) Feed(term string) (*dto.VideoListData, error) {
	videos, err := s.videoRepo.ListApproved()
	if err != nil {
		return nil, err
	}

	setting := s.currentSetting()
	feed := ledger.PublicFeed(videos, term)

	items := make([]dto.VideoInfo, 0, len(feed))
	for i := range feed {
		items = append(items, *toVideoInfoWithOwner(&feed[i], setting))
	}
	return &dto.VideoListData{Videos: items, Total: int64(len(items))}, nil
}

// Trending 热门榜：审核通过的视频按播放量取前几名，结果走 Redis 短缓存
func (s *VideoService) Trending(ctx context.Context) (*dto.VideoListData, error) {
	if cached, err := infraRedis.CacheGet(ctx, trendingCacheKey); err == nil && cached != nil {
		var data dto.VideoListData
		if err := json.Unmarshal(cached, &data); err == nil {
			return &data, nil
		}
	}

	videos, err := s.videoRepo.ListApproved()
	if err != nil {
		return nil, err
	}

	setting := s.currentSetting()
	top := ledger.Trending(videos)

	items := make([]dto.VideoInfo, 0, len(top))
	for i := range top {
		items = append(items, *toVideoInfoWithOwner(&top[i], setting))
	}
	data := &dto.VideoListData{Videos: items, Total: int64(len(items))}

	if payload, err := json.Marshal(data); err == nil {
		if err := infraRedis.CacheSet(ctx, trendingCacheKey, payload, trendingCacheTTL); err != nil {
			logger.Warn("Failed to cache trending list", zap.Error(err))
		}
	}
	return data, nil
}

// GetDetail 视频详情。未过审的视频只有作者本人和管理员可见
func (s *VideoService) GetDetail(id int64, viewer *model.User) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByIDWithOwner(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if !video.Approved {
		if viewer == nil || (viewer.ID != video.OwnerID && !viewer.IsAdmin()) {
			return nil, ErrVideoNotFound
		}
	}

	return toVideoInfoWithOwner(video, s.currentSetting()), nil
}

// Dashboard 创作者看板：聚合数据 + 本人全部视频（含未过审的）
func (s *VideoService) Dashboard(owner *model.User) (*dto.CreatorDashboardData, error) {
	videos, err := s.videoRepo.ListByOwner(owner.ID)
	if err != nil {
		return nil, err
	}

	setting := s.currentSetting()
	summary := ledger.SummarizeCreator(owner.ID, videos, setting)

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfo(&videos[i], setting))
	}

	return &dto.CreatorDashboardData{
		Summary: summary,
		Balance: owner.Balance,
		Videos:  items,
	}, nil
}

// ListPending 待审核视频列表（管理员）
func (s *VideoService) ListPending() (*dto.VideoListData, error) {
	videos, err := s.videoRepo.ListPending()
	if err != nil {
		return nil, err
	}

	setting := s.currentSetting()
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfoWithOwner(&videos[i], setting))
	}
	return &dto.VideoListData{Videos: items, Total: int64(len(items))}, nil
}

// Approve 管理员审核通过视频，随后进检索索引
func (s *VideoService) Approve(id int64, actor *model.User) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByIDWithOwner(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	approved, err := ledger.ApproveVideo(*video, actor)
	if err != nil {
		return nil, err
	}

	if err := s.videoRepo.SetApproved(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	s.syncToIndex(&approved, video.Owner.UserName)
	s.invalidateTrending()

	logger.Info("Video approved",
		zap.Int64("video_id", id),
		zap.Int64("admin_id", actor.ID),
	)

	return toVideoInfoWithOwner(&approved, s.currentSetting()), nil
}

// Remove 管理员下架视频：硬删除记录，互动计数随记录丢弃，
// 已计入作者余额的收益不回退。媒体文件与索引文档尽力清理。
func (s *VideoService) Remove(id int64, actor *model.User) error {
	if err := ledger.CanRemoveVideo(actor); err != nil {
		return err
	}

	video, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if err := s.videoRepo.HardDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if infraES.Available() {
		if err := infraES.RemoveVideo(ctx, id); err != nil {
			logger.Warn("Failed to remove video from index", zap.Int64("video_id", id), zap.Error(err))
		}
	}

	if object := objectNameFromURL(video.SrcURL, infraMinio.VideoBucket); object != "" {
		if err := infraMinio.RemoveFile(ctx, infraMinio.VideoBucket, object); err != nil {
			logger.Warn("Failed to remove video file", zap.Int64("video_id", id), zap.Error(err))
		}
	}
	if video.ThumbURL != nil {
		if object := objectNameFromURL(*video.ThumbURL, infraMinio.ThumbBucket); object != "" {
			if err := infraMinio.RemoveFile(ctx, infraMinio.ThumbBucket, object); err != nil {
				logger.Warn("Failed to remove thumbnail file", zap.Int64("video_id", id), zap.Error(err))
			}
		}
	}

	s.invalidateTrending()

	logger.Info("Video removed",
		zap.Int64("video_id", id),
		zap.Int64("admin_id", actor.ID),
	)
	return nil
}

func (s *VideoService) currentSetting() model.Setting {
	return loadSetting(s.settingRepo)
}

func (s *VideoService) syncToIndex(video *model.Video, ownerName string) {
	if !infraES.Available() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := infraES.SyncVideo(ctx, video, ownerName); err != nil {
		logger.Warn("Failed to sync video to index", zap.Int64("video_id", video.ID), zap.Error(err))
	}
}

func (s *VideoService) invalidateTrending() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := infraRedis.CacheDel(ctx, trendingCacheKey); err != nil {
		logger.Warn("Failed to invalidate trending cache", zap.Error(err))
	}
}

func validCategory(category string) bool {
	for _, c := range model.VideoCategories {
		if c == category {
			return true
		}
	}
	return false
}

// objectNameFromURL 从公开访问 URL 中解析出对象名
func objectNameFromURL(rawURL, bucket string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	prefix := "/" + bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return ""
	}
	return strings.TrimPrefix(u.Path, prefix)
}

func toVideoInfo(v *model.Video, s model.Setting) *dto.VideoInfo {
	return &dto.VideoInfo{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Title:        v.Title,
		Description:  v.Description,
		Category:     v.Category,
		SrcURL:       v.SrcURL,
		ThumbURL:     v.ThumbURL,
		Views:        v.Views,
		Likes:        v.Likes,
		Comments:     v.Comments,
		Approved:     v.Approved,
		EstimatedNet: ledger.EstimateVideoNet(*v, s),
		CreatedAt:    v.CreatedAt,
	}
}

func toVideoInfoWithOwner(v *model.Video, s model.Setting) *dto.VideoInfo {
	info := toVideoInfo(v, s)
	if v.Owner.ID != 0 {
		info.Owner = &dto.OwnerBrief{ID: v.Owner.ID, Username: v.Owner.UserName}
	}
	return info
}
