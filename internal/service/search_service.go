package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"btube-go/internal/api/dto"
	infraES "btube-go/internal/infra/elasticsearch"
	"btube-go/internal/model"
	"btube-go/internal/repository"
	"btube-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	videoRepo   *repository.VideoRepository
	settingRepo *repository.SettingRepository
}

func NewSearchService(videoRepo *repository.VideoRepository, settingRepo *repository.SettingRepository) *SearchService {
	return &SearchService{videoRepo: videoRepo, settingRepo: settingRepo}
}

// SearchVideos 搜索视频（ES 优先，不可用或失败时降级到 DB 模糊检索）
func (s *SearchService) SearchVideos(req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	if infraES.Available() {
		data, err := s.searchFromES(req)
		if err == nil {
			return data, nil
		}
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
	}
	return s.searchFromDB(req)
}

func (s *SearchService) searchFromES(req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	query := buildSearchQuery(req)
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, infraES.VideosIndexName(), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	videoIDs := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		videoIDs = append(videoIDs, h.Source.ID)
	}

	total := esResp.Hits.Total.Value
	if len(videoIDs) == 0 {
		return &dto.SearchVideoData{
			Videos: []dto.VideoInfo{}, Total: total, Page: req.Page, PageSize: req.PageSize,
		}, nil
	}

	// 索引中的计数有滞后，回查 DB 取最新数据并保持 ES 的相关性排序
	videos, err := s.videoRepo.ListByIDs(videoIDs)
	if err != nil {
		return nil, err
	}

	videoMap := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		videoMap[videos[i].ID] = &videos[i]
	}

	setting := loadSetting(s.settingRepo)
	items := make([]dto.VideoInfo, 0, len(videoIDs))
	for _, id := range videoIDs {
		if v, ok := videoMap[id]; ok && v.Approved {
			items = append(items, *toVideoInfoWithOwner(v, setting))
		}
	}

	return &dto.SearchVideoData{
		Videos: items, Total: total, Page: req.Page, PageSize: req.PageSize,
	}, nil
}

func buildSearchQuery(req *dto.SearchVideoRequest) map[string]interface{} {
	q := strings.TrimSpace(req.Q)
	return map[string]interface{}{
		"from": (req.Page - 1) * req.PageSize,
		"size": req.PageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q,
				"fields": []string{"title^3", "description", "category^2"},
				"type":   "best_fields",
			},
		},
	}
}

func (s *SearchService) searchFromDB(req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	skip := (req.Page - 1) * req.PageSize
	videos, total, err := s.videoRepo.SearchApproved(strings.TrimSpace(req.Q), skip, req.PageSize)
	if err != nil {
		return nil, err
	}

	setting := loadSetting(s.settingRepo)
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfoWithOwner(&videos[i], setting))
	}

	return &dto.SearchVideoData{
		Videos: items, Total: total, Page: req.Page, PageSize: req.PageSize,
	}, nil
}
