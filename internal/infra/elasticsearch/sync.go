package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"btube-go/internal/model"
)

// videoDoc videos 索引的文档结构
type videoDoc struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Views       int64  `json:"views"`
	CreatedAt   int64  `json:"created_at"`
}

// SyncVideo 将审核通过的视频写入 videos 索引
func SyncVideo(ctx context.Context, video *model.Video, ownerName string) error {
	doc := videoDoc{
		ID:          video.ID,
		OwnerID:     video.OwnerID,
		OwnerName:   ownerName,
		Title:       video.Title,
		Description: video.Description,
		Category:    video.Category,
		Views:       video.Views,
		CreatedAt:   video.CreatedAt.UnixMilli(),
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal video doc: %w", err)
	}

	resp, err := Index(ctx, VideosIndexName(), strconv.FormatInt(video.ID, 10), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("index video %d: %w", video.ID, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index video %d failed: %s", video.ID, resp.String())
	}
	return nil
}

// RemoveVideo 从索引中移除视频（管理员下架时调用）
func RemoveVideo(ctx context.Context, videoID int64) error {
	resp, err := Delete(ctx, VideosIndexName(), strconv.FormatInt(videoID, 10))
	if err != nil {
		return fmt.Errorf("delete video %d from index: %w", videoID, err)
	}
	defer resp.Body.Close()

	// 文档不存在视为已删除
	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete video %d from index failed: %s", videoID, resp.String())
	}
	return nil
}
