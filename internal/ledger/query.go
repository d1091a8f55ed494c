package ledger

import (
	"sort"
	"strings"

	"btube-go/internal/model"
)

// TrendingSize 热门榜长度
const TrendingSize = 5

// PublicFeed 公开视频流：仅返回审核通过的视频，按创建时间倒序。
// term 非空时对标题/描述/分类做大小写不敏感的子串过滤（过滤结果同样按时间倒序）。
func PublicFeed(videos []model.Video, term string) []model.Video {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if !v.Approved {
			continue
		}
		if term != "" && !matchTerm(v, term) {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matchTerm(v model.Video, term string) bool {
	return strings.Contains(strings.ToLower(v.Title), term) ||
		strings.Contains(strings.ToLower(v.Description), term) ||
		strings.Contains(strings.ToLower(v.Category), term)
}

// Trending 热门榜：审核通过的视频按播放量倒序，取前 TrendingSize 个
func Trending(videos []model.Video) []model.Video {
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if v.Approved {
			out = append(out, v)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Views > out[j].Views
	})

	if len(out) > TrendingSize {
		out = out[:TrendingSize]
	}
	return out
}

// CreatorSummary 创作者看板聚合数据。
// EstimatedNet 是按当前费率对总播放量的连续估算，与逐次计收的 User.Balance
// 是两个独立口径（费率调整后二者会出现偏差），不要把它们合并。
type CreatorSummary struct {
	TotalViews     int64   `json:"total_views"`
	TotalLikes     int64   `json:"total_likes"`
	TotalComments  int64   `json:"total_comments"`
	EstimatedGross float64 `json:"estimated_gross"`
	EstimatedNet   float64 `json:"estimated_net"`
}

// SummarizeCreator 聚合某个创作者的全部视频（含未过审的）
func SummarizeCreator(ownerID int64, videos []model.Video, s model.Setting) CreatorSummary {
	var sum CreatorSummary
	for _, v := range videos {
		if v.OwnerID != ownerID {
			continue
		}
		sum.TotalViews += v.Views
		sum.TotalLikes += v.Likes
		sum.TotalComments += v.Comments
	}

	sum.EstimatedGross = float64(sum.TotalViews) / 1000 * s.RPM
	sum.EstimatedNet = sum.EstimatedGross * s.CreatorShare
	return sum
}

// EstimateVideoNet 单个视频的净收益估算（Feed 与看板展示用）
func EstimateVideoNet(v model.Video, s model.Setting) float64 {
	return float64(v.Views) / 1000 * s.RPM * s.CreatorShare
}
