package ledger

import (
	"testing"
	"time"

	"btube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVideos() []model.Video {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []model.Video{
		{ID: 1, OwnerID: 1, Title: "Dhaka Street Food", Description: "eating tour", Category: "Entertainment", Views: 100, Likes: 3, Comments: 1, Approved: true, CreatedAt: base.Add(1 * time.Hour)},
		{ID: 2, OwnerID: 1, Title: "Go Tutorial", Description: "learn golang", Category: "Education", Views: 500, Comments: 2, Approved: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, OwnerID: 2, Title: "Cricket Highlights", Description: "final match", Category: "Sports", Views: 900, Approved: true, CreatedAt: base.Add(3 * time.Hour)},
		{ID: 4, OwnerID: 2, Title: "Unreviewed clip", Description: "pending", Category: "News", Views: 9999, Approved: false, CreatedAt: base.Add(4 * time.Hour)},
		{ID: 5, OwnerID: 1, Title: "Rainy Day Vlog", Description: "monsoon", Category: "Entertainment", Views: 50, Approved: true, CreatedAt: base.Add(5 * time.Hour)},
		{ID: 6, OwnerID: 3, Title: "Tech News Weekly", Description: "gadgets", Category: "Technology", Views: 300, Approved: true, CreatedAt: base.Add(6 * time.Hour)},
		{ID: 7, OwnerID: 3, Title: "Folk Music Night", Description: "live show", Category: "Music", Views: 700, Approved: true, CreatedAt: base.Add(7 * time.Hour)},
	}
}

func videoIDs(videos []model.Video) []int64 {
	ids := make([]int64, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestPublicFeedExcludesUnapproved(t *testing.T) {
	feed := PublicFeed(testVideos(), "")
	assert.NotContains(t, videoIDs(feed), int64(4))

	// 无过滤词时按创建时间倒序
	assert.Equal(t, []int64{7, 6, 5, 3, 2, 1}, videoIDs(feed))
}

func TestPublicFeedFilter(t *testing.T) {
	tests := []struct {
		term string
		want []int64
	}{
		{term: "go", want: []int64{2}},              // title
		{term: "MONSOON", want: []int64{5}},         // description, case-insensitive
		{term: "entertainment", want: []int64{5, 1}}, // category, time desc
		{term: "pending", want: []int64{}},          // 未过审视频即使命中也不返回
		{term: "  cricket  ", want: []int64{3}},     // term is trimmed
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := PublicFeed(testVideos(), tt.term)
			assert.Equal(t, tt.want, videoIDs(got))
		})
	}
}

func TestTrending(t *testing.T) {
	top := Trending(testVideos())

	require.Len(t, top, TrendingSize)
	// 播放量倒序，且排除未过审的 9999 播放视频
	assert.Equal(t, []int64{3, 7, 2, 6, 1}, videoIDs(top))
}

func TestTrendingFewerThanLimit(t *testing.T) {
	videos := testVideos()[:2]
	assert.Len(t, Trending(videos), 2)
	assert.Empty(t, Trending(nil))
}

func TestApproveMakesVideoVisible(t *testing.T) {
	admin := &model.User{ID: 1, UserRole: model.RoleAdmin}
	videos := testVideos()

	// 未过审：不在公开流中
	feed := PublicFeed(videos, "")
	assert.NotContains(t, videoIDs(feed), int64(4))

	// 管理员过审后出现在公开流中
	approved, err := ApproveVideo(videos[3], admin)
	require.NoError(t, err)
	videos[3] = approved

	feed = PublicFeed(videos, "")
	assert.Contains(t, videoIDs(feed), int64(4))
}

func TestSummarizeCreator(t *testing.T) {
	s := testSetting()
	sum := SummarizeCreator(1, testVideos(), s)

	assert.Equal(t, int64(650), sum.TotalViews)
	assert.Equal(t, int64(3), sum.TotalLikes)
	assert.Equal(t, int64(3), sum.TotalComments)
	assert.InDelta(t, 650.0/1000*1.8, sum.EstimatedGross, 1e-9)
	assert.InDelta(t, 650.0/1000*1.8*0.6, sum.EstimatedNet, 1e-9)
}

func TestEstimateVideoNet(t *testing.T) {
	s := testSetting()
	v := model.Video{Views: 2000}
	assert.InDelta(t, 2.0*1.8*0.6, EstimateVideoNet(v, s), 1e-9)
}
