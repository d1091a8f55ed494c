package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"btube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSetting() model.Setting {
	return model.Setting{
		ID:           model.SettingID,
		RPM:          1.8,
		CreatorShare: 0.6,
		MinPayout:    5,
		Currency:     "USD",
		SiteName:     "BanglaTube",
	}
}

func TestCreditView(t *testing.T) {
	s := testSetting()
	video := model.Video{ID: 1, OwnerID: 10, Views: 7}
	owner := model.User{ID: 10, Balance: 1.0, TotalEarnings: 2.0}

	gotVideo, gotOwner := CreditView(video, owner, s)

	assert.Equal(t, int64(8), gotVideo.Views, "views should increment by exactly 1")
	assert.InDelta(t, 1.8/1000*0.6, gotVideo.Earnings, 1e-9)
	assert.InDelta(t, 1.0+1.8/1000*0.6, gotOwner.Balance, 1e-9)
	assert.InDelta(t, 2.0+1.8/1000*0.6, gotOwner.TotalEarnings, 1e-9)

	// 入参不被修改（纯函数）
	assert.Equal(t, int64(7), video.Views)
	assert.InDelta(t, 1.0, owner.Balance, 1e-9)
}

func TestCreditViewThousandViews(t *testing.T) {
	// 场景：rpm=1.8, share=0.6，1000 次播放后余额增加 1.08
	s := testSetting()
	video := model.Video{ID: 1, OwnerID: 10}
	owner := model.User{ID: 10}

	for i := 0; i < 1000; i++ {
		video, owner = CreditView(video, owner, s)
	}

	assert.Equal(t, int64(1000), video.Views)
	assert.InDelta(t, 1.08, owner.Balance, 1e-9)
	assert.InDelta(t, 1.08, owner.TotalEarnings, 1e-9)
	assert.InDelta(t, 1.08, video.Earnings, 1e-9)
}

func TestLikeComment(t *testing.T) {
	video := model.Video{ID: 1, Likes: 3, Comments: 4}
	actor := &model.User{ID: 2, UserRole: model.RoleUser}

	liked, err := Like(video, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(4), liked.Likes)

	commented, err := Comment(video, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(5), commented.Comments)

	// 未登录
	_, err = Like(video, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = Comment(video, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSubmitPayout(t *testing.T) {
	s := testSetting()
	now := time.Now()

	tests := []struct {
		name    string
		balance float64
		amount  float64
		method  string
		wantErr error
	}{
		{name: "ok", balance: 20, amount: 10, method: "bKash"},
		{name: "below minimum", balance: 20, amount: 4, method: "bKash", wantErr: ErrBelowMinimum},
		{name: "exceeds balance", balance: 5, amount: 10, method: "Nagad", wantErr: ErrInsufficientBalance},
		{name: "unknown method", balance: 20, amount: 10, method: "cheque", wantErr: ErrValidation},
		{name: "exact balance", balance: 10, amount: 10, method: "PayPal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requester := model.User{ID: 7, Balance: tt.balance}
			req, err := SubmitPayout(requester, tt.amount, tt.method, s, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.PayoutStatusPending, req.Status)
			assert.Equal(t, requester.ID, req.UserID)
			assert.Equal(t, tt.amount, req.Amount)
		})
	}
}

func TestSubmitPayoutDoesNotTouchBalance(t *testing.T) {
	s := testSetting()
	requester := model.User{ID: 7, Balance: 20}

	_, err := SubmitPayout(requester, 10, "bKash", s, time.Now())
	require.NoError(t, err)
	// 提交不扣款也不冻结
	assert.InDelta(t, 20.0, requester.Balance, 1e-9)
}

func TestSettlePayout(t *testing.T) {
	admin := &model.User{ID: 1, UserRole: model.RoleAdmin}
	user := &model.User{ID: 2, UserRole: model.RoleUser}

	t.Run("paid deducts exactly amount", func(t *testing.T) {
		req := model.PayoutRequest{ID: 1, UserID: 2, Amount: 10, Status: model.PayoutStatusPending}
		requester := model.User{ID: 2, Balance: 25, TotalEarnings: 30}

		gotReq, gotUser, err := SettlePayout(req, requester, model.PayoutStatusPaid, admin)
		require.NoError(t, err)
		assert.Equal(t, model.PayoutStatusPaid, gotReq.Status)
		assert.InDelta(t, 15.0, gotUser.Balance, 1e-9)
		// 累计收益只增不减
		assert.InDelta(t, 30.0, gotUser.TotalEarnings, 1e-9)
	})

	t.Run("rejected leaves balance unchanged", func(t *testing.T) {
		req := model.PayoutRequest{ID: 1, UserID: 2, Amount: 10, Status: model.PayoutStatusPending}
		requester := model.User{ID: 2, Balance: 25}

		gotReq, gotUser, err := SettlePayout(req, requester, model.PayoutStatusRejected, admin)
		require.NoError(t, err)
		assert.Equal(t, model.PayoutStatusRejected, gotReq.Status)
		assert.InDelta(t, 25.0, gotUser.Balance, 1e-9)
	})

	t.Run("terminal request is immutable", func(t *testing.T) {
		for _, status := range []string{model.PayoutStatusPaid, model.PayoutStatusRejected} {
			req := model.PayoutRequest{ID: 1, UserID: 2, Amount: 10, Status: status}
			requester := model.User{ID: 2, Balance: 25}

			for _, outcome := range []string{model.PayoutStatusPaid, model.PayoutStatusRejected} {
				_, _, err := SettlePayout(req, requester, outcome, admin)
				assert.ErrorIs(t, err, ErrNotPending)
			}
		}
	})

	t.Run("balance re-validated at settlement", func(t *testing.T) {
		// 提交时余额够、结算时不够（资金未冻结），结算必须失败
		req := model.PayoutRequest{ID: 1, UserID: 2, Amount: 10, Status: model.PayoutStatusPending}
		requester := model.User{ID: 2, Balance: 3}

		_, gotUser, err := SettlePayout(req, requester, model.PayoutStatusPaid, admin)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.InDelta(t, 3.0, gotUser.Balance, 1e-9)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		req := model.PayoutRequest{ID: 1, UserID: 2, Amount: 10, Status: model.PayoutStatusPending}
		requester := model.User{ID: 2, Balance: 25}

		_, _, err := SettlePayout(req, requester, model.PayoutStatusPaid, user)
		assert.ErrorIs(t, err, ErrForbidden)
		_, _, err = SettlePayout(req, requester, model.PayoutStatusPaid, nil)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("invalid outcome", func(t *testing.T) {
		req := model.PayoutRequest{ID: 1, UserID: 2, Amount: 10, Status: model.PayoutStatusPending}
		requester := model.User{ID: 2, Balance: 25}

		_, _, err := SettlePayout(req, requester, "cancelled", admin)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestApproveVideo(t *testing.T) {
	admin := &model.User{ID: 1, UserRole: model.RoleAdmin}
	user := &model.User{ID: 2, UserRole: model.RoleUser}
	video := model.Video{ID: 1, Approved: false}

	_, err := ApproveVideo(video, user)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := ApproveVideo(video, admin)
	require.NoError(t, err)
	assert.True(t, got.Approved)
}

func TestCanRemoveVideo(t *testing.T) {
	assert.ErrorIs(t, CanRemoveVideo(nil), ErrForbidden)
	assert.ErrorIs(t, CanRemoveVideo(&model.User{UserRole: model.RoleUser}), ErrForbidden)
	assert.NoError(t, CanRemoveVideo(&model.User{UserRole: model.RoleAdmin}))
}

func TestApplySettingsPatch(t *testing.T) {
	admin := &model.User{ID: 1, UserRole: model.RoleAdmin}
	current := testSetting()

	valid := SettingsPatch{RPM: 2.5, CreatorShare: 0.7, MinPayout: 10, Currency: "BDT", SiteName: "BanglaTube"}

	t.Run("forbidden for non-admin", func(t *testing.T) {
		_, err := ApplySettingsPatch(current, valid, &model.User{UserRole: model.RoleUser})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("wholesale replace", func(t *testing.T) {
		got, err := ApplySettingsPatch(current, valid, admin)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, got.RPM, 1e-9)
		assert.InDelta(t, 0.7, got.CreatorShare, 1e-9)
		assert.InDelta(t, 10.0, got.MinPayout, 1e-9)
		assert.Equal(t, "BDT", got.Currency)
	})

	t.Run("validation", func(t *testing.T) {
		bad := []SettingsPatch{
			{RPM: 2, CreatorShare: 1.2, MinPayout: 5, Currency: "USD", SiteName: "x"},
			{RPM: 2, CreatorShare: -0.1, MinPayout: 5, Currency: "USD", SiteName: "x"},
			{RPM: -2, CreatorShare: 0.5, MinPayout: 5, Currency: "USD", SiteName: "x"},
			{RPM: 2, CreatorShare: 0.5, MinPayout: -5, Currency: "USD", SiteName: "x"},
			{RPM: 2, CreatorShare: 0.5, MinPayout: 5, Currency: "", SiteName: "x"},
		}
		for _, patch := range bad {
			got, err := ApplySettingsPatch(current, patch, admin)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, current, got, "failed patch must not change settings")
		}
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	// 快照持久化后重新加载应得到完全相同的实体集合
	type snapshot struct {
		Videos   []model.Video         `json:"videos"`
		Users    []model.User          `json:"users"`
		Payouts  []model.PayoutRequest `json:"payouts"`
		Settings model.Setting         `json:"settings"`
	}

	now := time.Now().UTC().Truncate(time.Second)
	orig := snapshot{
		Videos: []model.Video{
			{ID: 1, OwnerID: 2, Title: "t", Description: "d", Category: "Music", Views: 9, Likes: 1, Approved: true, Earnings: 0.5, CreatedAt: now},
		},
		Users: []model.User{
			{ID: 2, UserName: "creator", UserRole: model.RoleUser, Balance: 1.08, TotalEarnings: 3.5, CreatedAt: now},
		},
		Payouts: []model.PayoutRequest{
			{ID: 3, UserID: 2, Amount: 5, Method: "bKash", Status: model.PayoutStatusPending, CreatedAt: now},
		},
		Settings: testSetting(),
	}

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var got snapshot
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, orig, got)
}
