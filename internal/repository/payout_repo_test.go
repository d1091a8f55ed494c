package repository

import (
	"testing"

	"btube-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库按连接隔离，收紧连接池避免拿到空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Video{}, &model.PayoutRequest{}))
	return db
}

func seedPendingPayout(t *testing.T, db *gorm.DB, amount float64) *model.PayoutRequest {
	t.Helper()
	user := &model.User{UserName: "creator", Password: "x", UserRole: model.RoleUser, Balance: amount}
	require.NoError(t, db.Create(user).Error)

	req := &model.PayoutRequest{
		UserID: user.ID,
		Amount: amount,
		Method: "bKash",
		Status: model.PayoutStatusPending,
	}
	require.NoError(t, db.Create(req).Error)
	return req
}

func TestSaveStatusTransitionsFromPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewPayoutRepository(db)
	req := seedPendingPayout(t, db, 10)

	require.NoError(t, repo.SaveStatus(req.ID, model.PayoutStatusPaid))

	got, err := repo.GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PayoutStatusPaid, got.Status)
}

func TestSaveStatusRejectsSecondSettlement(t *testing.T) {
	db := newTestDB(t)
	repo := NewPayoutRepository(db)
	req := seedPendingPayout(t, db, 10)

	require.NoError(t, repo.SaveStatus(req.ID, model.PayoutStatusPaid))

	// 第二次结算条件更新不命中，终态不被改写
	err := repo.SaveStatus(req.ID, model.PayoutStatusRejected)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PayoutStatusPaid, got.Status)
}

func TestSaveStatusUnknownPayout(t *testing.T) {
	db := newTestDB(t)
	repo := NewPayoutRepository(db)

	err := repo.SaveStatus(12345, model.PayoutStatusPaid)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserSaveMoney(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &model.User{UserName: "earner", Password: "x", UserRole: model.RoleUser, Balance: 10, TotalEarnings: 10}
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, repo.SaveMoney(user.ID, 4.6, 12.2))

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.6, got.Balance)
	assert.Equal(t, 12.2, got.TotalEarnings)

	assert.ErrorIs(t, repo.SaveMoney(99999, 1, 1), gorm.ErrRecordNotFound)
}
