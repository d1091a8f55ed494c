package service

import (
	"errors"
	"time"

	"btube-go/internal/api/dto"
	"btube-go/internal/ledger"
	"btube-go/internal/model"
	"btube-go/internal/repository"
	"btube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrPayoutNotFound = errors.New("提现单不存在")

type PayoutService struct {
	db          *gorm.DB
	payoutRepo  *repository.PayoutRepository
	userRepo    *repository.UserRepository
	settingRepo *repository.SettingRepository
}

func NewPayoutService(db *gorm.DB, payoutRepo *repository.PayoutRepository,
	userRepo *repository.UserRepository, settingRepo *repository.SettingRepository) *PayoutService {
	return &PayoutService{db: db, payoutRepo: payoutRepo, userRepo: userRepo, settingRepo: settingRepo}
}

// Submit 提交提现申请。提交时不冻结余额，结算时再校验并扣减
func (s *PayoutService) Submit(actor *model.User, req *dto.PayoutSubmitRequest) (*dto.PayoutInfo, error) {
	setting := loadSetting(s.settingRepo)

	payout, err := ledger.SubmitPayout(*actor, req.Amount, req.Method, setting, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.payoutRepo.Create(&payout); err != nil {
		return nil, err
	}

	logger.Info("Payout submitted",
		zap.Int64("payout_id", payout.ID),
		zap.Int64("user_id", actor.ID),
		zap.Float64("amount", payout.Amount),
		zap.String("method", payout.Method),
	)

	return toPayoutInfo(&payout), nil
}

// ListMine 本人提现单列表
func (s *PayoutService) ListMine(userID int64) (*dto.PayoutListData, error) {
	payouts, err := s.payoutRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toPayoutListData(payouts), nil
}

// ListAll 全部提现单（管理员，可按状态筛选）
func (s *PayoutService) ListAll(status *string) (*dto.PayoutListData, error) {
	payouts, err := s.payoutRepo.ListAll(status)
	if err != nil {
		return nil, err
	}
	return toPayoutListData(payouts), nil
}

// Settle 管理员结算提现单：pending -> paid / rejected。
// paid 时重新校验余额并扣减，状态变更与余额扣减在同一事务内。
// 提现单与申请人两行都持锁读，并发结算在锁上排队；
// 即使锁被绕过，SaveStatus 的条件更新也会拦下第二次结算。
func (s *PayoutService) Settle(id int64, outcome string, actor *model.User) (*dto.PayoutInfo, error) {
	var settled model.PayoutRequest

	err := s.db.Transaction(func(tx *gorm.DB) error {
		payoutRepo := s.payoutRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)

		payout, err := payoutRepo.GetByIDForUpdate(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPayoutNotFound
			}
			return err
		}

		requester, err := userRepo.GetByIDForUpdate(payout.UserID)
		if err != nil {
			return err
		}

		updatedPayout, updatedRequester, err := ledger.SettlePayout(*payout, *requester, outcome, actor)
		if err != nil {
			return err
		}

		if err := payoutRepo.SaveStatus(updatedPayout.ID, updatedPayout.Status); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ledger.ErrNotPending
			}
			return err
		}
		if updatedPayout.Status == model.PayoutStatusPaid {
			if err := userRepo.SaveMoney(updatedRequester.ID, updatedRequester.Balance, updatedRequester.TotalEarnings); err != nil {
				return err
			}
		}

		settled = updatedPayout
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payout settled",
		zap.Int64("payout_id", settled.ID),
		zap.String("outcome", settled.Status),
		zap.Int64("admin_id", actor.ID),
	)

	return toPayoutInfo(&settled), nil
}

func toPayoutInfo(p *model.PayoutRequest) *dto.PayoutInfo {
	info := &dto.PayoutInfo{
		ID:        p.ID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.User.ID != 0 {
		info.Username = p.User.UserName
	}
	return info
}

func toPayoutListData(payouts []model.PayoutRequest) *dto.PayoutListData {
	items := make([]dto.PayoutInfo, 0, len(payouts))
	for i := range payouts {
		items = append(items, *toPayoutInfo(&payouts[i]))
	}
	return &dto.PayoutListData{Payouts: items, Total: int64(len(items))}
}
