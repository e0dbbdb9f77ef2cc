package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/infra/cache"
	"qrisgw/api/internal/infra/postgres"
	"qrisgw/api/internal/repository"
	"qrisgw/pkg/qris"
	"qrisgw/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MIN_AMOUNT = 1000
	MAX_AMOUNT = 10_000_000

	// pending transactions inside this trailing window count as collisions
	COLLISION_WINDOW = 1440 * time.Minute

	// payment lifetime
	VALID_FOR = 24 * time.Hour
)

// flat service rate applied to every invoice
var serviceRate = decimal.NewFromFloat(0.007)

type PaymentsService struct {
	repo      repository.Transactions
	merchants repository.Merchants
	mutations Mutations
	qrCodes   QrCodes
	db        *gorm.DB
	cache     *cache.Cache
}

func NewPaymentsService(db *gorm.DB, repo repository.Transactions, merchants repository.Merchants, mutations Mutations, qrCodes QrCodes) *PaymentsService {
	return &PaymentsService{
		repo:      repo,
		merchants: merchants,
		mutations: mutations,
		qrCodes:   qrCodes,
		db:        db,
		cache:     cache.InitStorage(),
	}
}

func (s *PaymentsService) SweepExpired(tx *gorm.DB) error {
	return s.repo.MarkExpiredFailed(tx, time.Now())
}

// ComputeFee is the disambiguation fee: the 0.7% service rate plus one minor
// unit per in-flight pending transaction with the same requested amount.
// The feed matches on transferred amount alone, so concurrent duplicates
// must end up with distinct invoice totals. Best effort, not a guarantee:
// the collision count is read-then-decide with no lock across the insert.
func ComputeFee(amount, collisions int64) int64 {
	service := decimal.NewFromInt(amount).Mul(serviceRate).Round(0).IntPart()
	return collisions + service
}

// Quote validates the requested amount and computes (fee, invoice) for it.
func (s *PaymentsService) Quote(tx *gorm.DB, amount int64, now time.Time) (fee, invoice int64, err error) {
	if amount < MIN_AMOUNT {
		return 0, 0, domain.ErrAmountTooSmall
	}
	if amount > MAX_AMOUNT {
		return 0, 0, domain.ErrAmountTooBig
	}

	collisions, err := s.repo.CountPendingByAmount(tx, amount, now.Add(-COLLISION_WINDOW))
	if err != nil {
		return 0, 0, err
	}

	fee = ComputeFee(amount, collisions)
	return fee, amount + fee, nil
}

func (s *PaymentsService) CreatePayment(ctx context.Context, apiKey string, amount int64, uniquecode string) (*domain.CreatePaymentData, error) {
	now := time.Now()

	merchant, err := s.merchants.FindByApiKey(s.db, apiKey)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, err
	}

	if uniquecode == "" {
		uniquecode = uuid.NewString()
	}

	expired := now.Add(VALID_FOR)

	if err := s.SweepExpired(s.db); err != nil {
		return nil, err
	}

	// merchant-supplied codes may repeat, two pending rows with the same
	// code cannot be told apart at settlement time
	existing, err := s.repo.FindByKeyAndCode(s.db, apiKey, uniquecode)
	if err == nil && existing.Status.IsPending() {
		return nil, domain.ErrUniquecodeInFlight
	}
	if err != nil && !postgres.IsNotFound(err) {
		return nil, err
	}

	fee, invoice, err := s.Quote(s.db, amount, now)
	if err != nil {
		return nil, err
	}

	payload, err := qris.Encode(merchant.Qris, invoice)
	if err != nil {
		return nil, err
	}

	// no retrievable image means nothing to pay against, do not persist
	imageUrl, err := s.qrCodes.Publish(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQrisPublishFailed, err)
	}

	err = s.repo.Create(s.db, &domain.Transactions{
		ApiKey:     apiKey,
		Uniquecode: uniquecode,
		Amount:     amount,
		Fee:        fee,
		Invoice:    invoice,
		Status:     domain.STATUS_PENDING,
		Expired:    expired,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSaveTransaction, err)
	}

	return &domain.CreatePaymentData{
		Amount:     amount,
		Fee:        fee,
		Uniquecode: uniquecode,
		Invoice:    invoice,
		Qris:       imageUrl,
		Expired:    domain.FormatTime(expired),
	}, nil
}

func successCacheKey(apiKey, uniquecode string) string {
	return "success:" + apiKey + ":" + uniquecode
}

func (s *PaymentsService) CheckPayment(ctx context.Context, apiKey, uniquecode string) (*domain.CheckResult, error) {
	now := time.Now()

	trx, err := s.repo.FindByKeyAndCode(s.db, apiKey, uniquecode)
	if err != nil {
		if postgres.IsNotFound(err) {
			return &domain.CheckResult{
				Status:  domain.CheckStatusNotFound,
				Code:    http.StatusNotFound,
				Message: domain.ErrMsgTransactionNotFound,
			}, nil
		}
		return nil, err
	}

	// confirmed transactions answer from the cache, the feed is not asked twice
	if trx.Status.IsSuccess() {
		cached, err := utils.SafeCast[domain.CheckResult](s.cache.Load(successCacheKey(apiKey, uniquecode)))
		if err == nil {
			return &cached, nil
		}
		return &domain.CheckResult{
			Status:      domain.CheckStatusSuccess,
			Code:        http.StatusOK,
			RequestTime: domain.FormatTime(now),
			Data: &domain.CheckPaymentData{
				Message: domain.ErrMsgTransactionSuccess,
				Amount:  strconv.FormatInt(trx.Invoice, 10),
			},
		}, nil
	}

	if err := s.SweepExpired(s.db); err != nil {
		return nil, err
	}

	if trx.Status.IsFailed() || trx.IsExpiredAt(now) {
		return &domain.CheckResult{
			Status:  domain.CheckStatusExpired,
			Code:    http.StatusNotFound,
			Message: domain.ErrMsgTransactionExpired,
		}, nil
	}

	merchant, err := s.merchants.FindByApiKey(s.db, apiKey)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, err
	}

	feed, err := s.mutations.List(ctx, merchant.MemberID, merchant.ApiID)
	if err != nil {
		// transport failure, transaction state untouched
		return &domain.CheckResult{
			Status:  domain.CheckStatusFailed,
			Code:    http.StatusInternalServerError,
			Message: "upstream error: " + err.Error(),
		}, nil
	}

	if feed.Status == domain.FeedStatusFailed {
		return &domain.CheckResult{
			Status:  domain.CheckStatusFailed,
			Code:    http.StatusInternalServerError,
			Message: domain.ErrMsgInvalidCredential,
		}, nil
	}

	if feed.Status != domain.FeedStatusSuccess {
		// the aggregator answers with an empty body shape when it has no
		// mutations at all
		return &domain.CheckResult{
			Status:      domain.CheckStatusUnpaid,
			Code:        http.StatusNotFound,
			RequestTime: domain.FormatTime(now),
			Message:     domain.ErrMsgUnpaid,
		}, nil
	}

	match := Match(feed.Data, trx.Invoice, trx.CreatedAt, trx.Expired, now)
	if match == nil {
		return &domain.CheckResult{
			Status:      domain.CheckStatusUnpaid,
			Code:        http.StatusNotFound,
			RequestTime: domain.FormatTime(now),
			Message:     domain.ErrMsgUnpaid,
		}, nil
	}

	// conditional write, a concurrent sweep or duplicate confirmation
	// cannot downgrade it
	if err := s.repo.MarkSuccess(s.db, apiKey, uniquecode); err != nil {
		return nil, err
	}

	result := domain.CheckResult{
		Status:      domain.CheckStatusSuccess,
		Code:        http.StatusOK,
		RequestTime: domain.FormatTime(now),
		Data: &domain.CheckPaymentData{
			Message:       domain.ErrMsgTransactionSuccess,
			Date:          match.Date,
			Amount:        match.Amount,
			Brand:         match.BrandName,
			Name:          match.BuyerName(),
			Balance:       match.Balance,
			StatusUpdated: true,
		},
	}

	s.cache.SetNoExp(successCacheKey(apiKey, uniquecode), result)

	return &result, nil
}

func (s *PaymentsService) PendingByApiKey(tx *gorm.DB, apiKey string) ([]domain.PendingTransaction, error) {
	trxs, err := s.repo.FindPendingByApiKey(tx, apiKey)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.PendingTransaction, 0, len(trxs))
	for _, trx := range trxs {
		pending = append(pending, domain.PendingTransaction{
			Amount:     trx.Amount,
			Fee:        trx.Fee,
			Invoice:    trx.Invoice,
			Uniquecode: trx.Uniquecode,
			CreatedAt:  domain.FormatTime(trx.CreatedAt),
			Expired:    domain.FormatTime(trx.Expired),
		})
	}

	return pending, nil
}
