package repository

import (
	"time"

	"qrisgw/api/internal/domain"

	"gorm.io/gorm"
)

type TransactionsRepo struct {
}

func InitTransactionsRepo() *TransactionsRepo {
	return &TransactionsRepo{}
}

func (r *TransactionsRepo) Create(tx *gorm.DB, trx *domain.Transactions) error {
	return tx.Create(trx).Error
}

// a uniquecode may be reissued after its transaction expired, the latest
// row is the live one
func (r *TransactionsRepo) FindByKeyAndCode(tx *gorm.DB, apiKey, uniquecode string) (*domain.Transactions, error) {
	var trx domain.Transactions
	err := tx.Where("api_key = ? AND uniquecode = ?", apiKey, uniquecode).
		Order("id DESC").First(&trx).Error
	return &trx, err
}

func (r *TransactionsRepo) FindPendingByApiKey(tx *gorm.DB, apiKey string) ([]domain.Transactions, error) {
	var trxs []domain.Transactions
	err := tx.Where("api_key = ? AND status = ?", apiKey, domain.STATUS_PENDING).
		Order("created_at DESC").Find(&trxs).Error
	return trxs, err
}

// collision counter query: pending rows with the same requested amount
// inside the trailing window, across all merchants. The feed matches on
// amount alone, so duplicates anywhere are ambiguous.
func (r *TransactionsRepo) CountPendingByAmount(tx *gorm.DB, amount int64, since time.Time) (int64, error) {
	var count int64
	err := tx.Model(&domain.Transactions{}).
		Where("amount = ? AND status = ? AND created_at >= ?", amount, domain.STATUS_PENDING, since).
		Count(&count).Error
	return count, err
}

func (r *TransactionsRepo) MarkExpiredFailed(tx *gorm.DB, now time.Time) error {
	return tx.Model(&domain.Transactions{}).
		Where("status = ? AND expired < ?", domain.STATUS_PENDING, now).
		Update("status", domain.STATUS_FAILED).Error
}

func (r *TransactionsRepo) MarkSuccess(tx *gorm.DB, apiKey, uniquecode string) error {
	return tx.Model(&domain.Transactions{}).
		Where("api_key = ? AND uniquecode = ? AND status = ?", apiKey, uniquecode, domain.STATUS_PENDING).
		Update("status", domain.STATUS_SUCCESS).Error
}
