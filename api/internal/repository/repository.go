package repository

import (
	"time"

	"qrisgw/api/internal/domain"

	"gorm.io/gorm"
)

type Merchants interface {
	FindByApiKey(tx *gorm.DB, apiKey string) (*domain.Merchants, error)
	Create(tx *gorm.DB, merchant *domain.Merchants) error
	Delete(tx *gorm.DB, apiKey string) error
}

type Transactions interface {
	Create(tx *gorm.DB, trx *domain.Transactions) error
	FindByKeyAndCode(tx *gorm.DB, apiKey, uniquecode string) (*domain.Transactions, error)
	FindPendingByApiKey(tx *gorm.DB, apiKey string) ([]domain.Transactions, error)
	CountPendingByAmount(tx *gorm.DB, amount int64, since time.Time) (int64, error)
	// MarkExpiredFailed fails every pending row whose expiry has passed.
	// Single conditional update, safe to run concurrently.
	MarkExpiredFailed(tx *gorm.DB, now time.Time) error
	// MarkSuccess flips the pending row to success. Never downgrades and
	// never touches settled rows, safe against duplicate confirmations.
	MarkSuccess(tx *gorm.DB, apiKey, uniquecode string) error
}

type Repositories struct {
	Merchants    Merchants
	Transactions Transactions
}

func New() *Repositories {
	return &Repositories{
		Merchants:    InitMerchantsRepo(),
		Transactions: InitTransactionsRepo(),
	}
}
