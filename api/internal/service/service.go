package service

import (
	"context"

	"qrisgw/api/internal/config"
	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/infra/cache"
	"qrisgw/api/internal/infra/storage"
	"qrisgw/api/internal/logger"
	"qrisgw/api/internal/repository"

	"gorm.io/gorm"
)

type Merchants interface {
	FindByApiKey(tx *gorm.DB, apiKey string) (*domain.Merchants, error)
	ApiKeyExists(tx *gorm.DB, apiKey string) (bool, error)
	Create(tx *gorm.DB, merchant *domain.Merchants) error
	Delete(tx *gorm.DB, apiKey string) error
}

type Payments interface {
	// lazy sweep, run at the top of the two hot paths
	SweepExpired(tx *gorm.DB) error
	CreatePayment(ctx context.Context, apiKey string, amount int64, uniquecode string) (*domain.CreatePaymentData, error)
	CheckPayment(ctx context.Context, apiKey, uniquecode string) (*domain.CheckResult, error)
	PendingByApiKey(tx *gorm.DB, apiKey string) ([]domain.PendingTransaction, error)
}

type Mutations interface {
	List(ctx context.Context, memberId, apiId string) (*domain.MutationFeed, error)
}

type QrCodes interface {
	// renders the payload and uploads the png, returns the image url
	Publish(ctx context.Context, content string) (string, error)
}

type Services struct {
	Merchants Merchants
	Payments  Payments
	Mutations Mutations
	QrCodes   QrCodes
}

func NewServices(db *gorm.DB, l logger.Logger, config *config.Config, store *storage.Storage) *Services {
	repos := repository.New()

	mutations := NewMutationsService(config, l)
	qrCodes := NewQrCodesService(store, cache.InitStorage())

	return &Services{
		Merchants: NewMerchantsService(db, repos.Merchants),
		Payments:  NewPaymentsService(db, repos.Transactions, repos.Merchants, mutations, qrCodes),
		Mutations: mutations,
		QrCodes:   qrCodes,
	}
}
