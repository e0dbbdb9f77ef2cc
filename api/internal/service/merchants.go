package service

import (
	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/infra/postgres"
	"qrisgw/api/internal/repository"

	"gorm.io/gorm"
)

type MerchantsService struct {
	repo repository.Merchants
	db   *gorm.DB
}

func NewMerchantsService(db *gorm.DB, repo repository.Merchants) *MerchantsService {
	return &MerchantsService{repo: repo, db: db}
}

func (s *MerchantsService) FindByApiKey(tx *gorm.DB, apiKey string) (*domain.Merchants, error) {
	return s.repo.FindByApiKey(tx, apiKey)
}

func (s *MerchantsService) ApiKeyExists(tx *gorm.DB, apiKey string) (bool, error) {
	_, err := s.FindByApiKey(tx, apiKey)
	if err != nil {
		if postgres.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *MerchantsService) Create(tx *gorm.DB, merchant *domain.Merchants) error {
	return s.repo.Create(tx, merchant)
}

func (s *MerchantsService) Delete(tx *gorm.DB, apiKey string) error {
	return s.repo.Delete(tx, apiKey)
}
