package repository

import (
	"context"
	"errors"

	"Peakfuel/internal/model"

	"gorm.io/gorm"
)

type TierRepo interface {
	CreateTier(ctx context.Context, tier *model.Tier) error
	GetTier(ctx context.Context, id uint64) (*model.Tier, error)
	GetTiersByCreator(ctx context.Context, creatorID uint64) ([]model.Tier, error)
}

type TierRepoImpl struct {
	db *gorm.DB
}

func NewTierRepo(db *gorm.DB) TierRepo {
	return &TierRepoImpl{db: db}
}

func (s *TierRepoImpl) CreateTier(ctx context.Context, tier *model.Tier) error {
	return s.db.WithContext(ctx).Create(tier).Error
}

func (s *TierRepoImpl) GetTier(ctx context.Context, id uint64) (*model.Tier, error) {
	var tier model.Tier
	err := s.db.WithContext(ctx).First(&tier, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tier, nil
}

func (s *TierRepoImpl) GetTiersByCreator(ctx context.Context, creatorID uint64) ([]model.Tier, error) {
	var tiers []model.Tier
	err := s.db.WithContext(ctx).Where("creator_id = ?", creatorID).
		Order("price_cents ASC").Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}
