package service

import (
	"context"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/model"
	"Peakfuel/internal/repository"
)

type TierService interface {
	CreateTier(ctx context.Context, creatorID uint64, req *dto.TierCreateDTO) (*dto.TierDTO, error)
	GetCreatorTiers(ctx context.Context, creatorID uint64) ([]*dto.TierDTO, error)
}

type tierServiceImpl struct {
	tierRepo repository.TierRepo
	userRepo repository.UserRepo
}

func NewTierService(tierRepo repository.TierRepo, userRepo repository.UserRepo) TierService {
	return &tierServiceImpl{tierRepo: tierRepo, userRepo: userRepo}
}

func (s *tierServiceImpl) CreateTier(ctx context.Context, creatorID uint64, req *dto.TierCreateDTO) (*dto.TierDTO, error) {
	tier := &model.Tier{
		CreatorID:   creatorID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	}
	if err := s.tierRepo.CreateTier(ctx, tier); err != nil {
		return nil, err
	}
	return toTierDTO(tier), nil
}

func (s *tierServiceImpl) GetCreatorTiers(ctx context.Context, creatorID uint64) ([]*dto.TierDTO, error) {
	creator, err := s.userRepo.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, ErrUserNotFound
	}
	tiers, err := s.tierRepo.GetTiersByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TierDTO, 0, len(tiers))
	for i := range tiers {
		result = append(result, toTierDTO(&tiers[i]))
	}
	return result, nil
}

func toTierDTO(tier *model.Tier) *dto.TierDTO {
	return &dto.TierDTO{
		ID:          tier.ID,
		CreatorID:   tier.CreatorID,
		Name:        tier.Name,
		Description: tier.Description,
		PriceCents:  tier.PriceCents,
	}
}
