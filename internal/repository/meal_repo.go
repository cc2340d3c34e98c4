package repository

import (
	"context"
	"errors"

	"Peakfuel/internal/model"

	"gorm.io/gorm"
)

type MealRepo interface {
	CreateMeal(ctx context.Context, meal *model.Meal) error
	GetMeal(ctx context.Context, id uint64) (*model.Meal, error)
	CreateMealPlan(ctx context.Context, plan *model.MealPlan) error
	GetMealPlan(ctx context.Context, id uint64) (*model.MealPlan, error)
	GetMealsByIDs(ctx context.Context, ids []uint64) ([]model.Meal, error)
}

type MealRepoImpl struct {
	db *gorm.DB
}

func NewMealRepo(db *gorm.DB) MealRepo {
	return &MealRepoImpl{db: db}
}

func (s *MealRepoImpl) CreateMeal(ctx context.Context, meal *model.Meal) error {
	return s.db.WithContext(ctx).Create(meal).Error
}

func (s *MealRepoImpl) GetMeal(ctx context.Context, id uint64) (*model.Meal, error) {
	var meal model.Meal
	err := s.db.WithContext(ctx).First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealRepoImpl) CreateMealPlan(ctx context.Context, plan *model.MealPlan) error {
	return s.db.WithContext(ctx).Create(plan).Error
}

func (s *MealRepoImpl) GetMealPlan(ctx context.Context, id uint64) (*model.MealPlan, error) {
	var plan model.MealPlan
	err := s.db.WithContext(ctx).First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (s *MealRepoImpl) GetMealsByIDs(ctx context.Context, ids []uint64) ([]model.Meal, error) {
	var meals []model.Meal
	if len(ids) == 0 {
		return meals, nil
	}
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}
