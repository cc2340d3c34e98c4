package repository

import (
	"context"
	"errors"

	"Peakfuel/internal/model"

	"gorm.io/gorm"
)

type RoleRepo interface {
	GetRoleByName(ctx context.Context, name string) (*model.Role, error)
	AddUserRole(ctx context.Context, userID uint64, roleID uint64) error
}

type RoleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &RoleRepoImpl{db: db}
}

func (s *RoleRepoImpl) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (s *RoleRepoImpl) AddUserRole(ctx context.Context, userID uint64, roleID uint64) error {
	return s.db.WithContext(ctx).Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}
