package service

import (
	"context"
	"time"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/model"
	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/redis"
	"Peakfuel/internal/pkg/security"
	"Peakfuel/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.LoginResultDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResultDTO, error)
	GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) UserService {
	return &userServiceImpl{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.LoginResultDTO, error) {
	existing, err := s.userRepo.GetUserByHandle(ctx, req.Handle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserHandleExist
	}
	existing, err = s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserEmailExist
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	avatar := req.AvatarURL
	if avatar == nil {
		defaultAvatar := consts.DefaultAvatarURL
		avatar = &defaultAvatar
	}
	user := &model.User{
		Handle:    req.Handle,
		Email:     req.Email,
		Password:  hash,
		AvatarURL: avatar,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	roleName := model.RoleUser
	if req.Creator {
		roleName = model.RoleCreator
	}
	if err := s.grantRole(ctx, user.ID, roleName); err != nil {
		return nil, err
	}

	fresh, err := s.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.issueToken(fresh)
}

func (s *userServiceImpl) grantRole(ctx context.Context, userID uint64, roleName string) error {
	role, err := s.roleRepo.GetRoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return UnExpectedError
	}
	return s.roleRepo.AddUserRole(ctx, userID, role.ID)
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByHandle(ctx, req.Handle)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}
	return s.issueToken(user)
}

func (s *userServiceImpl) issueToken(user *model.User) (*dto.LoginResultDTO, error) {
	roles := make([]string, 0, len(user.UserRoles))
	for _, ur := range user.UserRoles {
		if ur.Role.Name != "" {
			roles = append(roles, ur.Role.Name)
		}
	}
	token, err := security.GenerateToken(user.ID, roles)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

func toUserDTO(user *model.User) dto.UserDTO {
	createdAt := user.CreatedAt
	return dto.UserDTO{
		UserID:    user.ID,
		Handle:    user.Handle,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Role:      user.DisplayRole(),
		CreatedAt: &createdAt,
	}
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	result := toUserDTO(user)
	return &result, nil
}

// Logout revokes the presented token until its natural expiry. Only the
// signature segment is stored in redis.
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrParamInvalid
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, 1, ttl)
}
