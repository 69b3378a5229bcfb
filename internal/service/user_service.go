package service

import (
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/consts"
	"Board/internal/pkg/redis"
	"Board/internal/pkg/security"
	"Board/internal/pkg/util"
	"Board/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Signup(ctx context.Context, dto *dto.SignupDTO) (uint64, error)
	Login(ctx context.Context, dto *dto.LoginDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, signupDTO *dto.SignupDTO) (uint64, error) {
	signupDTO.LoginID = strings.TrimSpace(signupDTO.LoginID)
	signupDTO.Username = strings.TrimSpace(signupDTO.Username)
	if err := util.ValidateDTO(signupDTO); err != nil {
		return 0, invalidInput(ctx, err)
	}

	exists, err := s.userRepo.ExistsByLoginID(ctx, signupDTO.LoginID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrLoginIDExists
	}
	exists, err = s.userRepo.ExistsByUsername(ctx, signupDTO.Username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUsernameExists
	}

	passwordHash, err := security.HashPassword(signupDTO.Password)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		LoginID:  signupDTO.LoginID,
		Password: passwordHash,
		Username: signupDTO.Username,
		Role:     consts.RoleUser,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateError(err) {
			return 0, s.resolveSignupConflict(ctx, signupDTO.LoginID)
		}
		return 0, err
	}

	return user.ID, nil
}

// resolveSignupConflict 并发注册撞上唯一索引时，判断冲突的是哪一列
func (s *UserServiceImpl) resolveSignupConflict(ctx context.Context, loginID string) error {
	exists, err := s.userRepo.ExistsByLoginID(ctx, loginID)
	if err == nil && exists {
		return ErrLoginIDExists
	}
	return ErrUsernameExists
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error) {
	if err := util.ValidateDTO(loginDTO); err != nil {
		return "", invalidInput(ctx, err)
	}

	user, err := s.userRepo.GetUserByLoginID(ctx, loginDTO.LoginID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrLoginIDNotFound
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return "", ErrPasswordIncorrect
		}
		return "", err
	}

	return security.GenerateToken(user.ID, []string{user.Role})
}

// Logout 令牌在剩余有效期内进入黑名单
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrUnauthorized
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrUnauthorized
	}
	return redis.RevokeToken(ctx, signature, claims.RemainingTTL(time.Now()))
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}
