package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 12

type UserService struct {
	repo   *mysql.UserRepository
	images pkg.ImageProcessor
}

type SignupInput struct {
	Email        string
	Name         string
	Username     string
	Password     string
	ProfileImage []byte
}

func NewUserService(db *gorm.DB, images pkg.ImageProcessor) *UserService {
	return &UserService{
		repo:   &mysql.UserRepository{DB: db},
		images: images,
	}
}

// Signup 注册，头像压缩为 500x500 JPEG；邮箱已存在返回 ErrConflict
func (s *UserService) Signup(ctx context.Context, in SignupInput) (uint64, error) {
	if in.Email == "" || in.Password == "" {
		return 0, pkg.Validationf("email or password not provided")
	}

	exists, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		slog.Error("user: email lookup failed", "err", err)
		return 0, pkg.Storage("check email", err)
	}
	if exists {
		return 0, pkg.Conflictf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, pkg.Validationf("password longer than 72 bytes")
	}
	if err != nil {
		slog.Error("user: password hash failed", "err", err)
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var profile []byte
	if len(in.ProfileImage) > 0 {
		if profile, err = s.images.Compress(in.ProfileImage, pkg.ProfileImageSize, pkg.ProfileImageSize); err != nil {
			slog.Error("user: profile image compression failed", "err", err)
			return 0, err
		}
	}

	user := &model.User{
		Email:        in.Email,
		Name:         in.Name,
		Username:     in.Username,
		Password:     string(hash),
		ProfileImage: profile,
		RoleID:       1,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引拦截
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, pkg.Conflictf("email already registered")
		}
		slog.Error("user: insert failed", "err", err)
		return 0, pkg.Storage("create user", err)
	}
	return user.ID, nil
}

// Login 校验邮箱和密码，区分 invalidEmail / invalidPassword
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrInvalidEmail
	}
	if err != nil {
		slog.Error("user: login lookup failed", "err", err)
		return nil, pkg.Storage("find user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, pkg.ErrInvalidPassword
	}
	return user, nil
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, pkg.Validationf("email not provided")
	}
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		slog.Error("user: email lookup failed", "err", err)
		return false, pkg.Storage("check email", err)
	}
	return exists, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*model.User, error) {
	if userID == 0 {
		return nil, pkg.Validationf("user id not provided")
	}
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFoundf("user %d", userID)
	}
	if err != nil {
		slog.Error("user: lookup failed", "user_id", userID, "err", err)
		return nil, pkg.Storage("find user", err)
	}
	return user, nil
}

// UpdateUser 整体覆盖资料；邮箱是登录凭据，不能置空
func (s *UserService) UpdateUser(ctx context.Context, userID uint64, p mysql.ProfileUpdate) error {
	if userID == 0 {
		return pkg.Validationf("user id not provided")
	}
	if p.Email == "" {
		return pkg.Validationf("email not provided")
	}
	n, err := s.repo.UpdateProfile(ctx, userID, p)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkg.Conflictf("email already registered")
		}
		slog.Error("user: update failed", "user_id", userID, "err", err)
		return pkg.Storage("update user", err)
	}
	if n == 0 {
		return pkg.NotFoundf("user %d", userID)
	}
	return nil
}
