package mysql

import (
	"context"

	"UAsync_Community/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

// ProfileUpdate 可修改的资料字段
type ProfileUpdate struct {
	Username    string
	Name        string
	Email       string
	PhoneNumber string
	Birthday    string
	Biography   string
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, "user_id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UpdateProfile 整体覆盖资料字段，返回受影响行数
func (r *UserRepository) UpdateProfile(ctx context.Context, id uint64, p ProfileUpdate) (int64, error) {
	tx := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", id).
		Updates(map[string]any{
			"username":     p.Username,
			"name":         p.Name,
			"email":        p.Email,
			"phone_number": p.PhoneNumber,
			"birthday":     p.Birthday,
			"biography":    p.Biography,
		})
	return tx.RowsAffected, tx.Error
}
