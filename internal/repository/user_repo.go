package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"memberbook/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id uint, firstName, lastName, organization, position string) (*model.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// Create 插入新用户
// 邮箱唯一约束冲突原样上抛，由调用方预检并生成友好提示
func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List 按存储默认顺序（id 升序）返回全部用户
func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile 覆写四个资料字段并持久化
// id 不存在时返回 gorm.ErrRecordNotFound，调用方需先确认存在性
func (r *userRepo) UpdateProfile(ctx context.Context, id uint, firstName, lastName, organization, position string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Organization = organization
	user.Position = position

	if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword 覆写密码哈希
// id 不存在时静默返回 nil（与资料更新的语义刻意不同）
func (r *userRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	user.Password = passwordHash
	return r.db.WithContext(ctx).Save(&user).Error
}
