package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"memberbook/internal/dto"
	"memberbook/internal/model"
	"memberbook/internal/repository"
	"memberbook/pkg/password"
)

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrOldPasswordWrong    = errors.New("旧密码不正确")
	ErrNewPasswordEmpty    = errors.New("新密码不能为空")
	ErrNewPasswordMismatch = errors.New("两次输入的新密码不一致")
)

// UserService 用户业务接口
type UserService interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id uint, form *dto.EditProfileForm) (*model.User, error)
	ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword, confirmPassword string) error
	ExportDirectory(ctx context.Context) (*bytes.Buffer, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// List 成员目录：全部用户，id 升序
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// UpdateProfile 覆写姓名、单位、职位四个字段
func (s *userService) UpdateProfile(ctx context.Context, id uint, form *dto.EditProfileForm) (*model.User, error) {
	user, err := s.repo.User.UpdateProfile(ctx, id, form.FirstName, form.LastName, form.Organization, form.Position)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("更新用户资料失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ChangePassword 修改密码
// 规则：旧密码必须验证通过；新密码非空；两次输入一致
// 任一规则不满足时，存储的哈希保持原样
func (s *userService) ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword, confirmPassword string) error {
	if !password.Verify(oldPassword, user.Password) {
		return ErrOldPasswordWrong
	}
	if newPassword == "" {
		return ErrNewPasswordEmpty
	}
	if newPassword != confirmPassword {
		return ErrNewPasswordMismatch
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.logger.Error("更新密码失败", zap.Uint("id", user.ID), zap.Error(err))
		return err
	}

	return nil
}

// ExportDirectory 将成员目录导出为 Excel 工作簿，返回序列化后的内容
func (s *userService) ExportDirectory(ctx context.Context) (*bytes.Buffer, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("导出时列出用户失败", zap.Error(err))
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Members"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "姓", "名", "性别", "国籍", "单位", "职位", "出生日期", "邮箱"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("写入表头失败: %w", err)
		}
	}

	for row, u := range users {
		values := []interface{}{
			u.ID, u.FirstName, u.LastName, u.Gender, u.Nationality,
			u.Organization, u.Position, u.DOB.Format("2006-01-02"), u.Email,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("写入第 %d 行失败: %w", row+2, err)
			}
		}
	}

	return f.WriteToBuffer()
}
