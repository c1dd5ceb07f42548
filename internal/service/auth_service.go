package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"memberbook/internal/dto"
	"memberbook/internal/model"
	"memberbook/internal/repository"
	"memberbook/pkg/password"
	"memberbook/pkg/session"
)

// ── 认证模块业务错误 ──

var (
	ErrPasswordMismatch = errors.New("两次输入的密码不一致")
	ErrEmailExists      = errors.New("该邮箱已被注册")
	ErrInvalidDOB       = errors.New("出生日期格式无效")
	// ErrInvalidCredentials 账号不存在与密码错误共用一条提示，避免枚举探测
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, form *dto.RegisterForm) (*model.User, error)
	Login(ctx context.Context, email, plainPassword string) (token string, user *model.User, err error)
}

type authService struct {
	repo   *repository.Repository
	codec  *session.Codec
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(repo *repository.Repository, codec *session.Codec, logger *zap.Logger) AuthService {
	return &authService{repo: repo, codec: codec, logger: logger}
}

// Register 注册新用户
// 密码确认不一致或邮箱已存在时返回业务错误，不落库
func (s *authService) Register(ctx context.Context, form *dto.RegisterForm) (*model.User, error) {
	if form.Password != form.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	// 邮箱唯一性预检（最终仍由存储层唯一索引兜底）
	if _, err := s.repo.User.GetByEmail(ctx, form.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.String("email", form.Email), zap.Error(err))
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", form.DOB)
	if err != nil {
		return nil, ErrInvalidDOB
	}

	hash, err := password.Hash(form.Password)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Gender:       form.Gender,
		Nationality:  form.Nationality,
		Organization: form.Organization,
		Position:     form.Position,
		DOB:          dob,
		Email:        form.Email,
		Password:     hash,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	return user, nil
}

// Login 校验凭据并签发会话令牌
// 用户不存在与密码错误返回同一个 ErrInvalidCredentials
func (s *authService) Login(ctx context.Context, email, plainPassword string) (string, *model.User, error) {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return "", nil, err
	}

	if !password.Verify(plainPassword, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Encode(user.ID)
	if err != nil {
		s.logger.Error("签发会话令牌失败", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", nil, err
	}

	return token, user, nil
}
