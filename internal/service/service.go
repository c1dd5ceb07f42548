package service

import (
	"go.uber.org/zap"

	"memberbook/internal/repository"
	"memberbook/pkg/session"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth AuthService
	User UserService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, codec *session.Codec, logger *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo, codec, logger),
		User: NewUserService(repo, logger),
	}
}
