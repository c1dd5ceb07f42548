package handler

import (
	"memberbook/config"
	"memberbook/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth *AuthHandler
	User *UserHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth: NewAuthHandler(svc.Auth, cfg.Auth.Cookie),
		User: NewUserHandler(svc.User),
	}
}
