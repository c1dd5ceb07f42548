package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"memberbook/config"
	"memberbook/internal/api/middleware"
	"memberbook/internal/dto"
	"memberbook/internal/service"
	"memberbook/pkg/view"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	cookie  config.CookieConfig
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, cookie: cookie}
}

// ShowRegister 注册页
// GET /register — 已登录时重定向到登录页（保留原系统的既有行为）
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		view.Redirect(c, "/login")
		return
	}
	view.OK(c, "register.html", gin.H{})
}

// Register 提交注册
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		view.OK(c, "register.html", gin.H{"Error": "请完整填写所有字段", "Form": &form})
		return
	}

	if _, err := h.authSvc.Register(c.Request.Context(), &form); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch),
			errors.Is(err, service.ErrEmailExists),
			errors.Is(err, service.ErrInvalidDOB):
			view.OK(c, "register.html", gin.H{"Error": err.Error(), "Form": &form})
		default:
			view.ServerError(c)
		}
		return
	}

	view.Redirect(c, "/login")
}

// ShowLogin 登录页
// GET /login — 已登录时直接进成员目录
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		view.Redirect(c, "/members")
		return
	}
	view.OK(c, "login.html", gin.H{})
}

// Login 提交登录
// POST /login — 成功则签发会话 Cookie 并跳转成员目录
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		view.OK(c, "login.html", gin.H{"Error": service.ErrInvalidCredentials.Error()})
		return
	}

	token, _, err := h.authSvc.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			view.OK(c, "login.html", gin.H{"Error": err.Error()})
			return
		}
		view.ServerError(c)
		return
	}

	h.setSessionCookie(c, token)
	view.Redirect(c, "/members")
}

// Logout 登出
// GET /logout — 清除会话 Cookie 并回首页，不要求已登录
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
	view.Redirect(c, "/")
}

// setSessionCookie 写入 HTTP-only 会话 Cookie
// MaxAge 为 0：浏览器会话级 Cookie，不设显式过期时间
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(middleware.SessionCookieName, token, 0, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *AuthHandler) sameSite() http.SameSite {
	switch h.cookie.SameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
