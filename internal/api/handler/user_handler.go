package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"memberbook/internal/api/middleware"
	"memberbook/internal/dto"
	"memberbook/internal/service"
	"memberbook/pkg/view"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Index 首页
// GET / — 匿名可访问，已登录时展示个性化内容
func (h *UserHandler) Index(c *gin.Context) {
	view.OK(c, "index.html", gin.H{"CurrentUser": middleware.CurrentUser(c)})
}

// Members 成员目录
// GET /members — 需要登录（匿名由 RequireUser 重定向到登录页）
func (h *UserHandler) Members(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		view.ServerError(c)
		return
	}

	view.OK(c, "members.html", gin.H{
		"CurrentUser": middleware.CurrentUser(c),
		"Users":       users,
	})
}

// ExportMembers 成员目录导出
// GET /members/export — 以 .xlsx 附件下载
func (h *UserHandler) ExportMembers(c *gin.Context) {
	buf, err := h.userSvc.ExportDirectory(c.Request.Context())
	if err != nil {
		view.ServerError(c)
		return
	}

	filename := fmt.Sprintf("members-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ShowEdit 资料编辑页
// GET /edit/:id — 仅允许本人访问，否则渲染 403 页
func (h *UserHandler) ShowEdit(c *gin.Context) {
	current := middleware.CurrentUser(c)
	targetID, ok := parseTargetID(c)
	if current == nil || !ok || current.ID != targetID {
		view.Forbidden(c, gin.H{"CurrentUser": current})
		return
	}

	view.OK(c, "edit.html", gin.H{"CurrentUser": current})
}

// Edit 提交资料编辑
// POST /edit/:id — 归属校验与 GET 一致；资料字段无条件更新，
// 密码三字段任一非空时额外走改密码流程。
// 每次请求只返回一种结果：资料已更新 / 密码已修改 / 校验错误
func (h *UserHandler) Edit(c *gin.Context) {
	current := middleware.CurrentUser(c)
	targetID, ok := parseTargetID(c)
	if current == nil || !ok || current.ID != targetID {
		view.Forbidden(c, gin.H{"CurrentUser": current})
		return
	}

	var form dto.EditProfileForm
	if err := c.ShouldBind(&form); err != nil {
		view.OK(c, "edit.html", gin.H{"CurrentUser": current, "Error": "请完整填写资料字段"})
		return
	}

	updated, err := h.userSvc.UpdateProfile(c.Request.Context(), targetID, &form)
	if err != nil {
		view.ServerError(c)
		return
	}

	if form.WantsPasswordChange() {
		err := h.userSvc.ChangePassword(c.Request.Context(), updated, form.OldPassword, form.NewPassword, form.ConfirmPassword)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOldPasswordWrong),
				errors.Is(err, service.ErrNewPasswordEmpty),
				errors.Is(err, service.ErrNewPasswordMismatch):
				view.OK(c, "edit.html", gin.H{"CurrentUser": updated, "Error": err.Error()})
			default:
				view.ServerError(c)
			}
			return
		}
		view.OK(c, "edit.html", gin.H{"CurrentUser": updated, "Message": "密码修改成功"})
		return
	}

	view.OK(c, "edit.html", gin.H{"CurrentUser": updated, "Message": "资料更新成功"})
}

// parseTargetID 解析路径参数 :id
func parseTargetID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
