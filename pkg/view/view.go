package view

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 页面渲染助手：所有路由统一通过这里输出 HTML 视图或重定向

// OK 200 渲染指定模板
func OK(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// Redirect 302 跳转
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// Forbidden 403 页面
// GET 与 POST 统一渲染 403 视图，不抛裸错误
func Forbidden(c *gin.Context, data gin.H) {
	c.HTML(http.StatusForbidden, "403.html", data)
}

// ServerError 500 页面（存储故障等未恢复异常的统一出口）
func ServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}
