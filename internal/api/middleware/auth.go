package middleware

import (
	"github.com/gin-gonic/gin"

	"memberbook/internal/model"
	"memberbook/internal/repository"
	"memberbook/pkg/session"
	"memberbook/pkg/view"
)

// SessionCookieName 会话 Cookie 名
const SessionCookieName = "session"

const contextUserKey = "current_user"

// ResolveSession 会话解析中间件
// Cookie 存在 → 解码令牌 → 按 id 加载用户 → 注入上下文
// 任何一步失败都退回匿名状态继续处理，解码失败永不报错
func ResolveSession(codec *session.Codec, repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := codec.Decode(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := repo.User.GetByID(c.Request.Context(), userID)
		if err != nil {
			// 令牌有效但用户不存在（如密钥轮换前的旧库）同样视为匿名
			c.Next()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出会话解析注入的当前用户，匿名时为 nil
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// RequireUser 登录保护中间件：匿名访问重定向到登录页
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			view.Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
