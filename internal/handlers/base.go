package handlers

import (
	"inkleaf/internal/middleware"
	"inkleaf/internal/models"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User and unread badges
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
		if count, ok := c.Get(middleware.UnreadNotificationKey); ok {
			obj["UnreadNotifications"] = int(count.(int64))
		} else {
			obj["UnreadNotifications"] = 0
		}
		if count, ok := c.Get(middleware.UnreadMessageKey); ok {
			obj["UnreadMessages"] = int(count.(int64))
		} else {
			obj["UnreadMessages"] = 0
		}
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// currentUser 取出 LoadUser 放入 context 的身份，AuthRequired 保证存在
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// optionalUser 未登录时返回 nil
func optionalUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}
