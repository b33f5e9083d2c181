package middleware

import (
	"net/http"

	"inkleaf/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"
const UnreadNotificationKey = "unread_notifications"
const UnreadMessageKey = "unread_messages"

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadUser 从 session 解析当前用户并放入 context，
// 核心操作只认 context 里的身份，不做任何全局查找
func LoadUser(users *store.UserStore, notifications *store.NotificationStore, messages *store.MessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get("user_id").(uint)
		if ok {
			user, err := users.GetByID(userID)
			if err == nil {
				c.Set(CheckUserKey, user)

				// 未读角标数据
				if count, err := notifications.UnreadCount(user.ID); err == nil {
					c.Set(UnreadNotificationKey, count)
				}
				if count, err := messages.UnreadCount(user.ID); err == nil {
					c.Set(UnreadMessageKey, count)
				}
			}
		}
		c.Next()
	}
}
