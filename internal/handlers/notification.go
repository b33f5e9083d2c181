package handlers

import (
	"net/http"

	"inkleaf/internal/store"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *store.NotificationStore
}

func NewNotificationHandler(notifications *store.NotificationStore) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List 通知列表。打开即视为已读：渲染后批量置为已读，重复打开无副作用
func (h *NotificationHandler) List(c *gin.Context) {
	user := currentUser(c)

	notifications, err := h.notifications.ListFor(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "加载通知失败")
		return
	}

	if err := h.notifications.MarkAllRead(user.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "更新已读状态失败")
		return
	}

	Render(c, http.StatusOK, "notification/list.html", gin.H{
		"Title":         "通知",
		"Notifications": notifications,
	})
}

// ReadAll 手动全部标记已读（幂等）
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := currentUser(c)

	if err := h.notifications.MarkAllRead(user.ID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/notifications")
}
