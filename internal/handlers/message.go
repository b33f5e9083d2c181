package handlers

import (
	"errors"
	"net/http"

	"inkleaf/internal/store"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messages *store.MessageStore
	users    *store.UserStore
}

func NewMessageHandler(messages *store.MessageStore, users *store.UserStore) *MessageHandler {
	return &MessageHandler{messages: messages, users: users}
}

// Inbox 私信列表（收发都显示，新的在前）。
// 打开列表时把自己收到的未读私信标记为已读
func (h *MessageHandler) Inbox(c *gin.Context) {
	user := currentUser(c)

	messages, err := h.messages.ConversationFor(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "加载私信失败")
		return
	}

	if err := h.messages.MarkInboxRead(user.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "更新已读状态失败")
		return
	}

	Render(c, http.StatusOK, "message/inbox.html", gin.H{
		"Title":    "私信",
		"Messages": messages,
	})
}

// Send 按用户名发送私信
func (h *MessageHandler) Send(c *gin.Context) {
	user := currentUser(c)

	receiverName := c.PostForm("receiver")
	content := c.PostForm("content")

	receiver, err := h.users.GetByUsername(receiverName)
	if err != nil {
		Render(c, http.StatusBadRequest, "message/inbox.html", gin.H{"Error": "收件人不存在"})
		return
	}

	if _, err := h.messages.Send(user.ID, receiver.ID, content); err != nil {
		switch {
		case errors.Is(err, store.ErrSelfMessage):
			Render(c, http.StatusBadRequest, "message/inbox.html", gin.H{"Error": "不能给自己发私信"})
		case errors.Is(err, store.ErrEmptyField):
			Render(c, http.StatusBadRequest, "message/inbox.html", gin.H{"Error": "私信内容不能为空"})
		default:
			Render(c, http.StatusInternalServerError, "message/inbox.html", gin.H{"Error": "发送失败"})
		}
		return
	}

	c.Redirect(http.StatusFound, "/messages")
}
