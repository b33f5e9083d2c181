package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"inkleaf/internal/services"
	"inkleaf/internal/store"
	"inkleaf/internal/utils"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	interactions services.Interactions
}

func NewLikeHandler(interactions services.Interactions) *LikeHandler {
	return &LikeHandler{interactions: interactions}
}

// Toggle 点赞/取消点赞，返回更新后的按钮片段（HTMX 局部刷新）
func (h *LikeHandler) Toggle(c *gin.Context) {
	user := currentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	state, count, err := h.interactions.ToggleLike(user.ID, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	// 详情页和列表页缓存里都有点赞数，一起失效
	utils.GetCache().Delete(fmt.Sprintf("post:detail:%d", postID))
	utils.GetCache().Delete("post:list")

	if state == services.Liked {
		c.String(http.StatusOK, fmt.Sprintf(`<span class="liked">已赞 (%d)</span>`, count))
	} else {
		c.String(http.StatusOK, fmt.Sprintf(`<span>赞 (%d)</span>`, count))
	}
}
