package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"inkleaf/internal/models"
	"inkleaf/internal/services"
	"inkleaf/internal/store"
	"inkleaf/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts        *store.PostStore
	comments     *store.CommentStore
	likes        *store.LikeStore
	interactions services.Interactions
}

func NewPostHandler(posts *store.PostStore, comments *store.CommentStore, likes *store.LikeStore, interactions services.Interactions) *PostHandler {
	return &PostHandler{
		posts:        posts,
		comments:     comments,
		likes:        likes,
		interactions: interactions,
	}
}

func (h *PostHandler) List(c *gin.Context) {
	cacheKey := "post:list"
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			Render(c, http.StatusOK, "post/list.html", cloneH(hData))
			return
		}
	}

	posts, err := h.posts.ListNewestFirst()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "加载文章列表失败")
		return
	}

	renderData := gin.H{
		"Posts": posts,
		"Title": "最新发布",
	}

	// 写入缓存，有效期 1 分钟
	utils.GetCache().Set(cacheKey, renderData, 1*time.Minute)

	Render(c, http.StatusOK, "post/list.html", cloneH(renderData))
}

func (h *PostHandler) Detail(c *gin.Context) {
	postID := uint(utils.StringToInt(c.Param("id")))

	// 当前用户 ID 用于实时查询点赞状态，不进缓存
	userID := uint(0)
	if user := optionalUser(c); user != nil {
		userID = user.ID
	}

	cacheKey := fmt.Sprintf("post:detail:%d", postID)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			data := cloneH(hData)
			data["IsLiked"] = h.isLiked(userID, postID)
			Render(c, http.StatusOK, "post/detail.html", data)
			return
		}
	}

	post, err := h.posts.GetByID(postID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "文章不存在")
		return
	}

	comments, err := h.comments.ListForPost(post.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "加载评论失败")
		return
	}

	type renderedComment struct {
		models.Comment
		ContentHTML template.HTML
		Floor       int
	}
	renderedComments := make([]renderedComment, len(comments))
	for i, com := range comments {
		renderedComments[i] = renderedComment{
			Comment:     com,
			ContentHTML: utils.RenderMarkdown(com.Content),
			Floor:       i + 1,
		}
	}

	likeCount, _ := h.likes.CountForPost(post.ID)

	renderData := gin.H{
		"Post":        post,
		"PostContent": utils.RenderMarkdown(post.Content),
		"Comments":    renderedComments,
		"LikeCount":   likeCount,
		"Title":       post.Title,
	}

	utils.GetCache().Set(cacheKey, renderData, 5*time.Minute)

	data := cloneH(renderData)
	data["IsLiked"] = h.isLiked(userID, postID)

	Render(c, http.StatusOK, "post/detail.html", data)
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "post/create.html", gin.H{"Title": "发布"})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := currentUser(c)

	title := strings.TrimSpace(c.PostForm("title"))
	content := c.PostForm("content")

	if title == "" || content == "" {
		Render(c, http.StatusBadRequest, "post/create.html", gin.H{"Error": "标题和正文不能为空"})
		return
	}

	// 可选配图
	image := ""
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		name, err := services.SaveUpload(file, header)
		if err != nil {
			if errors.Is(err, services.ErrInvalidUpload) {
				Render(c, http.StatusBadRequest, "post/create.html", gin.H{"Error": "仅支持 png/jpg/jpeg/gif 格式的图片"})
				return
			}
			Render(c, http.StatusInternalServerError, "post/create.html", gin.H{"Error": "图片上传失败"})
			return
		}
		image = name
	}

	post, err := h.posts.Create(user.ID, title, content, image)
	if err != nil {
		Render(c, http.StatusInternalServerError, "post/create.html", gin.H{"Error": "发布失败"})
		return
	}

	utils.GetCache().Delete("post:list")

	c.Redirect(http.StatusFound, fmt.Sprintf("/p/%d", post.ID))
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	if err := h.posts.Delete(user.ID, postID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, store.ErrNotOwner):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	utils.GetCache().Delete(fmt.Sprintf("post:detail:%d", postID))
	utils.GetCache().Delete("post:list")

	c.Header("HX-Redirect", "/")
	c.Status(http.StatusOK)
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	user := currentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	content := c.PostForm("content")
	if content == "" {
		c.Redirect(http.StatusFound, fmt.Sprintf("/p/%d", postID))
		return
	}

	if _, err := h.interactions.AddComment(user.ID, postID, content); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "文章不存在")
			return
		}
		RenderError(c, http.StatusInternalServerError, "评论失败")
		return
	}

	// 主动失效详情页缓存
	utils.GetCache().Delete(fmt.Sprintf("post:detail:%d", postID))
	utils.GetCache().Delete("post:list")

	c.Redirect(http.StatusFound, fmt.Sprintf("/p/%d", postID))
}

// 缓存里的渲染数据被并发请求共享，写入请求级字段前先浅拷贝
func cloneH(src gin.H) gin.H {
	dst := make(gin.H, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (h *PostHandler) isLiked(userID, postID uint) bool {
	if userID == 0 {
		return false
	}
	liked, err := h.likes.IsLiked(userID, postID)
	return err == nil && liked
}
