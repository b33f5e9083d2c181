package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkleaf/internal/models"
	"inkleaf/internal/store"
	"inkleaf/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateCommentRedirectsBack(t *testing.T) {
	mockInteractions := new(MockInteractions)
	handler := NewPostHandler(nil, nil, nil, mockInteractions)

	router := setupTestRouter()
	router.POST("/p/:id/comment", asUser(2, "bob", handler.CreateComment))

	mockInteractions.On("AddComment", uint(2), uint(1), "写得好").
		Return(&models.Comment{ID: 1, PostID: 1, UserID: 2}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/p/1/comment", strings.NewReader("content=写得好"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/p/1", w.Header().Get("Location"))
	mockInteractions.AssertExpectations(t)
}

func TestCreateCommentPostMissing(t *testing.T) {
	mockInteractions := new(MockInteractions)
	handler := NewPostHandler(nil, nil, nil, mockInteractions)

	router := setupTestRouter()
	router.POST("/p/:id/comment", asUser(2, "bob", handler.CreateComment))

	mockInteractions.On("AddComment", uint(2), uint(99), "写得好").
		Return(nil, store.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/p/99/comment", strings.NewReader("content=写得好"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "文章不存在")
	mockInteractions.AssertExpectations(t)
}

// 缓存命中时请求级字段写在副本上，共享的缓存条目保持原样
func TestDetailCacheHitLeavesCachedEntryUntouched(t *testing.T) {
	handler := NewPostHandler(nil, nil, nil, nil)

	router := setupTestRouter()
	router.GET("/p/:id", handler.Detail)

	cached := gin.H{"Title": "hello"}
	utils.GetCache().Set("post:detail:7", cached, time.Minute)
	defer utils.GetCache().Delete("post:detail:7")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/p/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello")

	// 渲染用的副本里有 IsLiked/CurrentPath，缓存里的原件不能被污染
	_, hasLiked := cached["IsLiked"]
	assert.False(t, hasLiked)
	_, hasPath := cached["CurrentPath"]
	assert.False(t, hasPath)
}

// 空评论不落库，直接跳回详情页
func TestCreateCommentEmptyContent(t *testing.T) {
	mockInteractions := new(MockInteractions)
	handler := NewPostHandler(nil, nil, nil, mockInteractions)

	router := setupTestRouter()
	router.POST("/p/:id/comment", asUser(2, "bob", handler.CreateComment))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/p/1/comment", strings.NewReader("content="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	mockInteractions.AssertNotCalled(t, "AddComment")
}
