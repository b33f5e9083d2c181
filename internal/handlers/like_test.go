package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkleaf/internal/middleware"
	"inkleaf/internal/models"
	"inkleaf/internal/services"
	"inkleaf/internal/store"
	"inkleaf/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInteractions is a mock implementation of services.Interactions
type MockInteractions struct {
	mock.Mock
}

func (m *MockInteractions) ToggleLike(userID, postID uint) (services.LikeState, int64, error) {
	args := m.Called(userID, postID)
	return args.Get(0).(services.LikeState), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractions) AddComment(userID, postID uint, content string) (*models.Comment, error) {
	args := m.Called(userID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

var _ services.Interactions = (*MockInteractions)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(
		`{{define "error.html"}}{{.Error}}{{end}}{{define "post/detail.html"}}{{.Title}}{{end}}`)))
	return r
}

func asUser(id uint, username string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CheckUserKey, &models.User{ID: id, Username: username})
		handler(c)
	}
}

func TestToggleLikeLiked(t *testing.T) {
	mockInteractions := new(MockInteractions)
	handler := NewLikeHandler(mockInteractions)

	router := setupTestRouter()
	router.POST("/like/:id", asUser(2, "bob", handler.Toggle))

	mockInteractions.On("ToggleLike", uint(2), uint(1)).Return(services.Liked, int64(3), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/like/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "已赞 (3)")
	mockInteractions.AssertExpectations(t)
}

func TestToggleLikeUnliked(t *testing.T) {
	mockInteractions := new(MockInteractions)
	handler := NewLikeHandler(mockInteractions)

	router := setupTestRouter()
	router.POST("/like/:id", asUser(2, "bob", handler.Toggle))

	mockInteractions.On("ToggleLike", uint(2), uint(1)).Return(services.Unliked, int64(0), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/like/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "赞 (0)")
	assert.NotContains(t, w.Body.String(), "已赞")
	mockInteractions.AssertExpectations(t)
}

func TestToggleLikeInvalidatesListAndDetailCache(t *testing.T) {
	mockInteractions := new(MockInteractions)
	handler := NewLikeHandler(mockInteractions)

	router := setupTestRouter()
	router.POST("/like/:id", asUser(2, "bob", handler.Toggle))

	// 列表页和详情页缓存都带点赞数，切换后必须同时失效
	utils.GetCache().Set("post:list", gin.H{"Title": "最新发布"}, time.Minute)
	utils.GetCache().Set("post:detail:1", gin.H{"Title": "hello"}, time.Minute)

	mockInteractions.On("ToggleLike", uint(2), uint(1)).Return(services.Liked, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/like/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, utils.GetCache().Get("post:list"))
	assert.Nil(t, utils.GetCache().Get("post:detail:1"))
	mockInteractions.AssertExpectations(t)
}

func TestToggleLikePostMissing(t *testing.T) {
	mockInteractions := new(MockInteractions)
	handler := NewLikeHandler(mockInteractions)

	router := setupTestRouter()
	router.POST("/like/:id", asUser(2, "bob", handler.Toggle))

	mockInteractions.On("ToggleLike", uint(2), uint(99)).Return(services.Unliked, int64(0), store.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/like/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockInteractions.AssertExpectations(t)
}
