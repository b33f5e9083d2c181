package router

import (
	"inkleaf/internal/db"
	"inkleaf/internal/handlers"
	"inkleaf/internal/middleware"
	"inkleaf/internal/services"
	"inkleaf/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Stores
	users := store.NewUserStore(db.DB)
	posts := store.NewPostStore(db.DB)
	comments := store.NewCommentStore(db.DB)
	likes := store.NewLikeStore(db.DB)
	messages := store.NewMessageStore(db.DB)
	notifications := store.NewNotificationStore(db.DB)

	// Services
	interactions := services.NewInteractionService(db.DB)

	// 每个请求解析一次身份，后续 handler 只用 context 里的用户
	r.Use(middleware.LoadUser(users, notifications, messages))

	// Handlers
	authHandler := handlers.NewAuthHandler(users)
	postHandler := handlers.NewPostHandler(posts, comments, likes, interactions)
	likeHandler := handlers.NewLikeHandler(interactions)
	notificationHandler := handlers.NewNotificationHandler(notifications)
	messageHandler := handlers.NewMessageHandler(messages, users)

	// 公共路由 (Public Routes)
	r.GET("/", postHandler.List)        // 首页 - 最新文章
	r.GET("/p/:id", postHandler.Detail) // 文章详情页

	r.GET("/signup", authHandler.ShowRegister) // 注册页面
	r.POST("/signup", authHandler.Register)    // 提交注册
	r.GET("/login", authHandler.ShowLogin)     // 登录页面
	r.POST("/login", authHandler.Login)        // 提交登录
	r.GET("/logout", authHandler.Logout)       // 退出登录

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/submit", postHandler.ShowCreate)          // 发布文章页面
		authorized.POST("/submit", postHandler.Create)             // 提交发布文章
		authorized.POST("/p/:id/comment", postHandler.CreateComment) // 发表评论
		authorized.DELETE("/p/:id", postHandler.Delete)            // 删除文章（仅作者）
		authorized.POST("/like/:id", likeHandler.Toggle)           // 点赞/取消点赞

		authorized.GET("/notifications", notificationHandler.List)              // 通知列表（打开即已读）
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll) // 全部标记已读

		authorized.GET("/messages", messageHandler.Inbox) // 私信列表
		authorized.POST("/messages", messageHandler.Send) // 发送私信
	}
}
