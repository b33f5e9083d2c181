package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"` // 大小写敏感，精确匹配
	Password  string    `gorm:"not null" json:"-"`                             // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	// 不提供用户删除，帖子/消息/通知的外键始终有效
}
