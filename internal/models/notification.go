package models

import (
	"time"
)

type NotificationKind string

const (
	NotificationKindLike    NotificationKind = "like"
	NotificationKindComment NotificationKind = "comment"
)

// Notification 站内通知 - 他人点赞/评论自己帖子时产生
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      uint             `gorm:"not null;index" json:"user_id"` // Receiver
	User        User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ActorID     *uint            `gorm:"index" json:"actor_id"` // 触发通知的用户
	Actor       User             `gorm:"foreignKey:ActorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"actor"`
	Kind        NotificationKind `gorm:"type:varchar(20);not null" json:"kind"`
	ReferenceID uint             `gorm:"not null;index" json:"reference_id"` // 关联的帖子 ID
	Content     string           `gorm:"type:text" json:"content"`           // 预渲染的通知文案
	IsRead      bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
