package store

import (
	"inkleaf/internal/models"

	"gorm.io/gorm"
)

type LikeStore struct {
	db *gorm.DB
}

func NewLikeStore(db *gorm.DB) *LikeStore {
	return &LikeStore{db: db}
}

func (s *LikeStore) CountForPost(postID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// IsLiked 当前用户是否已点赞该帖子（用于前端高亮）
func (s *LikeStore) IsLiked(userID, postID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}
