package store

import (
	"inkleaf/internal/models"

	"gorm.io/gorm"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// ListForPost 返回帖子下的全部评论，按 id 升序（楼层固定，先来的在前）
func (s *CommentStore) ListForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) CountForPost(postID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
