package store

import (
	"errors"

	"inkleaf/internal/models"

	"gorm.io/gorm"
)

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// Create 发布新帖。标题和正文必填，image 为已通过校验的文件名（可为空）
func (s *PostStore) Create(userID uint, title, content, image string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, ErrEmptyField
	}

	post := models.Post{
		UserID:  userID,
		Title:   title,
		Content: content,
		Image:   image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostStore) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListNewestFirst 按发布时间倒序返回全部帖子，时间相同按 id 倒序保证稳定
func (s *PostStore) ListNewestFirst() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Preload("User").
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}

	if err := s.fillCounts(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// fillCounts 批量填充帖子的评论数和点赞数
func (s *PostStore) fillCounts(posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}

	var commentCounts []countResult
	if err := s.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentCounts).Error; err != nil {
		return err
	}

	var likeCounts []countResult
	if err := s.db.Model(&models.Like{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&likeCounts).Error; err != nil {
		return err
	}

	commentMap := make(map[uint]int, len(commentCounts))
	for _, r := range commentCounts {
		commentMap[r.PostID] = r.Count
	}
	likeMap := make(map[uint]int, len(likeCounts))
	for _, r := range likeCounts {
		likeMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = commentMap[posts[i].ID]
		posts[i].LikeCount = likeMap[posts[i].ID]
	}
	return nil
}

// Delete 删除帖子，仅作者本人可操作。
// 评论和点赞在同一事务内级联删除，要么全删要么不删
func (s *PostStore) Delete(actingUserID, postID uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var post models.Post
	if err := tx.First(&post, postID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if post.UserID != actingUserID {
		tx.Rollback()
		return ErrNotOwner
	}

	if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&post).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
