package services

import (
	"errors"
	"fmt"

	"inkleaf/internal/models"
	"inkleaf/internal/store"
	"inkleaf/internal/utils"

	"gorm.io/gorm"
)

// LikeState 点赞切换后的状态
type LikeState int

const (
	Unliked LikeState = iota
	Liked
)

// 通知文案里帖子标题的最大展示长度
const titleExcerptLen = 30

// Interactions 交互引擎：点赞切换和评论，以及二者触发的通知规则
type Interactions interface {
	ToggleLike(userID, postID uint) (LikeState, int64, error)
	AddComment(userID, postID uint, content string) (*models.Comment, error)
}

type InteractionService struct {
	db *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{db: db}
}

// ToggleLike 切换点赞状态：已点赞则取消，未点赞则创建。
// 两次调用回到原点，不会留下多余的点赞记录。
// 创建点赞时若操作者不是作者，在同一事务内写入通知；取消点赞不产生通知
func (s *InteractionService) ToggleLike(userID, postID uint) (LikeState, int64, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return Unliked, 0, tx.Error
	}

	var post models.Post
	if err := tx.First(&post, postID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Unliked, 0, store.ErrNotFound
		}
		return Unliked, 0, err
	}

	var existing models.Like
	err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	if err == nil {
		// 已点赞 → 取消
		if err := tx.Delete(&existing).Error; err != nil {
			tx.Rollback()
			return Unliked, 0, err
		}
		if err := tx.Commit().Error; err != nil {
			return Unliked, 0, err
		}
		count, err := s.likeCount(postID)
		return Unliked, count, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return Unliked, 0, err
	}

	like := models.Like{
		PostID: postID,
		UserID: userID,
	}
	if err := tx.Create(&like).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发重复点赞被 (post_id, user_id) 唯一索引拦下，按已点赞处理
			count, cerr := s.likeCount(postID)
			return Liked, count, cerr
		}
		return Unliked, 0, err
	}

	if post.UserID != userID {
		if err := s.notify(tx, &post, userID, models.NotificationKindLike); err != nil {
			tx.Rollback()
			return Unliked, 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return Unliked, 0, err
	}
	count, err := s.likeCount(postID)
	return Liked, count, err
}

// AddComment 发表评论。评论写入和作者通知在同一事务内完成
func (s *InteractionService) AddComment(userID, postID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, store.ErrEmptyField
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var post models.Post
	if err := tx.First(&post, postID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: content,
	}
	if err := tx.Create(&comment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if post.UserID != userID {
		if err := s.notify(tx, &post, userID, models.NotificationKindComment); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// notify 给帖子作者写入一条通知。调用方保证操作者不是作者本人
func (s *InteractionService) notify(tx *gorm.DB, post *models.Post, actorID uint, kind models.NotificationKind) error {
	var actor models.User
	if err := tx.First(&actor, actorID).Error; err != nil {
		return err
	}

	excerpt := utils.TruncateRunes(post.Title, titleExcerptLen)
	var content string
	switch kind {
	case models.NotificationKindLike:
		content = fmt.Sprintf("%s 赞了你的文章《%s》", actor.Username, excerpt)
	case models.NotificationKindComment:
		content = fmt.Sprintf("%s 评论了你的文章《%s》", actor.Username, excerpt)
	}

	notification := models.Notification{
		UserID:      post.UserID,
		ActorID:     &actor.ID,
		Kind:        kind,
		ReferenceID: post.ID,
		Content:     content,
	}
	return tx.Create(&notification).Error
}

func (s *InteractionService) likeCount(postID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
