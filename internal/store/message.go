package store

import (
	"errors"

	"inkleaf/internal/models"

	"gorm.io/gorm"
)

type MessageStore struct {
	db *gorm.DB
}

func NewMessageStore(db *gorm.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Send 发送私信，收件人必须存在且不能是自己，默认未读
func (s *MessageStore) Send(senderID, receiverID uint, content string) (*models.Message, error) {
	if content == "" {
		return nil, ErrEmptyField
	}
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}

	var receiver models.User
	if err := s.db.First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ConversationFor 返回用户收发的全部私信，按时间倒序
func (s *MessageStore) ConversationFor(userID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead 单向翻转已读标记，不会逆转
func (s *MessageStore) MarkRead(messageID uint) error {
	return s.db.Model(&models.Message{}).
		Where("id = ? AND is_read = ?", messageID, false).
		Update("is_read", true).Error
}

// MarkInboxRead 收件人打开私信列表时，批量把收到的未读私信置为已读。
// 幂等操作，重复调用无额外效果
func (s *MessageStore) MarkInboxRead(receiverID uint) error {
	return s.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Update("is_read", true).Error
}

func (s *MessageStore) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
