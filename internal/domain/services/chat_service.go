package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"gorm.io/gorm"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

var (
	// ErrChatExists means a direct-message group for the pair already exists
	ErrChatExists = errors.New("direct message chat already exists")
	// ErrGroupNotFound means the referenced group does not exist
	ErrGroupNotFound = errors.New("group not found")
	// ErrMessageNotFound means the referenced message does not exist
	ErrMessageNotFound = errors.New("message not found")
)

// replyTagPattern matches the "@messageN" reply convention in message content
var replyTagPattern = regexp.MustCompile(`@message(\d+)`)

// InterfaceChatService defines the group and message service
type InterfaceChatService interface {
	CreateGroup(name, description string, createdBy uint) (*models.Group, error)
	CreateDirectGroup(description string, createdBy, recipientID uint) (*models.Group, error)
	GetAllGroups() ([]models.Group, error)
	GetGroupByID(id uint) (*models.Group, error)
	SendMessage(content string, senderID uint, groupID *uint, mediaURL *string) (*models.Message, error)
	GetAllMessages(groupID *uint) ([]models.Message, error)
	GetMessageByID(id uint) (*models.Message, error)
}

// ChatService provides group and message operations
type ChatService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewChatService creates a new chat service
func NewChatService(db *gorm.DB, cfg *config.Config) InterfaceChatService {
	return &ChatService{DB: db, Config: cfg}
}

// CreateGroup creates an ordinary group; membership is not managed for these
func (s *ChatService) CreateGroup(name, description string, createdBy uint) (*models.Group, error) {
	group := &models.Group{
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		IsDirect:    false,
	}
	if err := s.DB.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreateDirectGroup creates the unique direct-message group for a pair of
// users plus both membership rows, all in one transaction. The unique index
// on direct_key closes the check-then-insert race.
func (s *ChatService) CreateDirectGroup(description string, createdBy, recipientID uint) (*models.Group, error) {
	key := DirectGroupName(createdBy, recipientID)

	var existing models.Group
	err := s.DB.Where("direct_key = ?", key).First(&existing).Error
	if err == nil {
		return nil, ErrChatExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group := &models.Group{
		Name:        key,
		Description: description,
		CreatedBy:   createdBy,
		IsDirect:    true,
		DirectKey:   &key,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrChatExists
			}
			return err
		}
		// A self-pair gets a single membership row; two identical rows
		// would trip the user+group unique index.
		memberships := []models.GroupMembership{
			{UserID: createdBy, GroupID: group.ID},
		}
		if recipientID != createdBy {
			memberships = append(memberships, models.GroupMembership{UserID: recipientID, GroupID: group.ID})
		}
		return tx.Create(&memberships).Error
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GetAllGroups lists every group
func (s *ChatService) GetAllGroups() ([]models.Group, error) {
	var groups []models.Group
	if err := s.DB.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroupByID fetches a single group
func (s *ChatService) GetGroupByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := s.DB.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// SendMessage stores a message. A single "@messageN" token in the content is
// parsed into reply_to_id; the reference is weak and never validated.
func (s *ChatService) SendMessage(content string, senderID uint, groupID *uint, mediaURL *string) (*models.Message, error) {
	message := &models.Message{
		Content:   content,
		SenderID:  senderID,
		GroupID:   groupID,
		ReplyToID: ParseReplyID(content),
		MediaURL:  mediaURL,
	}
	if err := s.DB.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// GetAllMessages lists messages oldest-first, optionally for one group
func (s *ChatService) GetAllMessages(groupID *uint) ([]models.Message, error) {
	query := s.DB.Order("created_at")
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}

	var messages []models.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetMessageByID fetches a single message
func (s *ChatService) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := s.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// DirectGroupName builds the canonical name for a direct-message pair:
// the numerically smaller id first, joined with "-", so both argument orders
// produce the same name.
func DirectGroupName(a, b uint) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// ParseReplyID extracts the referenced message id from the first "@messageN"
// token in the content, or nil when none is present
func ParseReplyID(content string) *uint {
	match := replyTagPattern.FindStringSubmatch(content)
	if match == nil {
		return nil
	}
	n, err := strconv.ParseUint(match[1], 10, 32)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}
