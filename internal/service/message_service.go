package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
)

// MessageService is the append-only messaging channel between two
// principals. Conversations are implicit: the unordered pair of participant
// ids keys them.
type MessageService struct {
	msgRepo     MessageRepository
	profileRepo ProfileRepository
	broker      *realtime.Broker
	logger      *zap.Logger
}

func NewMessageService(
	msgRepo MessageRepository,
	profileRepo ProfileRepository,
	broker *realtime.Broker,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		msgRepo:     msgRepo,
		profileRepo: profileRepo,
		broker:      broker,
		logger:      logger,
	}
}

// Send appends a message to the conversation with the receiver.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content", "message is empty")
	}

	receiver, err := s.profileRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("resolve receiver: %w", err)
	}
	if receiver == nil {
		return nil, ErrNotFound
	}

	msg := &model.Message{
		ID:           uuid.NewString(),
		SenderID:     senderID,
		ReceiverID:   receiverID,
		Participants: [2]string{senderID, receiverID},
		Content:      content,
	}

	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.broker.Publish(realtime.TopicMessages)

	s.logger.Info("Message sent",
		zap.String("message_id", msg.ID),
		zap.String("sender_id", senderID),
		zap.String("receiver_id", receiverID),
	)

	return msg, nil
}

// Conversation returns the ordered message history between the principal and
// the peer. The backing query is broader (everything involving the
// principal), so the pair filter runs here on every read.
func (s *MessageService) Conversation(ctx context.Context, principalID, peerID string) ([]*model.Message, error) {
	msgs, err := s.msgRepo.ListByParticipant(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	conversation := make([]*model.Message, 0, len(msgs))
	for _, msg := range msgs {
		if msg.Between(principalID, peerID) {
			conversation = append(conversation, msg)
		}
	}

	return conversation, nil
}

// Inbox returns every message addressed to the principal, ordered by
// creation. Dashboards use it to discover who has written in before a
// conversation is opened.
func (s *MessageService) Inbox(ctx context.Context, principalID string) ([]*model.Message, error) {
	msgs, err := s.msgRepo.ListByParticipant(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	inbox := make([]*model.Message, 0, len(msgs))
	for _, msg := range msgs {
		if msg.ReceiverID == principalID {
			inbox = append(inbox, msg)
		}
	}

	return inbox, nil
}

// WatchInbox delivers the inbox as live snapshots.
func (s *MessageService) WatchInbox(ctx context.Context, principalID string) *realtime.Subscription[[]*model.Message] {
	return realtime.Subscribe(ctx, s.broker, s.logger, realtime.TopicMessages,
		func(ctx context.Context) ([]*model.Message, error) {
			return s.Inbox(ctx, principalID)
		})
}

// Watch delivers the conversation as live snapshots, re-filtered on every
// change notification.
func (s *MessageService) Watch(ctx context.Context, principalID, peerID string) *realtime.Subscription[[]*model.Message] {
	return realtime.Subscribe(ctx, s.broker, s.logger, realtime.TopicMessages,
		func(ctx context.Context) ([]*model.Message, error) {
			return s.Conversation(ctx, principalID, peerID)
		})
}
