package services

import (
	"context"
	"fmt"
	"log"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"
)

type messageService struct {
	repo storage.MessageRepository
}

// NewMessageService creates a new instance of MessageService.
func NewMessageService(repo storage.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

// Send delivers a direct message. A connection is not required; any user may
// message any other.
func (s *messageService) Send(ctx context.Context, actor models.Actor, req *dto.SendMessageRequest) (*models.Message, error) {
	if req.ReceiverID == actor.ID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrValidation)
	}

	req.SenderID = actor.ID
	msg, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "sending message")
	}
	return msg, nil
}

// GetConversation returns the thread with a partner and marks their messages
// as read.
func (s *messageService) GetConversation(ctx context.Context, actor models.Actor, partnerID int64, limit, offset int) ([]models.Message, error) {
	msgs, err := s.repo.ListConversation(ctx, actor.ID, partnerID, limit, offset)
	if err != nil {
		log.Printf("MessageService: Error listing conversation %d-%d: %v", actor.ID, partnerID, err)
		return nil, fmt.Errorf("internal error listing conversation: %w", err)
	}

	if err := s.repo.MarkConversationRead(ctx, actor.ID, partnerID); err != nil {
		// Reads still return; unread counts catch up on the next call.
		log.Printf("MessageService: Error marking conversation %d-%d read: %v", actor.ID, partnerID, err)
	}
	return msgs, nil
}

func (s *messageService) MarkConversationRead(ctx context.Context, actor models.Actor, partnerID int64) error {
	if err := s.repo.MarkConversationRead(ctx, actor.ID, partnerID); err != nil {
		return MapRepoError(err, "marking conversation read")
	}
	return nil
}

// MarkMessageRead flags a single message as read. Only the receiver may do it.
func (s *messageService) MarkMessageRead(ctx context.Context, actor models.Actor, messageID int64) error {
	msg, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		return MapRepoError(err, "fetching message")
	}
	if msg.ReceiverID != actor.ID {
		return fmt.Errorf("%w: only the receiver can mark a message read", ErrForbidden)
	}
	if err := s.repo.MarkRead(ctx, messageID); err != nil {
		return MapRepoError(err, "marking message read")
	}
	return nil
}

func (s *messageService) Inbox(ctx context.Context, actor models.Actor) ([]models.ConversationSummary, error) {
	summaries, err := s.repo.ListInbox(ctx, actor.ID)
	if err != nil {
		log.Printf("MessageService: Error listing inbox for user %d: %v", actor.ID, err)
		return nil, fmt.Errorf("internal error listing inbox: %w", err)
	}
	return summaries, nil
}
