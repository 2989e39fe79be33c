package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "talenthub/internal/mocks"
	"talenthub/internal/models"
	"talenthub/internal/services"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockMessageRepository(ctrl)
	svc := services.NewMessageService(repo)
	ctx := context.Background()

	actor := models.Actor{ID: 7}

	t.Run("Success", func(t *testing.T) {
		req := &dto.SendMessageRequest{ReceiverID: 9, Content: "hi"}
		repo.EXPECT().Create(gomock.Any(), req).
			DoAndReturn(func(_ context.Context, r *dto.SendMessageRequest) (*models.Message, error) {
				assert.Equal(t, actor.ID, r.SenderID)
				return &models.Message{ID: 1, SenderID: r.SenderID, ReceiverID: r.ReceiverID, Content: r.Content}, nil
			}).Times(1)

		msg, err := svc.Send(ctx, actor, req)
		require.NoError(t, err)
		assert.Equal(t, actor.ID, msg.SenderID)
		assert.False(t, msg.IsRead)
	})

	t.Run("Validation - cannot message yourself", func(t *testing.T) {
		_, err := svc.Send(ctx, actor, &dto.SendMessageRequest{ReceiverID: actor.ID, Content: "hi"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
	})
}

func TestMessageService_GetConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockMessageRepository(ctrl)
	svc := services.NewMessageService(repo)
	ctx := context.Background()

	actor := models.Actor{ID: 7}
	thread := []models.Message{
		{ID: 1, SenderID: 9, ReceiverID: 7, Content: "hello"},
		{ID: 2, SenderID: 7, ReceiverID: 9, Content: "hey"},
	}

	t.Run("Reading marks the thread as read", func(t *testing.T) {
		repo.EXPECT().ListConversation(gomock.Any(), actor.ID, int64(9), 50, 0).Return(thread, nil).Times(1)
		repo.EXPECT().MarkConversationRead(gomock.Any(), actor.ID, int64(9)).Return(nil).Times(1)

		msgs, err := svc.GetConversation(ctx, actor, 9, 50, 0)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})

	t.Run("Read-mark failure does not fail the read", func(t *testing.T) {
		repo.EXPECT().ListConversation(gomock.Any(), actor.ID, int64(9), 50, 0).Return(thread, nil).Times(1)
		repo.EXPECT().MarkConversationRead(gomock.Any(), actor.ID, int64(9)).Return(errors.New("write timeout")).Times(1)

		msgs, err := svc.GetConversation(ctx, actor, 9, 50, 0)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})
}

func TestMessageService_MarkMessageRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockMessageRepository(ctrl)
	svc := services.NewMessageService(repo)
	ctx := context.Background()

	msg := &models.Message{ID: 3, SenderID: 9, ReceiverID: 7, Content: "hello"}

	t.Run("Receiver marks read", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(msg, nil).Times(1)
		repo.EXPECT().MarkRead(gomock.Any(), int64(3)).Return(nil).Times(1)

		err := svc.MarkMessageRead(ctx, models.Actor{ID: 7}, 3)
		require.NoError(t, err)
	})

	t.Run("Forbidden - sender cannot mark read", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(msg, nil).Times(1)

		err := svc.MarkMessageRead(ctx, models.Actor{ID: 9}, 3)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, storage.ErrNotFound).Times(1)

		err := svc.MarkMessageRead(ctx, models.Actor{ID: 7}, 99)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

func TestMessageService_Inbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockMessageRepository(ctrl)
	svc := services.NewMessageService(repo)
	ctx := context.Background()

	repo.EXPECT().ListInbox(gomock.Any(), int64(7)).
		Return([]models.ConversationSummary{{PartnerID: 9, PartnerName: "Nine", LastMessage: "hello", UnreadCount: 2}}, nil).Times(1)

	summaries, err := svc.Inbox(ctx, models.Actor{ID: 7})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].UnreadCount)
}
