package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "talenthub/internal/mocks"
	"talenthub/internal/models"
	"talenthub/internal/services"
	"talenthub/internal/storage"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionService_Request(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockConnectionRepository(ctrl)
	svc := services.NewConnectionService(repo)
	ctx := context.Background()

	actor := models.Actor{ID: 7}

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().GetBetween(gomock.Any(), actor.ID, int64(9)).Return(nil, storage.ErrNotFound).Times(1)
		repo.EXPECT().Create(gomock.Any(), actor.ID, int64(9)).
			Return(&models.Connection{ID: 1, RequesterID: actor.ID, ReceiverID: 9, Status: models.ConnectionStatusPending}, nil).Times(1)

		conn, err := svc.Request(ctx, actor, 9)
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionStatusPending, conn.Status)
	})

	t.Run("Validation - self connection", func(t *testing.T) {
		_, err := svc.Request(ctx, actor, actor.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
	})

	t.Run("Conflict - pending request already exists", func(t *testing.T) {
		repo.EXPECT().GetBetween(gomock.Any(), actor.ID, int64(9)).
			Return(&models.Connection{ID: 1, RequesterID: 9, ReceiverID: actor.ID, Status: models.ConnectionStatusPending}, nil).Times(1)

		_, err := svc.Request(ctx, actor, 9)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
		assert.Contains(t, err.Error(), "pending")
	})

	t.Run("Conflict - already accepted", func(t *testing.T) {
		repo.EXPECT().GetBetween(gomock.Any(), actor.ID, int64(9)).
			Return(&models.Connection{ID: 1, RequesterID: actor.ID, ReceiverID: 9, Status: models.ConnectionStatusAccepted}, nil).Times(1)

		_, err := svc.Request(ctx, actor, 9)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
	})

	t.Run("Conflict - lost race on the pair index", func(t *testing.T) {
		repo.EXPECT().GetBetween(gomock.Any(), actor.ID, int64(9)).Return(nil, storage.ErrNotFound).Times(1)
		repo.EXPECT().Create(gomock.Any(), actor.ID, int64(9)).Return(nil, storage.ErrConflict).Times(1)

		_, err := svc.Request(ctx, actor, 9)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
	})
}

func TestConnectionService_Respond(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockConnectionRepository(ctrl)
	svc := services.NewConnectionService(repo)
	ctx := context.Background()

	const connID int64 = 1
	pending := func() *models.Connection {
		return &models.Connection{ID: connID, RequesterID: 7, ReceiverID: 9, Status: models.ConnectionStatusPending}
	}

	t.Run("Receiver accepts", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), connID).Return(pending(), nil).Times(1)
		repo.EXPECT().UpdateStatus(gomock.Any(), connID, models.ConnectionStatusPending, models.ConnectionStatusAccepted).
			Return(&models.Connection{ID: connID, RequesterID: 7, ReceiverID: 9, Status: models.ConnectionStatusAccepted}, nil).Times(1)

		conn, err := svc.Respond(ctx, models.Actor{ID: 9}, connID, true)
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionStatusAccepted, conn.Status)
	})

	t.Run("Receiver rejects", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), connID).Return(pending(), nil).Times(1)
		repo.EXPECT().UpdateStatus(gomock.Any(), connID, models.ConnectionStatusPending, models.ConnectionStatusRejected).
			Return(&models.Connection{ID: connID, RequesterID: 7, ReceiverID: 9, Status: models.ConnectionStatusRejected}, nil).Times(1)

		conn, err := svc.Respond(ctx, models.Actor{ID: 9}, connID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionStatusRejected, conn.Status)
	})

	t.Run("Forbidden - requester cannot answer", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), connID).Return(pending(), nil).Times(1)
		_, err := svc.Respond(ctx, models.Actor{ID: 7}, connID, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Invalid - already accepted", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), connID).
			Return(&models.Connection{ID: connID, RequesterID: 7, ReceiverID: 9, Status: models.ConnectionStatusAccepted}, nil).Times(1)

		_, err := svc.Respond(ctx, models.Actor{ID: 9}, connID, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	})

	t.Run("Conflict - concurrent answer", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), connID).Return(pending(), nil).Times(1)
		repo.EXPECT().UpdateStatus(gomock.Any(), connID, models.ConnectionStatusPending, models.ConnectionStatusAccepted).
			Return(nil, storage.ErrNotFound).Times(1)

		_, err := svc.Respond(ctx, models.Actor{ID: 9}, connID, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
		assert.Contains(t, err.Error(), "concurrently")
	})
}

func TestConnectionService_Disconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_storage.NewMockConnectionRepository(ctrl)
	svc := services.NewConnectionService(repo)
	ctx := context.Background()

	const connID int64 = 1
	conn := &models.Connection{ID: connID, RequesterID: 7, ReceiverID: 9, Status: models.ConnectionStatusAccepted}

	t.Run("Either party may disconnect", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), connID).Return(conn, nil).Times(1)
		repo.EXPECT().Delete(gomock.Any(), connID).Return(nil).Times(1)
		require.NoError(t, svc.Disconnect(ctx, models.Actor{ID: 9}, connID))
	})

	t.Run("Forbidden for a third party", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), connID).Return(conn, nil).Times(1)
		err := svc.Disconnect(ctx, models.Actor{ID: 42}, connID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}
