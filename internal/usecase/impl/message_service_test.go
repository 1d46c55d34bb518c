package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMessageService(t *testing.T) (usecase.MessageUsecase, *mockRepo.MockMessageRepository) {
	messageRepo := mockRepo.NewMockMessageRepository(t)

	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, messageRepo
}

func TestMessageService_Create_AdminOnly(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()

	_, err := service.Create(ctx, customerIdentity(5), &usecase.CreateMessageInput{Message: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			// Announcements start hidden until toggled visible.
			assert.False(t, message.Visibility)
			message.ID = 1
		}).
		Return(nil)

	message, err := service.Create(ctx, adminIdentity(), &usecase.CreateMessageInput{Message: "open tomorrow"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), message.ID)
	assert.False(t, message.Visibility)
}

func TestMessageService_List_NonAdminForcedVisible(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()
	messageRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*bool")).
		Run(func(ctx context.Context, visibility *bool) {
			require.NotNil(t, visibility)
			assert.True(t, *visibility)
		}).
		Return([]*entity.Message{{ID: 1, Visibility: true}}, nil)

	// Anonymous caller asks for hidden messages and gets the visible set.
	hidden := false
	messages, err := service.List(ctx, nil, &hidden)

	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestMessageService_List_AdminSeesRequestedFilter(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()
	messageRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*bool")).
		Run(func(ctx context.Context, visibility *bool) {
			require.NotNil(t, visibility)
			assert.False(t, *visibility)
		}).
		Return(nil, nil)

	hidden := false
	_, err := service.List(ctx, adminIdentity(), &hidden)
	require.NoError(t, err)
}

func TestMessageService_ToggleVisibility(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()
	messageRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Message{ID: 1, Visibility: true}, nil)
	messageRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	message, err := service.ToggleVisibility(ctx, adminIdentity(), 1)

	require.NoError(t, err)
	assert.False(t, message.Visibility)
}
