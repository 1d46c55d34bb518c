package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *messageService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateMessageInput) (*entity.Message, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	// New announcements stay hidden until an admin publishes them.
	message := &entity.Message{
		Message:    input.Message,
		Visibility: false,
	}
	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Message created", slog.Int64("messageID", message.ID))

	return message, nil
}

func (srv *messageService) Update(ctx context.Context, identity *entity.Identity, input *usecase.UpdateMessageInput) (*entity.Message, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	message, err := srv.findMessage(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	message.Message = input.Message
	if err := srv.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (srv *messageService) Delete(ctx context.Context, identity *entity.Identity, id int64) error {
	if err := requireAdmin(identity); err != nil {
		return err
	}

	if _, err := srv.findMessage(ctx, id); err != nil {
		return err
	}

	return srv.messageRepo.Delete(ctx, id)
}

func (srv *messageService) ToggleVisibility(ctx context.Context, identity *entity.Identity, id int64) (*entity.Message, error) {
	if err := requireAdmin(identity); err != nil {
		return nil, err
	}

	message, err := srv.findMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	message.Visibility = !message.Visibility
	if err := srv.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// List returns announcements. Anonymous and non-admin callers only see
// visible ones regardless of the requested filter.
func (srv *messageService) List(ctx context.Context, identity *entity.Identity, visibility *bool) ([]*entity.Message, error) {
	if identity == nil || !identity.IsAdmin() {
		visible := true
		visibility = &visible
	}

	return srv.messageRepo.List(ctx, visibility)
}

func (srv *messageService) findMessage(ctx context.Context, id int64) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound.WrapMessage("unknown message")
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	return message, nil
}
