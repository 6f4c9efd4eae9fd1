package usecases

import (
	"context"
	"time"

	"upkeep/internal/domain/contact"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/services/markdown"
)

type CreateMessageCommand struct {
	Kind        string
	Name        string
	Email       string
	CompanyName string
	Body        string
}

type MessageResult struct {
	ID          uint      `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name,omitempty"`
	Body        string    `json:"body"`
	BodyHTML    string    `json:"body_html"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateMessageUseCase stores an inbound contact or custom-solution request.
// The markdown body is rendered and sanitized up front so readers never
// handle raw visitor input.
type CreateMessageUseCase struct {
	messageRepo contact.Repository
	markdownSvc markdown.MarkdownService
	logger      logger.Interface
}

func NewCreateMessageUseCase(
	messageRepo contact.Repository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *CreateMessageUseCase {
	return &CreateMessageUseCase{
		messageRepo: messageRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *CreateMessageUseCase) Execute(ctx context.Context, cmd CreateMessageCommand) (*MessageResult, error) {
	uc.logger.Infow("executing create message use case", "kind", cmd.Kind, "email", cmd.Email)

	msg, err := contact.NewMessage(contact.MessageKind(cmd.Kind), cmd.Name, cmd.Email, cmd.CompanyName, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	rendered, err := uc.markdownSvc.ToHTMLSanitized(msg.Body())
	if err != nil {
		uc.logger.Errorw("failed to render message body", "error", err)
		return nil, errors.NewInternalError("failed to render message body")
	}
	msg.SetRenderedBody(rendered)

	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		uc.logger.Errorw("failed to store message", "error", err)
		return nil, err
	}

	uc.logger.Infow("message stored", "message_id", msg.ID(), "kind", msg.Kind())
	return newMessageResult(msg), nil
}

func newMessageResult(msg *contact.Message) *MessageResult {
	return &MessageResult{
		ID:          msg.ID(),
		Kind:        string(msg.Kind()),
		Name:        msg.Name(),
		Email:       msg.Email(),
		CompanyName: msg.CompanyName(),
		Body:        msg.Body(),
		BodyHTML:    msg.BodyHTML(),
		CreatedAt:   msg.CreatedAt(),
	}
}
