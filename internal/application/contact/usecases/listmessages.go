package usecases

import (
	"context"

	"upkeep/internal/domain/contact"
	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/utils"
)

type ListMessagesQuery struct {
	Kind     string
	Page     int
	PageSize int
}

type ListMessagesResult struct {
	Items    []*MessageResult `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListMessagesUseCase struct {
	messageRepo contact.Repository
	logger      logger.Interface
}

func NewListMessagesUseCase(messageRepo contact.Repository, logger logger.Interface) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := contact.Filter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if query.Kind != "" {
		kind := contact.MessageKind(query.Kind)
		if !kind.IsValid() {
			return nil, errors.NewValidationError("invalid message kind filter")
		}
		filter.Kind = &kind
	}

	messages, total, err := uc.messageRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err)
		return nil, err
	}

	items := make([]*MessageResult, 0, len(messages))
	for _, msg := range messages {
		items = append(items, newMessageResult(msg))
	}

	return &ListMessagesResult{
		Items:    items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
