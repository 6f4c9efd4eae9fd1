package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upkeep/internal/domain/contact"
	apperrors "upkeep/internal/shared/errors"
	"upkeep/internal/shared/logger"
	"upkeep/internal/shared/services/markdown"
)

type mockMessageRepository struct {
	CreateFunc  func(ctx context.Context, msg *contact.Message) error
	GetByIDFunc func(ctx context.Context, id uint) (*contact.Message, error)
	ListFunc    func(ctx context.Context, filter contact.Filter) ([]*contact.Message, int64, error)
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *contact.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) GetByID(ctx context.Context, id uint) (*contact.Message, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMessageRepository) List(ctx context.Context, filter contact.Filter) ([]*contact.Message, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestCreateMessageUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	svc := markdown.NewMarkdownService()

	t.Run("stores message with sanitized rendering", func(t *testing.T) {
		var stored *contact.Message
		repo := &mockMessageRepository{
			CreateFunc: func(ctx context.Context, msg *contact.Message) error {
				msg.SetID(11)
				stored = msg
				return nil
			},
		}

		uc := NewCreateMessageUseCase(repo, svc, &mockLogger{})
		result, err := uc.Execute(ctx, CreateMessageCommand{
			Kind:  "contact",
			Name:  "Dana Reyes",
			Email: "dana@example.com",
			Body:  "We need **help** <script>alert(1)</script>",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(11), result.ID)
		assert.Contains(t, result.BodyHTML, "<strong>help</strong>")
		assert.NotContains(t, result.BodyHTML, "<script>")
		require.NotNil(t, stored)
		assert.NotEmpty(t, stored.BodyHTML())
	})

	t.Run("custom solution request", func(t *testing.T) {
		uc := NewCreateMessageUseCase(&mockMessageRepository{}, svc, &mockLogger{})
		result, err := uc.Execute(ctx, CreateMessageCommand{
			Kind:        "custom_solution",
			Name:        "Lee",
			Email:       "lee@example.com",
			CompanyName: "Acme",
			Body:        "Custom reporting pipeline",
		})

		require.NoError(t, err)
		assert.Equal(t, "custom_solution", result.Kind)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := NewCreateMessageUseCase(&mockMessageRepository{}, svc, &mockLogger{})

		_, err := uc.Execute(ctx, CreateMessageCommand{Kind: "contact", Name: "Lee", Email: "bad", Body: "x"})
		assert.True(t, apperrors.IsValidationError(err))

		_, err = uc.Execute(ctx, CreateMessageCommand{Kind: "spam", Name: "Lee", Email: "lee@example.com", Body: "x"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestListMessagesUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by kind", func(t *testing.T) {
		var captured contact.Filter
		repo := &mockMessageRepository{
			ListFunc: func(ctx context.Context, filter contact.Filter) ([]*contact.Message, int64, error) {
				captured = filter
				return nil, 0, nil
			},
		}

		uc := NewListMessagesUseCase(repo, &mockLogger{})
		_, err := uc.Execute(ctx, ListMessagesQuery{Kind: "contact", Page: 1, PageSize: 20})

		require.NoError(t, err)
		require.NotNil(t, captured.Kind)
		assert.Equal(t, contact.KindContact, *captured.Kind)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := NewListMessagesUseCase(&mockMessageRepository{}, &mockLogger{})
		_, err := uc.Execute(ctx, ListMessagesQuery{Kind: "spam"})

		assert.True(t, apperrors.IsValidationError(err))
	})
}
