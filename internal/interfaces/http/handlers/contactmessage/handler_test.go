package contactmessage

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upkeep/internal/application/contact/usecases"
	"upkeep/internal/interfaces/http/handlers/testutil"
)

type mockCreateMessageUC struct {
	result *usecases.MessageResult
	err    error
	gotCmd usecases.CreateMessageCommand
	called bool
}

func (m *mockCreateMessageUC) Execute(_ context.Context, cmd usecases.CreateMessageCommand) (*usecases.MessageResult, error) {
	m.called = true
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListMessagesUC struct {
	result   *usecases.ListMessagesResult
	err      error
	gotQuery usecases.ListMessagesQuery
}

func (m *mockListMessagesUC) Execute(_ context.Context, query usecases.ListMessagesQuery) (*usecases.ListMessagesResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

func newTestHandler(createUC *mockCreateMessageUC, listUC *mockListMessagesUC) *ContactMessageHandler {
	if createUC == nil {
		createUC = &mockCreateMessageUC{}
	}
	if listUC == nil {
		listUC = &mockListMessagesUC{}
	}
	return NewContactMessageHandler(createUC, listUC, testutil.NewMockLogger())
}

func TestContactMessageHandler_CreateMessage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUC := &mockCreateMessageUC{result: &usecases.MessageResult{
			ID:        1,
			Kind:      "contact",
			Name:      "Jordan Fields",
			Email:     "jordan@example.com",
			Body:      "We need help with **preventive maintenance**.",
			BodyHTML:  "<p>We need help with <strong>preventive maintenance</strong>.</p>",
			CreatedAt: time.Now().UTC(),
		}}
		handler := newTestHandler(mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/contact-messages", CreateMessageRequest{
			Kind:  "contact",
			Name:  "Jordan Fields",
			Email: "jordan@example.com",
			Body:  "We need help with **preventive maintenance**.",
		})

		handler.CreateMessage(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "contact", mockUC.gotCmd.Kind)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		mockUC := &mockCreateMessageUC{}
		handler := newTestHandler(mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/contact-messages", map[string]string{
			"kind":  "sales",
			"name":  "Jordan Fields",
			"email": "jordan@example.com",
			"body":  "hello",
		})

		handler.CreateMessage(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, mockUC.called)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		mockUC := &mockCreateMessageUC{}
		handler := newTestHandler(mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/api/contact-messages", map[string]string{
			"kind":  "contact",
			"name":  "Jordan Fields",
			"email": "not-an-email",
			"body":  "hello",
		})

		handler.CreateMessage(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, mockUC.called)
	})
}

func TestContactMessageHandler_ListMessages(t *testing.T) {
	mockUC := &mockListMessagesUC{result: &usecases.ListMessagesResult{
		Items:    []*usecases.MessageResult{{ID: 1, Kind: "custom_solution"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}}
	handler := newTestHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/contact-messages", nil)
	testutil.SetQueryParams(c, map[string]string{"kind": "custom_solution"})

	handler.ListMessages(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "custom_solution", mockUC.gotQuery.Kind)
}
