package contact

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type MessageKind string

const (
	KindContact        MessageKind = "contact"
	KindCustomSolution MessageKind = "custom_solution"
)

func (k MessageKind) IsValid() bool {
	return k == KindContact || k == KindCustomSolution
}

// Message is an inbound contact or custom-solution request. Body holds the
// sender's markdown as submitted; BodyHTML the rendered, sanitized form.
type Message struct {
	id          uint
	kind        MessageKind
	name        string
	email       string
	companyName string
	body        string
	bodyHTML    string
	createdAt   time.Time
}

func NewMessage(kind MessageKind, name, email, companyName, body string) (*Message, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid message kind: %s", kind)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", err)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body is required")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 10000 characters")
	}

	return &Message{
		kind:        kind,
		name:        name,
		email:       email,
		companyName: strings.TrimSpace(companyName),
		body:        body,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	kind MessageKind,
	name string,
	email string,
	companyName string,
	body string,
	bodyHTML string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid message kind: %s", kind)
	}

	return &Message{
		id:          id,
		kind:        kind,
		name:        name,
		email:       email,
		companyName: companyName,
		body:        body,
		bodyHTML:    bodyHTML,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() uint { return m.id }
func (m *Message) Kind() MessageKind { return m.kind }
func (m *Message) Name() string { return m.name }
func (m *Message) Email() string { return m.email }
func (m *Message) CompanyName() string { return m.companyName }
func (m *Message) Body() string { return m.body }
func (m *Message) BodyHTML() string { return m.bodyHTML }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// SetID assigns the persistence-generated ID after the initial insert.
func (m *Message) SetID(id uint) {
	if m.id == 0 {
		m.id = id
	}
}

// SetRenderedBody stores the sanitized HTML rendering of the body.
func (m *Message) SetRenderedBody(html string) {
	m.bodyHTML = html
}
