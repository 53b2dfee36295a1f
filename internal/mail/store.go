package mail

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/edvin/mailsink/internal/model"
)

// InboxName is the canonical default folder every provisioned user gets.
const InboxName = "INBOX"

// Store is the in-memory mailbox store: per-user named folders holding
// delivered messages. Folder resolution is always live; callers must not hold
// a *Folder across requests.
type Store struct {
	mu        sync.RWMutex
	mailboxes map[string]map[string]*Folder // login -> folder name -> folder
}

func NewStore() *Store {
	return &Store{mailboxes: make(map[string]map[string]*Folder)}
}

// Folder is a named, user-owned container of messages.
type Folder struct {
	name string

	mu       sync.RWMutex
	nextUID  int64
	messages []model.Message
}

func (f *Folder) Name() string { return f.name }

// Messages returns a snapshot of the folder's contents in delivery order.
// Deliveries after the snapshot are not reflected.
func (f *Folder) Messages() []model.Message {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]model.Message, len(f.messages))
	copy(out, f.messages)
	return out
}

func (f *Folder) append(contentType, mime string) model.Message {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextUID++
	msg := model.Message{
		ID:          uuid.NewString(),
		UID:         f.nextUID,
		ContentType: contentType,
		MimeMessage: mime,
	}
	f.messages = append(f.messages, msg)
	return msg
}

func (f *Folder) purge() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = nil
}

// Provision creates the user's mailbox with an empty INBOX. Provisioning an
// already-provisioned user is a no-op.
func (s *Store) Provision(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mailboxes[user.Login]; ok {
		return
	}
	s.mailboxes[user.Login] = map[string]*Folder{
		InboxName: {name: InboxName},
	}
}

// Inbox resolves the user's INBOX. An unprovisioned user yields an error.
func (s *Store) Inbox(user model.User) (*Folder, error) {
	return s.Folder(user, InboxName)
}

// Folder resolves a named folder for the user.
func (s *Store) Folder(user model.User, name string) (*Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folders, ok := s.mailboxes[user.Login]
	if !ok {
		return nil, fmt.Errorf("no mailbox for user '%s'", user.Login)
	}
	f, ok := folders[name]
	if !ok {
		return nil, fmt.Errorf("no folder '%s' for user '%s'", name, user.Login)
	}
	return f, nil
}

// CreateFolder adds a named folder to the user's mailbox, provisioning the
// mailbox first if needed. Returns the existing folder when the name is taken.
func (s *Store) CreateFolder(user model.User, name string) *Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders, ok := s.mailboxes[user.Login]
	if !ok {
		folders = map[string]*Folder{InboxName: {name: InboxName}}
		s.mailboxes[user.Login] = folders
	}
	if f, ok := folders[name]; ok {
		return f
	}
	f := &Folder{name: name}
	folders[name] = f
	return f
}

// Deliver appends a message to the user's INBOX.
func (s *Store) Deliver(user model.User, contentType, mime string) (model.Message, error) {
	inbox, err := s.Inbox(user)
	if err != nil {
		return model.Message{}, err
	}
	return inbox.append(contentType, mime), nil
}

// Purge removes every message from every folder of every user. Folder
// structure survives; only contents are dropped.
func (s *Store) Purge() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, folders := range s.mailboxes {
		for _, f := range folders {
			f.purge()
		}
	}
	return nil
}

// Clear drops all mailboxes, returning the store to its startup state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mailboxes = make(map[string]map[string]*Folder)
}
