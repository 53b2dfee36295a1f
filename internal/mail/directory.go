package mail

import (
	"fmt"
	"sync"

	"github.com/edvin/mailsink/internal/model"
)

// Directory is the in-memory user directory. Users are keyed by login; a
// secondary index supports lookup by email. All operations are atomic under
// one lock, so a create either fully lands or leaves no trace.
type Directory struct {
	mu      sync.RWMutex
	byLogin map[string]model.User
	byEmail map[string]string // email -> login
}

func NewDirectory() *Directory {
	return &Directory{
		byLogin: make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

// Create adds a user, rejecting empty identities and duplicates.
func (d *Directory) Create(email, login, password string) (model.User, error) {
	if login == "" {
		return model.User{}, fmt.Errorf("login must not be empty")
	}
	if email == "" {
		return model.User{}, fmt.Errorf("email must not be empty")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byLogin[login]; ok {
		return model.User{}, fmt.Errorf("user with login '%s' already exists", login)
	}
	if _, ok := d.byEmail[email]; ok {
		return model.User{}, fmt.Errorf("user with email '%s' already exists", email)
	}

	user := model.User{Email: email, Login: login, Password: password}
	d.byLogin[login] = user
	d.byEmail[email] = login
	return user, nil
}

// List returns all users in directory order (unordered map iteration).
func (d *Directory) List() []model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]model.User, 0, len(d.byLogin))
	for _, u := range d.byLogin {
		users = append(users, u)
	}
	return users
}

// Get looks a user up by exact login.
func (d *Directory) Get(login string) (model.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byLogin[login]
	return u, ok
}

// GetByEmail looks a user up by exact email.
func (d *Directory) GetByEmail(email string) (model.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	login, ok := d.byEmail[email]
	if !ok {
		return model.User{}, false
	}
	u, ok := d.byLogin[login]
	return u, ok
}

// Delete removes a user. Deleting an absent user is a no-op.
func (d *Directory) Delete(user model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.byLogin, user.Login)
	delete(d.byEmail, user.Email)
}

// Clear drops every user, returning the directory to its startup state.
func (d *Directory) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byLogin = make(map[string]model.User)
	d.byEmail = make(map[string]string)
}
