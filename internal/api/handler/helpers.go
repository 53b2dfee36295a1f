package handler

import (
	"github.com/edvin/mailsink/internal/mail"
	"github.com/edvin/mailsink/internal/model"
)

// resolveUser looks a user up by exact login first, falling back to exact
// email. No normalization happens here; the directory owns case and
// uniqueness rules.
func resolveUser(dir *mail.Directory, emailOrLogin string) (model.User, bool) {
	if u, ok := dir.Get(emailOrLogin); ok {
		return u, true
	}
	return dir.GetByEmail(emailOrLogin)
}

// resolveFolder resolves a named folder for the user, defaulting to INBOX
// when the name is empty. Any resolution failure, including an unprovisioned
// inbox, reads as not-found.
func resolveFolder(store *mail.Store, user model.User, folderName string) (*mail.Folder, bool) {
	var (
		f   *mail.Folder
		err error
	)
	if folderName == "" {
		f, err = store.Inbox(user)
	} else {
		f, err = store.Folder(user, folderName)
	}
	if err != nil {
		return nil, false
	}
	return f, true
}
