package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/mailsink/internal/api/response"
	"github.com/edvin/mailsink/internal/mail"
)

type Message struct {
	svc *mail.Service
}

func NewMessage(svc *mail.Service) *Message {
	return &Message{svc: svc}
}

// List returns the messages of the user's folder, defaulting to INBOX when no
// folder name is in the route. The not-found message echoes the raw folder
// name parameter, so it is empty when the default was requested; kept that
// way for wire compatibility.
func (h *Message) List(w http.ResponseWriter, r *http.Request) {
	emailOrLogin := chi.URLParam(r, "emailOrLogin")
	folderName := chi.URLParam(r, "folderName")

	user, ok := resolveUser(h.svc.Directory(), emailOrLogin)
	if !ok {
		response.WriteError(w, http.StatusBadRequest, "User '"+emailOrLogin+"' not found")
		return
	}

	folder, ok := resolveFolder(h.svc.Store(), user, folderName)
	if !ok {
		response.WriteError(w, http.StatusBadRequest,
			"User '"+emailOrLogin+"' does not have mailbox folder '"+folderName+"'")
		return
	}

	response.WriteJSON(w, http.StatusOK, folder.Messages())
}
