package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edvin/mailsink/internal/api/request"
	"github.com/edvin/mailsink/internal/api/response"
	"github.com/edvin/mailsink/internal/mail"
)

type User struct {
	svc *mail.Service
}

func NewUser(svc *mail.Service) *User {
	return &User{svc: svc}
}

// List returns the full directory contents. Always 200, empty array when no
// users exist.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, h.svc.Directory().List())
}

func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUser
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Can not create user : "+err.Error())
		return
	}

	user, err := h.svc.CreateUser(req.Email, req.Login, req.Password)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "Can not create user : "+err.Error())
		return
	}

	zerolog.Ctx(r.Context()).Debug().Str("login", user.Login).Msg("created user")
	response.WriteJSON(w, http.StatusOK, user)
}

func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	emailOrLogin := chi.URLParam(r, "emailOrLogin")

	user, ok := resolveUser(h.svc.Directory(), emailOrLogin)
	if !ok {
		response.WriteError(w, http.StatusBadRequest, "User '"+emailOrLogin+"' not found")
		return
	}

	zerolog.Ctx(r.Context()).Debug().Str("login", user.Login).Msg("deleting user")
	h.svc.DeleteUser(user)
	response.WriteResult(w, http.StatusOK, response.Success("User '"+emailOrLogin+"' deleted"))
}
