package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edvin/mailsink/internal/api/response"
	"github.com/edvin/mailsink/internal/mail"
)

type Service struct {
	svc *mail.Service
}

func NewService(svc *mail.Service) *Service {
	return &Service{svc: svc}
}

// Purge removes all messages from all mailboxes. A store failure is reported
// in the body but keeps the 200 status; unlike the user endpoints, this
// endpoint never overrides the status code. Kept for wire compatibility.
func (h *Service) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Purge(); err != nil {
		response.WriteResult(w, http.StatusOK, response.Failure("Can not purge mails : "+err.Error()))
		return
	}
	response.WriteResult(w, http.StatusOK, response.Success("Purged mails"))
}

// Reset reinitializes the directory and mailbox store to their provisioned
// startup state. The contract reports success unconditionally; a provisioning
// failure is logged but not surfaced.
func (h *Service) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("reset reprovisioning failed")
	}
	response.WriteResult(w, http.StatusOK, response.Success("Performed reset"))
}

// Readiness reports whether the mail service accepts traffic. Both outcomes
// use the success-shaped body; the status code carries the signal.
func (h *Service) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.svc.Running() {
		response.WriteResult(w, http.StatusOK, response.Success("Service running"))
		return
	}
	response.WriteResult(w, http.StatusServiceUnavailable, response.Success("Service not running"))
}
