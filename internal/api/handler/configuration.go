package handler

import (
	"net/http"

	"github.com/edvin/mailsink/internal/api/response"
	"github.com/edvin/mailsink/internal/config"
	"github.com/edvin/mailsink/internal/model"
)

// ConfigurationSnapshot is the read-only projection served by
// GET /api/configuration. Field names follow the published wire format.
type ConfigurationSnapshot struct {
	ServerSetups           []model.ServerSetup `json:"serverSetups"`
	AuthenticationDisabled bool                `json:"authenticationDisabled"`
	SieveIgnoreDetail      bool                `json:"sieveIgnoreDetail"`
	PreloadDirectory       *string             `json:"preloadDirectory"`
}

type Configuration struct {
	cfg *config.Config
}

func NewConfiguration(cfg *config.Config) *Configuration {
	return &Configuration{cfg: cfg}
}

// Get assembles the snapshot fresh from live configuration. It has no error
// path; absent values serialize as their zero value.
func (h *Configuration) Get(w http.ResponseWriter, r *http.Request) {
	snapshot := ConfigurationSnapshot{
		ServerSetups:           h.cfg.Setups,
		AuthenticationDisabled: h.cfg.AuthenticationDisabled,
		SieveIgnoreDetail:      h.cfg.SieveIgnoreDetail,
	}
	if h.cfg.PreloadDirectory != "" {
		dir := h.cfg.PreloadDirectory
		snapshot.PreloadDirectory = &dir
	}
	if snapshot.ServerSetups == nil {
		snapshot.ServerSetups = []model.ServerSetup{}
	}

	response.WriteJSON(w, http.StatusOK, snapshot)
}
