package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicePurge(t *testing.T) {
	svc := newTestService(t)
	user, err := svc.CreateUser("a@x.com", "a", "p")
	require.NoError(t, err)
	_, err = svc.Store().Deliver(user, "text/plain", "hello")
	require.NoError(t, err)
	h := NewService(svc)

	rec := httptest.NewRecorder()
	h.Purge(rec, newRequest(http.MethodPost, "/api/mail/purge", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Purged mails", decodeMessage(rec)["message"])

	inbox, err := svc.Store().Inbox(user)
	require.NoError(t, err)
	assert.Empty(t, inbox.Messages())
}

func TestServiceReset(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CreateUser("a@x.com", "a", "p")
	require.NoError(t, err)
	h := NewService(svc)

	rec := httptest.NewRecorder()
	h.Reset(rec, newRequest(http.MethodPost, "/api/service/reset", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Performed reset", decodeMessage(rec)["message"])
	assert.Empty(t, svc.Directory().List())
}

func TestServiceReadiness_Toggles(t *testing.T) {
	svc := newTestService(t)
	h := NewService(svc)

	rec := httptest.NewRecorder()
	h.Readiness(rec, newRequest(http.MethodGet, "/api/service/readiness", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Service running", decodeMessage(rec)["message"])

	svc.Stop()

	// The flag flip is visible on the very next call.
	rec = httptest.NewRecorder()
	h.Readiness(rec, newRequest(http.MethodGet, "/api/service/readiness", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Service not running", decodeMessage(rec)["message"])

	svc.SetRunning(true)

	rec = httptest.NewRecorder()
	h.Readiness(rec, newRequest(http.MethodGet, "/api/service/readiness", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
