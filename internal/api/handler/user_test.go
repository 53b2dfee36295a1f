package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/mailsink/internal/model"
)

func TestUserList_Empty(t *testing.T) {
	h := NewUser(newTestService(t))
	rec := httptest.NewRecorder()

	h.List(rec, newRequest(http.MethodGet, "/api/user", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestUserCreate(t *testing.T) {
	h := NewUser(newTestService(t))
	rec := httptest.NewRecorder()

	h.Create(rec, newRequest(http.MethodPost, "/api/user", map[string]any{
		"email": "a@x.com", "login": "a", "password": "p",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, model.User{Email: "a@x.com", Login: "a", Password: "p"}, user)
}

func TestUserCreate_ResolvableByLoginAndEmail(t *testing.T) {
	svc := newTestService(t)
	h := NewUser(svc)

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/api/user", map[string]any{
		"email": "a@x.com", "login": "a", "password": "p",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	byLogin, ok := resolveUser(svc.Directory(), "a")
	require.True(t, ok)
	byEmail, ok2 := resolveUser(svc.Directory(), "a@x.com")
	require.True(t, ok2)
	assert.Equal(t, byLogin, byEmail)
}

func TestUserCreate_DuplicateLogin(t *testing.T) {
	h := NewUser(newTestService(t))

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/api/user", map[string]any{
		"email": "a@x.com", "login": "a", "password": "p",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/api/user", map[string]any{
		"email": "other@x.com", "login": "a", "password": "p",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeMessage(rec)
	assert.Contains(t, body["message"], "Can not create user : ")
	assert.Contains(t, body["message"], "already exists")
}

func TestUserCreate_InvalidBody(t *testing.T) {
	h := NewUser(newTestService(t))
	rec := httptest.NewRecorder()

	h.Create(rec, newRequest(http.MethodPost, "/api/user", map[string]any{
		"email": "not-an-email", "login": "a",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(rec)["message"], "Can not create user : ")
}

func TestUserDelete_ByLogin(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CreateUser("a@x.com", "a", "p")
	require.NoError(t, err)
	h := NewUser(svc)

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodDelete, "/api/user/a", nil), "emailOrLogin", "a")
	h.Delete(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User 'a' deleted", decodeMessage(rec)["message"])
	assert.Empty(t, svc.Directory().List())
}

func TestUserDelete_ByEmail(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CreateUser("a@x.com", "a", "p")
	require.NoError(t, err)
	h := NewUser(svc)

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodDelete, "/api/user/a@x.com", nil), "emailOrLogin", "a@x.com")
	h.Delete(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User 'a@x.com' deleted", decodeMessage(rec)["message"])
}

func TestUserDelete_NotFound(t *testing.T) {
	h := NewUser(newTestService(t))

	rec := httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodDelete, "/api/user/ghost", nil), "emailOrLogin", "ghost")
	h.Delete(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User 'ghost' not found", decodeMessage(rec)["message"])
}

// Full lifecycle: create, duplicate rejection, delete by email, empty list.
func TestUserLifecycle(t *testing.T) {
	svc := newTestService(t)
	h := NewUser(svc)

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/api/user", map[string]any{
		"email": "a@x.com", "login": "a", "password": "p",
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, newRequest(http.MethodPost, "/api/user", map[string]any{
		"email": "a@x.com", "login": "a", "password": "p",
	}))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r := withChiURLParam(newRequest(http.MethodDelete, "/api/user/a@x.com", nil), "emailOrLogin", "a@x.com")
	h.Delete(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.List(rec, newRequest(http.MethodGet, "/api/user", nil))
	assert.Equal(t, "[]\n", rec.Body.String())
}
