package auth_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2beens/trainingadventure/internal/auth"
)

func TestHandler_HandleLogin_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := NewMocksessionService(ctrl)
	handler := auth.NewHandler(sessions)

	creds := auth.Credentials{Username: "admin", Password: "secret"}
	sessions.EXPECT().Login(gomock.Any(), creds, gomock.Any()).Return("tkn-123", nil)

	req := httptest.NewRequest(http.MethodPost, "/a/login", strings.NewReader(`{"username":"admin","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp auth.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "tkn-123", resp.Token)
}

func TestHandler_HandleLogin_Form(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := NewMocksessionService(ctrl)
	handler := auth.NewHandler(sessions)

	form := url.Values{}
	form.Set("username", "admin")
	form.Set("password", "wrong")
	sessions.EXPECT().
		Login(gomock.Any(), auth.Credentials{Username: "admin", Password: "wrong"}, gomock.Any()).
		Return("", auth.ErrWrongCredentials)

	req := httptest.NewRequest(http.MethodPost, "/a/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_HandleLogin_BadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := NewMocksessionService(ctrl)
	handler := auth.NewHandler(sessions)

	for _, body := range []string{`{"username":"","password":"x"}`, `{"username":"a"}`, `{bad json`} {
		req := httptest.NewRequest(http.MethodPost, "/a/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		handler.HandleLogin(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}

	sessions.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("redis down"))
	req := httptest.NewRequest(http.MethodPost, "/a/login", strings.NewReader(`{"username":"a","password":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_HandleLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := NewMocksessionService(ctrl)
	handler := auth.NewHandler(sessions)

	req := httptest.NewRequest(http.MethodGet, "/a/logout", nil)
	rr := httptest.NewRecorder()
	handler.HandleLogout(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	sessions.EXPECT().Logout(gomock.Any(), "stale").Return(false, nil)
	req = httptest.NewRequest(http.MethodGet, "/a/logout", nil)
	req.Header.Set(auth.TokenHeader, "stale")
	rr = httptest.NewRecorder()
	handler.HandleLogout(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	sessions.EXPECT().Logout(gomock.Any(), "tkn").Return(true, nil)
	req = httptest.NewRequest(http.MethodGet, "/a/logout", nil)
	req.Header.Set(auth.TokenHeader, "tkn")
	rr = httptest.NewRecorder()
	handler.HandleLogout(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "logged-out")
}
