package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecodot/clubhub/internal/api/middleware"
	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

type stubAccountService struct {
	createIdx  int64
	createErr  error
	lastInput  ports.CreateAccountInput
	profile    *domain.Profile
	profileErr error
	lastPatch  ports.ProfilePatch
	deleted    []int64
	deleteErr  error
}

func (s *stubAccountService) CreateAccount(_ context.Context, input ports.CreateAccountInput) (int64, error) {
	s.lastInput = input
	if s.createErr != nil {
		return 0, s.createErr
	}
	return s.createIdx, nil
}

func (s *stubAccountService) GetProfile(_ context.Context, _ int64) (*domain.Profile, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}
	return s.profile, nil
}

func (s *stubAccountService) UpdateProfile(_ context.Context, _ int64, patch ports.ProfilePatch) error {
	s.lastPatch = patch
	return nil
}

func (s *stubAccountService) DeleteAccount(_ context.Context, accountIdx int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, accountIdx)
	return nil
}

func authedContext(e *echo.Echo, req *http.Request, accountIdx int64) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountIdx, accountIdx)
	c.Set(middleware.CtxEmail, "member@example.com")
	return c, rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	accounts := &stubAccountService{createIdx: 7}
	trail := &recordingDispatcher{}
	h := NewAccountHandler(accounts, newStubAuthService(), trail, testCookie)

	body := `{"email":"alice@example.com","password":"long-enough-pass","name":"Alice","admission_year":2021,"major_idxs":[0,1]}`
	req := jsonRequest(http.MethodPost, "/account", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["account_idx"] != 7 {
		t.Fatalf("expected account_idx 7, got %v", resp)
	}
	if accounts.lastInput.Email != "alice@example.com" || len(accounts.lastInput.MajorIdxs) != 2 {
		t.Fatalf("unexpected input forwarded: %+v", accounts.lastInput)
	}
	if len(trail.activities) != 1 || trail.activities[0].Kind != domain.ActivityAccountCreated {
		t.Fatalf("expected created activity, got %+v", trail.activities)
	}
}

func TestAccountHandler_Register_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	h := NewAccountHandler(&stubAccountService{}, newStubAuthService(), &recordingDispatcher{}, testCookie)

	bodies := []string{
		`{"email":"alice@example.com","password":"short","name":"Alice","admission_year":2021}`,
		`{"email":"alice@example.com","password":"long-enough-pass","name":"A","admission_year":2021}`,
		`{"email":"alice@example.com","password":"long-enough-pass","name":"Alice"}`,
	}
	for _, body := range bodies {
		req := jsonRequest(http.MethodPost, "/account", body)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %q, got %v", body, err)
		}
	}
}

func TestAccountHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	accounts := &stubAccountService{createErr: domain.ErrDuplicateEmail}
	h := NewAccountHandler(accounts, newStubAuthService(), &recordingDispatcher{}, testCookie)

	body := `{"email":"alice@example.com","password":"long-enough-pass","name":"Alice","admission_year":2021}`
	req := jsonRequest(http.MethodPost, "/account", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountHandler_Profile(t *testing.T) {
	e := newTestEcho()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	accounts := &stubAccountService{profile: &domain.Profile{
		Name:          "Alice",
		PersonalColor: "1A2B3C",
		AdmissionYear: 2021,
		CreatedAt:     created,
		Majors:        []string{"Computer Science"},
	}}
	h := NewAccountHandler(accounts, newStubAuthService(), &recordingDispatcher{}, testCookie)

	req := httptest.NewRequest(http.MethodGet, "/account/profile", nil)
	c, rec := authedContext(e, req, 42)

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"personal_color":"1A2B3C"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("profile response must not leak credentials: %s", rec.Body.String())
	}
}

func TestAccountHandler_Update_ForwardsPatch(t *testing.T) {
	e := newTestEcho()
	accounts := &stubAccountService{}
	h := NewAccountHandler(accounts, newStubAuthService(), &recordingDispatcher{}, testCookie)

	req := jsonRequest(http.MethodPatch, "/account", `{"name":"New Name","major_idxs":[2]}`)
	c, rec := authedContext(e, req, 42)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if accounts.lastPatch.Name == nil || *accounts.lastPatch.Name != "New Name" {
		t.Fatalf("expected name in patch, got %+v", accounts.lastPatch)
	}
	if accounts.lastPatch.AdmissionYear != nil {
		t.Fatalf("expected admission year omitted, got %+v", accounts.lastPatch)
	}
	if accounts.lastPatch.MajorIdxs == nil || len(*accounts.lastPatch.MajorIdxs) != 1 {
		t.Fatalf("expected majors in patch, got %+v", accounts.lastPatch)
	}
}

func TestAccountHandler_Delete_DestroysSession(t *testing.T) {
	e := newTestEcho()
	accounts := &stubAccountService{}
	auth := newStubAuthService()
	auth.sessions[42] = "signed-token"
	trail := &recordingDispatcher{}
	h := NewAccountHandler(accounts, auth, trail, testCookie)

	req := httptest.NewRequest(http.MethodDelete, "/account", nil)
	c, rec := authedContext(e, req, 42)

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(accounts.deleted) != 1 || accounts.deleted[0] != 42 {
		t.Fatalf("expected account 42 closed, got %v", accounts.deleted)
	}
	if len(auth.destroyed) != 1 || auth.destroyed[0] != 42 {
		t.Fatalf("expected session 42 destroyed, got %v", auth.destroyed)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Fatalf("expected expired cookie, got %q", rec.Header().Get("Set-Cookie"))
	}
	if len(trail.activities) != 1 || trail.activities[0].Kind != domain.ActivityAccountDeleted {
		t.Fatalf("expected deleted activity, got %+v", trail.activities)
	}
}

func TestAccountHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	accounts := &stubAccountService{deleteErr: domain.ErrAccountNotFound}
	h := NewAccountHandler(accounts, newStubAuthService(), &recordingDispatcher{}, testCookie)

	req := httptest.NewRequest(http.MethodDelete, "/account", nil)
	c, _ := authedContext(e, req, 42)

	if err := h.Delete(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
