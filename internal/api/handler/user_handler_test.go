package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cartowiki/webapp/internal/api/middleware"
	"github.com/cartowiki/webapp/internal/core/domain"
	"github.com/cartowiki/webapp/internal/core/ports"
)

type stubUserService struct {
	getFn    func(ctx context.Context, id string, requester domain.Principal) (*domain.Account, error)
	listFn   func(ctx context.Context, requester domain.Principal) ([]*domain.Account, error)
	deleteFn func(ctx context.Context, id string, requester domain.Principal) error
	editFn   func(ctx context.Context, id string, requester domain.Principal, input ports.EditAccountInput) error
}

func (s *stubUserService) GetAccount(ctx context.Context, id string, requester domain.Principal) (*domain.Account, error) {
	return s.getFn(ctx, id, requester)
}

func (s *stubUserService) ListAccounts(ctx context.Context, requester domain.Principal) ([]*domain.Account, error) {
	return s.listFn(ctx, requester)
}

func (s *stubUserService) DeleteAccount(ctx context.Context, id string, requester domain.Principal) error {
	return s.deleteFn(ctx, id, requester)
}

func (s *stubUserService) EditAccount(ctx context.Context, id string, requester domain.Principal, input ports.EditAccountInput) error {
	return s.editFn(ctx, id, requester, input)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, principal domain.Principal) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, principal)
	return c
}

var testAdmin = domain.Principal{ID: "a1", Username: "admin", Role: domain.RoleAdministrator}

func TestUserHandler_Get_OK(t *testing.T) {
	svc := &stubUserService{
		getFn: func(_ context.Context, id string, requester domain.Principal) (*domain.Account, error) {
			if id != "u42" {
				t.Fatalf("unexpected id %q", id)
			}
			if requester.Username != "admin" {
				t.Fatalf("unexpected requester %+v", requester)
			}
			return &domain.Account{ID: "u42", Username: "bob", Email: "bob@example.com", Role: domain.RoleContributor, Enabled: true}, nil
		},
	}
	h := NewUserHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/u42", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("u42")

	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp accountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != "bob" || resp.Role != "CONTRIBUTOR" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Get_Unauthenticated(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(context.Context, string, domain.Principal) (*domain.Account, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/u42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if code := httpStatus(t, h.Get(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestUserHandler_Get_ForbiddenPassthrough(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(context.Context, string, domain.Principal) (*domain.Account, error) {
			return nil, domain.ErrForbidden
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/u42", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("u42")

	if err := h.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_List_OK(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		listFn: func(context.Context, domain.Principal) ([]*domain.Account, error) {
			return []*domain.Account{
				{ID: "1", Username: "alice", Role: domain.RoleAdministrator},
				{ID: "2", Username: "bob", Role: domain.RoleContributor},
			}, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Users))
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		listFn: func(context.Context, domain.Principal) ([]*domain.Account, error) {
			return nil, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Users == nil || len(resp.Users) != 0 {
		t.Fatalf("expected empty array, got %v", rec.Body.String())
	}
}

func TestUserHandler_Delete_OK(t *testing.T) {
	deleted := ""
	h := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, id string, _ domain.Principal) error {
			deleted = id
			return nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/users/u42", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("u42")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != "u42" {
		t.Fatalf("expected delete of u42, got %q", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "user successfully deleted" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestUserHandler_Delete_NotFoundPassthrough(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(context.Context, string, domain.Principal) error {
			return domain.ErrUserNotFound
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/users/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Edit_Accepted(t *testing.T) {
	var got ports.EditAccountInput
	h := NewUserHandler(&stubUserService{
		editFn: func(_ context.Context, id string, _ domain.Principal, input ports.EditAccountInput) error {
			if id != "u42" {
				t.Fatalf("unexpected id %q", id)
			}
			got = input
			return nil
		},
	})

	e := echo.New()
	e.Validator = NewValidator()
	req := jsonRequest(http.MethodPut, "/users/u42", `{"email":"new@example.com","role":"ADMINISTRATOR"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("u42")

	if err := h.Edit(c); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if got.Email != "new@example.com" || got.Role != "ADMINISTRATOR" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if got.Username != "" || got.Password != "" {
		t.Fatalf("untouched fields should stay empty: %+v", got)
	}
}

func TestUserHandler_Edit_RejectsMalformedPayload(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		editFn: func(context.Context, string, domain.Principal, ports.EditAccountInput) error {
			t.Fatalf("service should not be called")
			return nil
		},
	})

	e := echo.New()
	e.Validator = NewValidator()
	req := jsonRequest(http.MethodPut, "/users/u42", `{"role":"WIZARD"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("u42")

	if code := httpStatus(t, h.Edit(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_Edit_ConflictPassthrough(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		editFn: func(context.Context, string, domain.Principal, ports.EditAccountInput) error {
			return domain.ErrEmailTaken
		},
	})

	e := echo.New()
	e.Validator = NewValidator()
	req := jsonRequest(http.MethodPut, "/users/u42", `{"email":"dup@example.com"}`)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("u42")

	if err := h.Edit(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
