package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/securedocs/docvault/internal/core/domain"
	"github.com/securedocs/docvault/internal/core/ports"
)

type stubGroupService struct {
	listFn     func(ctx context.Context) ([]domain.Group, error)
	withUsers  func(ctx context.Context, id int64) (*domain.Group, error)
	withDocs   func(ctx context.Context, id int64) (*domain.Group, error)
	createFn   func(ctx context.Context, in ports.CreateGroupInput) (*domain.Group, error)
	addUsersFn func(ctx context.Context, groupID int64, userIDs []int64) (*domain.Group, error)
	addDocsFn  func(ctx context.Context, groupID int64, documentIDs []int64) (*domain.Group, error)
}

func (s *stubGroupService) List(ctx context.Context) ([]domain.Group, error) {
	return s.listFn(ctx)
}

func (s *stubGroupService) FindOneWithUsers(ctx context.Context, id int64) (*domain.Group, error) {
	return s.withUsers(ctx, id)
}

func (s *stubGroupService) FindOneWithDocuments(ctx context.Context, id int64) (*domain.Group, error) {
	return s.withDocs(ctx, id)
}

func (s *stubGroupService) Create(ctx context.Context, in ports.CreateGroupInput) (*domain.Group, error) {
	return s.createFn(ctx, in)
}

func (s *stubGroupService) AddUsers(ctx context.Context, groupID int64, userIDs []int64) (*domain.Group, error) {
	return s.addUsersFn(ctx, groupID, userIDs)
}

func (s *stubGroupService) AddDocuments(ctx context.Context, groupID int64, documentIDs []int64) (*domain.Group, error) {
	return s.addDocsFn(ctx, groupID, documentIDs)
}

func TestGroupHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubGroupService{
		createFn: func(_ context.Context, in ports.CreateGroupInput) (*domain.Group, error) {
			if in.Name != "engineering" || len(in.UserIDs) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Group{
				ID:        1,
				Name:      in.Name,
				Users:     []domain.User{{ID: 1}, {ID: 2}},
				Documents: []domain.Document{},
			}, nil
		},
	}
	h := NewGroupHandler(stub)

	body := strings.NewReader(`{"name":"engineering","userIds":[1,2]}`)
	req := httptest.NewRequest(http.MethodPost, "/groups", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	users, ok := resp["users"].([]any)
	if !ok || len(users) != 2 {
		t.Fatalf("expected 2 users in payload: %v", resp)
	}
	docs, ok := resp["documents"].([]any)
	if !ok || len(docs) != 0 {
		t.Fatalf("expected empty documents array: %v", resp)
	}
}

func TestGroupHandler_Create_MissingName(t *testing.T) {
	e := newTestEcho()
	stub := &stubGroupService{
		createFn: func(context.Context, ports.CreateGroupInput) (*domain.Group, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewGroupHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(`{"userIds":[1]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGroupHandler_AddUsers_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubGroupService{
		addUsersFn: func(_ context.Context, groupID int64, userIDs []int64) (*domain.Group, error) {
			if groupID != 3 || len(userIDs) != 1 || userIDs[0] != 8 {
				t.Fatalf("unexpected args: %d %v", groupID, userIDs)
			}
			return &domain.Group{ID: 3, Name: "team", Users: []domain.User{{ID: 8}}, Documents: []domain.Document{}}, nil
		},
	}
	h := NewGroupHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/groups/users/3", strings.NewReader(`{"userIds":[8]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.AddUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGroupHandler_AddUsers_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewGroupHandler(&stubGroupService{})

	req := httptest.NewRequest(http.MethodPut, "/groups/users/abc", strings.NewReader(`{"userIds":[1]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.AddUsers(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %v", err)
	}
}

func TestGroupHandler_AddDocuments_UnknownGroup(t *testing.T) {
	e := newTestEcho()
	stub := &stubGroupService{
		addDocsFn: func(_ context.Context, groupID int64, _ []int64) (*domain.Group, error) {
			return nil, domain.NotFoundf("Group #%d not found", groupID)
		},
	}
	h := NewGroupHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/groups/documents/42", strings.NewReader(`{"documentIds":[1]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.AddDocuments(c)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != "Group #42 not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestGroupHandler_FindWithUsers_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubGroupService{
		withUsers: func(_ context.Context, id int64) (*domain.Group, error) {
			return &domain.Group{ID: id, Name: "team", Users: []domain.User{{ID: 1, Email: "a@example.com"}}}, nil
		},
	}
	h := NewGroupHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/groups/users/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.FindWithUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, present := resp["documents"]; present {
		t.Fatalf("documents must not appear in the users view: %v", resp)
	}
	users, ok := resp["users"].([]any)
	if !ok || len(users) != 1 {
		t.Fatalf("expected 1 user: %v", resp)
	}
	user := users[0].(map[string]any)
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked in group payload: %v", user)
	}
}
