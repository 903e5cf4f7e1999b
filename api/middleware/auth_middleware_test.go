package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legalconnect/internal/entity"
	"legalconnect/internal/service"
	"legalconnect/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// fakeAccountLoader serves a single known account and mimics the
// resolver's role dispatch.
type fakeAccountLoader struct {
	account entity.Account
}

func (f fakeAccountLoader) LoadByRef(ctx context.Context, ref entity.AccountRef) (entity.Account, error) {
	if !ref.Role.Valid() {
		return nil, service.ErrUnknownRole
	}
	if f.account == nil || f.account.Ref() != ref {
		return nil, service.ErrAccountNotFound
	}
	return f.account, nil
}

func newGateTest(account entity.Account) (AuthMiddleware, utils.JWTManager) {
	manager := utils.JWTManager{Secret: []byte("gate-secret"), TokenTTL: time.Hour}
	gate := AuthMiddleware{JWT: &manager, Accounts: fakeAccountLoader{account: account}}
	return gate, manager
}

func runGate(t *testing.T, gate AuthMiddleware, authorization string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := gate.RequireAuth(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleIndividual, FullName: "A", Email: "a@x.com"}
	gate, manager := newGateTest(user)

	validToken, err := manager.Issue(user.Ref())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	expiredManager := utils.JWTManager{Secret: []byte("gate-secret"), TokenTTL: -time.Minute}
	expiredToken, _ := expiredManager.Issue(user.Ref())

	unknownRoleToken, _ := manager.Issue(entity.AccountRef{ID: user.ID, Role: "ghost"})
	missingToken, _ := manager.Issue(entity.AccountRef{ID: uuid.New(), Role: entity.RoleIndividual})

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantMessage   string
	}{
		{
			name:        "no header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized, no token provided",
		},
		{
			name:          "not a bearer header",
			authorization: "Basic abcdef",
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   "Not authorized, no token provided",
		},
		{
			name:          "tampered token",
			authorization: "Bearer " + validToken + "x",
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   "Not authorized, invalid token",
		},
		{
			name:          "expired token",
			authorization: "Bearer " + expiredToken,
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   "Not authorized, token expired",
		},
		{
			name:          "unknown role in token",
			authorization: "Bearer " + unknownRoleToken,
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   "Not authorized, unknown role in token",
		},
		{
			name:          "no account behind the id",
			authorization: "Bearer " + missingToken,
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   "Not authorized, user/lawyer not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runGate(t, gate, test.authorization)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected HTTP error, got %v", err)
			}
			if httpErr.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", httpErr.Code, test.wantStatus)
			}
			if httpErr.Message != test.wantMessage {
				t.Errorf("message = %v, want %q", httpErr.Message, test.wantMessage)
			}
		})
	}

	t.Run("valid token admits and attaches the account", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var attached entity.Account
		handler := gate.RequireAuth(func(c echo.Context) error {
			attached, _ = AccountFromContext(c)
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if attached == nil {
			t.Fatal("no account attached to context")
		}
		if attached.Ref() != user.Ref() {
			t.Errorf("attached ref = %+v, want %+v", attached.Ref(), user.Ref())
		}
	})
}

// An authenticated-but-underprivileged caller gets 403, not 401.
func TestRequireRole(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleIndividual, FullName: "A", Email: "a@x.com"}
	gate, manager := newGateTest(user)
	token, _ := manager.Issue(user.Ref())

	e := echo.New()

	t.Run("role outside the allowed set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/type/user", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := gate.RequireAuth(RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}))
		err := handler(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected HTTP error, got %v", err)
		}
		if httpErr.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", httpErr.Code, http.StatusForbidden)
		}
	})

	t.Run("role inside the allowed set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := gate.RequireAuth(RequireRole(entity.RoleIndividual, entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}))
		if err := handler(c); err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}
