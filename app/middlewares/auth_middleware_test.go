package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karavella/fabric-catalog/app/helpers"
	"github.com/karavella/fabric-catalog/app/models"
	"github.com/stretchr/testify/assert"
)

type mockUserRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func TestUploadGate_RejectsWithoutIdentity(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})
	gate := UploadGateMiddleware(&mockUserRepo{})(next)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", nil)

	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestUploadGate_RejectsUnknownUser(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return nil, nil
		},
	}
	gate := UploadGateMiddleware(repo)(next)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", nil)
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, uint(42))

	gate.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestUploadGate_AllowsAuthenticatedStaff(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})
	repo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "staff@example.com"}, nil
		},
	}
	gate := UploadGateMiddleware(repo)(next)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", nil)
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, uint(42))

	gate.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestStaffAuth_RedirectsAnonymousToLogin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	guard := StaffAuthMiddleware(&mockUserRepo{})(next)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/fabrics", nil)

	guard.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/admin/login")
}
