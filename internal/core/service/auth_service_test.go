package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	for _, a := range r.admins {
		if a.Email == admin.Email {
			return domain.ErrAdminExists
		}
	}
	r.admins[admin.ID] = cloneAdmin(admin)
	return nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindAll(_ context.Context) ([]domain.Admin, error) {
	out := make([]domain.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, *cloneAdmin(a))
	}
	return out, nil
}

func (r *stubAdminRepo) Update(_ context.Context, admin *domain.Admin) error {
	if _, ok := r.admins[admin.ID]; !ok {
		return domain.ErrAdminNotFound
	}
	r.admins[admin.ID] = cloneAdmin(admin)
	return nil
}

func (r *stubAdminRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.admins[id]; !ok {
		return domain.ErrAdminNotFound
	}
	delete(r.admins, id)
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func newAuthFixture(t *testing.T) (*AuthService, *TokenService) {
	t.Helper()

	admins := newStubAdminRepo()
	users := newStubUserRepo()
	tokens := NewTokenService("secret", time.Hour)

	_ = admins.Create(context.Background(), &domain.Admin{
		ID: "admin-1", Username: "root", Email: "admin@example.com",
		PasswordHash: mustHash(t, "adminpass"),
	})
	now := time.Now().UTC()
	_ = users.Create(context.Background(), &domain.User{
		ID: "user-1", Username: "alice", Email: "alice@example.com",
		PasswordHash: mustHash(t, "userpass"), Active: true, LastActivity: &now,
	})

	return NewAuthService(admins, users, tokens, zerolog.Nop()), tokens
}

func TestAuthService_LoginAdmin_TokenCarriesRole(t *testing.T) {
	svc, tokens := newAuthFixture(t)

	token, admin, err := svc.LoginAdmin(context.Background(), "admin@example.com", "adminpass")
	if err != nil {
		t.Fatalf("LoginAdmin returned error: %v", err)
	}
	if admin == nil || admin.ID != "admin-1" {
		t.Fatalf("unexpected admin: %+v", admin)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin || claims.Subject != "admin-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_LoginUser_TokenCarriesRole(t *testing.T) {
	svc, tokens := newAuthFixture(t)

	token, user, err := svc.LoginUser(context.Background(), "alice@example.com", "userpass")
	if err != nil {
		t.Fatalf("LoginUser returned error: %v", err)
	}
	if user == nil || user.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Role != domain.RoleUser || claims.Subject != "user-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	svc, _ := newAuthFixture(t)

	cases := []struct {
		name            string
		email, password string
	}{
		{"wrong password", "alice@example.com", "nope"},
		{"unknown email", "ghost@example.com", "userpass"},
		{"empty password", "alice@example.com", ""},
		{"empty email", "", "userpass"},
	}
	for _, tc := range cases {
		if _, _, err := svc.LoginUser(context.Background(), tc.email, tc.password); err != domain.ErrInvalidCredentials {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}

	if _, _, err := svc.LoginAdmin(context.Background(), "admin@example.com", "nope"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad admin password, got %v", err)
	}
	if _, _, err := svc.LoginAdmin(context.Background(), "ghost@example.com", "adminpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown admin, got %v", err)
	}
}
