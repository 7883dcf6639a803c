package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentapapa/booking-api/internal/api/metrics"
	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// AuthService authenticates admins and users and hands out tokens.
//
// Unknown email and wrong password both come back as ErrInvalidCredentials;
// the two cases are indistinguishable to the caller.
type AuthService struct {
	admins ports.AdminRepository
	users  ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(admins ports.AdminRepository, users ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{admins: admins, users: users, tokens: tokens, log: log}
}

func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID, domain.RoleAdmin)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	s.log.Info().Str("admin_id", admin.ID).Msg("admin logged in")
	return token, admin, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("user", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("user", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, domain.RoleUser)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}
