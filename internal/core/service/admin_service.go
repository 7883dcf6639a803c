package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// AdminService manages back-office accounts. Unlike users, admins carry no
// activity tracking and are never swept.
type AdminService struct {
	repo ports.AdminRepository
	log  zerolog.Logger
}

func NewAdminService(repo ports.AdminRepository, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, log: log}
}

func (s *AdminService) Create(ctx context.Context, username, lastName, email, password string) (*domain.Admin, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", admin.ID).Msg("admin created")
	return admin, nil
}

func (s *AdminService) GetAll(ctx context.Context) ([]domain.Admin, error) {
	return s.repo.FindAll(ctx)
}

func (s *AdminService) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AdminService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if set(in.Password) {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hash)
	}
	if set(in.Email) {
		admin.Email = *in.Email
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
