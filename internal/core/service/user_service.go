package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentapapa/booking-api/internal/api/metrics"
	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// UserService manages customer accounts.
//
// Reads are not pure: every list or fetch runs the inactivity sweep, which
// can flip an idle account to inactive and send a deactivation notice.
type UserService struct {
	repo     ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewUserService(repo ports.UserRepository, notifier ports.Notifier, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, notifier: notifier, log: log, now: time.Now}
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Address:      in.Address,
		AvatarURL:    in.AvatarURL,
		Active:       true,
		LastActivity: &now,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.notifier.SendWelcome(ctx, user.Email, user.Username); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to send welcome notice")
	}

	s.log.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	for i := range users {
		s.sweep(ctx, &users[i])
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.sweep(ctx, user)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if set(in.Password) {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if set(in.Email) {
		user.Email = *in.Email
	}
	if set(in.Address) {
		user.Address = *in.Address
	}
	if set(in.AvatarURL) {
		user.AvatarURL = *in.AvatarURL
	}

	// Any update counts as activity.
	now := s.now().UTC()
	user.LastActivity = &now
	user.Active = true

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Active(ctx context.Context) ([]domain.User, error) {
	return s.filtered(ctx, true)
}

func (s *UserService) Inactive(ctx context.Context) ([]domain.User, error) {
	return s.filtered(ctx, false)
}

func (s *UserService) Reactivate(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Active {
		return nil, domain.ErrAlreadyActive
	}

	now := s.now().UTC()
	user.Active = true
	user.LastActivity = &now

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Msg("user reactivated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *UserService) filtered(ctx context.Context, active bool) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		s.sweep(ctx, &users[i])
	}
	matched := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Active == active {
			matched = append(matched, u)
		}
	}
	if len(matched) == 0 {
		return nil, domain.ErrNoUsers
	}
	return matched, nil
}

// sweep flips an idle user to inactive and sends a single deactivation
// notice. The notice fires only on the active→inactive transition, so a
// user already swept stays silent on later reads.
func (s *UserService) sweep(ctx context.Context, user *domain.User) {
	if !user.Active || !user.InactiveSince(s.now().UTC()) {
		return
	}

	user.Active = false
	if err := s.repo.Update(ctx, user); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to persist inactivity flip")
		return
	}

	metrics.UsersDeactivatedTotal.Inc()
	if err := s.notifier.SendDeactivationNotice(ctx, user.Email, user.Username); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to send deactivation notice")
	}
	s.log.Info().Str("user_id", user.ID).Msg("user marked inactive")
}

func set(field *string) bool { return field != nil && *field != "" }
