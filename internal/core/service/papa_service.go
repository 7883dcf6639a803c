package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// PapaService manages the bookable papa catalogue.
type PapaService struct {
	repo ports.PapaRepository
	log  zerolog.Logger
}

func NewPapaService(repo ports.PapaRepository, log zerolog.Logger) *PapaService {
	return &PapaService{repo: repo, log: log}
}

func (s *PapaService) Create(ctx context.Context, in ports.PapaInput) (*domain.Papa, error) {
	papa := fromPapaInput(in)
	papa.ID = uuid.NewString()

	if err := s.repo.Create(ctx, papa); err != nil {
		return nil, err
	}
	s.log.Info().Str("papa_id", papa.ID).Str("papa_type", papa.PapaType).Msg("papa created")
	return papa, nil
}

func (s *PapaService) GetAll(ctx context.Context) ([]domain.Papa, error) {
	papas, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(papas) == 0 {
		return nil, domain.ErrNoPapas
	}
	return papas, nil
}

func (s *PapaService) GetByID(ctx context.Context, id string) (*domain.Papa, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces all persisted fields of a papa. The age never appears
// here: it is recomputed from the birth date on every read.
func (s *PapaService) Update(ctx context.Context, id string, in ports.PapaInput) (*domain.Papa, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	papa := fromPapaInput(in)
	papa.ID = id
	if err := s.repo.Update(ctx, papa); err != nil {
		return nil, err
	}
	return papa, nil
}

func (s *PapaService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func fromPapaInput(in ports.PapaInput) *domain.Papa {
	return &domain.Papa{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		RUT:           in.RUT,
		BirthDate:     in.BirthDate.UTC(),
		Nationality:   in.Nationality,
		Occupation:    in.Occupation,
		MaritalStatus: in.MaritalStatus,
		ChildrenCount: in.ChildrenCount,
		Hobbies:       in.Hobbies,
		PapaType:      in.PapaType,
		Motto:         in.Motto,
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
	}
}
