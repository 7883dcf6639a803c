package ports

import (
	"context"
	"time"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// PapaInput carries the persisted papa fields. Age is intentionally absent
// from the input surface: it is derived from BirthDate on every read.
type PapaInput struct {
	FirstName     string
	LastName      string
	RUT           string
	BirthDate     time.Time
	Nationality   string
	Occupation    string
	MaritalStatus string
	ChildrenCount int
	Hobbies       string
	PapaType      string
	Motto         string
	Description   string
	Price         int
	ImageURL      string
}

// PapaService manages the bookable papa catalogue.
type PapaService interface {
	Create(ctx context.Context, in PapaInput) (*domain.Papa, error)
	GetAll(ctx context.Context) ([]domain.Papa, error)
	GetByID(ctx context.Context, id string) (*domain.Papa, error)
	Update(ctx context.Context, id string, in PapaInput) (*domain.Papa, error)
	Delete(ctx context.Context, id string) error
}
