package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

type stubReservationRepo struct {
	reservations map[string]*domain.Reservation
}

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{reservations: make(map[string]*domain.Reservation)}
}

func cloneReservation(r *domain.Reservation) *domain.Reservation {
	clone := *r
	return &clone
}

func (s *stubReservationRepo) Create(_ context.Context, res *domain.Reservation) error {
	// Mirrors the store's partial unique constraint on CONFIRMED rows.
	for _, existing := range s.reservations {
		if existing.Status == domain.ReservationConfirmed &&
			existing.PapaID == res.PapaID && existing.VisitDate.Equal(res.VisitDate) {
			return domain.ErrDateTaken
		}
	}
	s.reservations[res.ID] = cloneReservation(res)
	return nil
}

func (s *stubReservationRepo) FindByID(_ context.Context, id string) (*domain.Reservation, error) {
	r, ok := s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return cloneReservation(r), nil
}

func (s *stubReservationRepo) FindAll(_ context.Context) ([]domain.Reservation, error) {
	out := make([]domain.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, *cloneReservation(r))
	}
	return out, nil
}

func (s *stubReservationRepo) FindByVisitDate(_ context.Context, day time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range s.reservations {
		if r.VisitDate.Equal(day) {
			out = append(out, *cloneReservation(r))
		}
	}
	return out, nil
}

func (s *stubReservationRepo) ConfirmedExists(_ context.Context, papaID string, day time.Time) (bool, error) {
	for _, r := range s.reservations {
		if r.Status == domain.ReservationConfirmed && r.PapaID == papaID && r.VisitDate.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	if _, ok := s.reservations[res.ID]; !ok {
		return domain.ErrReservationNotFound
	}
	s.reservations[res.ID] = cloneReservation(res)
	return nil
}

func (s *stubReservationRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.reservations[id]; !ok {
		return domain.ErrReservationNotFound
	}
	delete(s.reservations, id)
	return nil
}

type stubPapaRepo struct {
	papas map[string]*domain.Papa
}

func newStubPapaRepo() *stubPapaRepo {
	return &stubPapaRepo{papas: make(map[string]*domain.Papa)}
}

func (s *stubPapaRepo) Create(_ context.Context, papa *domain.Papa) error {
	if _, ok := s.papas[papa.ID]; ok {
		return domain.ErrPapaExists
	}
	clone := *papa
	s.papas[papa.ID] = &clone
	return nil
}

func (s *stubPapaRepo) FindByID(_ context.Context, id string) (*domain.Papa, error) {
	p, ok := s.papas[id]
	if !ok {
		return nil, domain.ErrPapaNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *stubPapaRepo) FindAll(_ context.Context) ([]domain.Papa, error) {
	out := make([]domain.Papa, 0, len(s.papas))
	for _, p := range s.papas {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPapaRepo) Update(_ context.Context, papa *domain.Papa) error {
	if _, ok := s.papas[papa.ID]; !ok {
		return domain.ErrPapaNotFound
	}
	clone := *papa
	s.papas[papa.ID] = &clone
	return nil
}

func (s *stubPapaRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.papas[id]; !ok {
		return domain.ErrPapaNotFound
	}
	delete(s.papas, id)
	return nil
}

func newReservationFixture(t *testing.T) (*ReservationService, *stubReservationRepo, *stubNotifier, string, string) {
	t.Helper()

	users := newStubUserRepo()
	papas := newStubPapaRepo()
	reservations := newStubReservationRepo()
	notifier := &stubNotifier{}

	now := time.Now().UTC()
	user := &domain.User{ID: "user-1", Username: "alice", Email: "alice@example.com", Active: true, LastActivity: &now}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	papa := &domain.Papa{ID: "papa-1", FirstName: "Jorge", BirthDate: time.Date(1970, 5, 10, 0, 0, 0, 0, time.UTC)}
	if err := papas.Create(context.Background(), papa); err != nil {
		t.Fatalf("seed papa: %v", err)
	}

	svc := NewReservationService(reservations, users, papas, notifier, zerolog.Nop())
	return svc, reservations, notifier, user.ID, papa.ID
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, _, notifier, userID, papaID := newReservationFixture(t)

	visit := time.Now().UTC().AddDate(0, 0, 7)
	res, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: visit, VisitAddress: "Av. Siempre Viva 742",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if res.Status != domain.ReservationConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", res.Status)
	}
	if !res.VisitDate.Equal(domain.VisitDay(visit)) {
		t.Fatalf("visit date not normalised: %v", res.VisitDate)
	}
	if notifier.confirmations != 1 {
		t.Fatalf("expected one confirmation notice, got %d", notifier.confirmations)
	}
}

func TestReservationService_Create_PastDate(t *testing.T) {
	svc, _, _, userID, papaID := newReservationFixture(t)

	for _, visit := range []time.Time{
		time.Now().UTC().AddDate(0, 0, -1), // yesterday
		time.Now().UTC(),                   // today is not strictly after today
	} {
		_, err := svc.Create(context.Background(), ports.CreateReservationInput{
			UserID: userID, PapaID: papaID, VisitDate: visit, VisitAddress: "x",
		})
		if err != domain.ErrPastVisitDate {
			t.Fatalf("expected ErrPastVisitDate for %v, got %v", visit, err)
		}
	}
}

func TestReservationService_Create_UnknownRefs(t *testing.T) {
	svc, _, _, userID, papaID := newReservationFixture(t)
	visit := time.Now().UTC().AddDate(0, 0, 3)

	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: "ghost", PapaID: papaID, VisitDate: visit,
	}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: "ghost", VisitDate: visit,
	}); err != domain.ErrPapaNotFound {
		t.Fatalf("expected ErrPapaNotFound, got %v", err)
	}
}

func TestReservationService_Create_ConflictOnSameDate(t *testing.T) {
	svc, _, _, userID, papaID := newReservationFixture(t)
	visit := time.Now().UTC().AddDate(0, 0, 5)

	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: visit, VisitAddress: "a",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: visit, VisitAddress: "b",
	}); err != domain.ErrDateTaken {
		t.Fatalf("expected ErrDateTaken, got %v", err)
	}

	// A different future date is always bookable.
	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: visit.AddDate(0, 0, 1), VisitAddress: "c",
	}); err != nil {
		t.Fatalf("different date should succeed: %v", err)
	}
}

func TestReservationService_CancelFreesTheSlot(t *testing.T) {
	svc, _, _, userID, papaID := newReservationFixture(t)
	visit := time.Now().UTC().AddDate(0, 0, 5)

	first, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: visit, VisitAddress: "a",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.Status != domain.ReservationCancelled {
		t.Fatalf("expected CANCELLED, got %s", cancelled.Status)
	}

	// The cancelled slot is bookable again.
	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: visit, VisitAddress: "b",
	}); err != nil {
		t.Fatalf("cancelled slot should be bookable: %v", err)
	}
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, _, _, _, _ := newReservationFixture(t)

	if _, err := svc.Cancel(context.Background(), "missing"); err != domain.ErrReservationNotFound {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}

func TestReservationService_Create_NotifyFailureSwallowed(t *testing.T) {
	svc, _, notifier, userID, papaID := newReservationFixture(t)
	notifier.fail = true

	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: time.Now().UTC().AddDate(0, 0, 2), VisitAddress: "a",
	}); err != nil {
		t.Fatalf("notification failure must not fail the reservation: %v", err)
	}
}

func TestReservationService_GetAll_EmptyIsNotFound(t *testing.T) {
	svc, _, _, _, _ := newReservationFixture(t)

	if _, err := svc.GetAll(context.Background()); err != domain.ErrNoReservations {
		t.Fatalf("expected ErrNoReservations, got %v", err)
	}
}

func TestReservationService_DueTomorrow(t *testing.T) {
	svc, _, _, userID, papaID := newReservationFixture(t)

	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	later := time.Now().UTC().AddDate(0, 0, 4)
	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: tomorrow, VisitAddress: "a",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: later, VisitAddress: "b",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	due, err := svc.DueTomorrow(context.Background())
	if err != nil {
		t.Fatalf("DueTomorrow returned error: %v", err)
	}
	if len(due) != 1 || !due[0].VisitDate.Equal(domain.VisitDay(tomorrow)) {
		t.Fatalf("unexpected due set: %+v", due)
	}
}

func TestReservationService_Delete(t *testing.T) {
	svc, repo, _, userID, papaID := newReservationFixture(t)

	res, err := svc.Create(context.Background(), ports.CreateReservationInput{
		UserID: userID, PapaID: papaID, VisitDate: time.Now().UTC().AddDate(0, 0, 2), VisitAddress: "a",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), res.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.reservations[res.ID]; ok {
		t.Fatalf("reservation should be gone")
	}
	if err := svc.Delete(context.Background(), res.ID); err != domain.ErrReservationNotFound {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}
