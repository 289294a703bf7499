//go:build unit || e2e

// Package fake provides in-memory store implementations backing the unit of
// work contract. Within serializes callers on one mutex, which mirrors the
// one-admission-at-a-time guarantee the real store gives through serializable
// transactions.
package fake

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"ridepool/internal/domain/reservation"
	"ridepool/internal/domain/trip"
	"ridepool/internal/infra"
	"ridepool/internal/usecase/shared"
)

var errNoRows = errors.New("no rows in result set")

type UnitOfWork struct {
	mu    sync.Mutex
	state *state

	// FailWith, when set, makes every Within call fail before running fn.
	FailWith error
}

type state struct {
	trips        map[int64]*trip.Trip
	reservations map[string]*reservation.Reservation
	nextTripID   int64
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		state: &state{
			trips:        make(map[int64]*trip.Trip),
			reservations: make(map[string]*reservation.Reservation),
			nextTripID:   1,
		},
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.FailWith != nil {
		return u.FailWith
	}

	// Work on a copy so a failed fn leaves the state untouched
	snapshot := u.state.clone()
	tx := &fakeTx{state: snapshot}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.state = snapshot
	return nil
}

// SeedTrip stores the trip directly, bypassing the transactional path.
func (u *UnitOfWork) SeedTrip(t *trip.Trip) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.trips[t.ID()] = t
	if t.ID() >= u.state.nextTripID {
		u.state.nextTripID = t.ID() + 1
	}
}

// SeedReservation stores the reservation directly.
func (u *UnitOfWork) SeedReservation(r *reservation.Reservation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.reservations[r.Code().String()] = r
}

// Trip returns the stored trip, nil if absent.
func (u *UnitOfWork) Trip(id int64) *trip.Trip {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.trips[id]
}

// Reservation returns the stored reservation, nil if absent.
func (u *UnitOfWork) Reservation(code string) *reservation.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.reservations[code]
}

// Reservations returns all stored reservations ordered by code.
func (u *UnitOfWork) Reservations() []*reservation.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]*reservation.Reservation, 0, len(u.state.reservations))
	for _, r := range u.state.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code().String() < out[j].Code().String() })
	return out
}

func (s *state) clone() *state {
	c := &state{
		trips:        make(map[int64]*trip.Trip, len(s.trips)),
		reservations: make(map[string]*reservation.Reservation, len(s.reservations)),
		nextTripID:   s.nextTripID,
	}
	for id, t := range s.trips {
		copied := *t
		c.trips[id] = &copied
	}
	for code, r := range s.reservations {
		copied := *r
		c.reservations[code] = &copied
	}
	return c
}

type fakeTx struct {
	state *state
}

func (t *fakeTx) Trips() shared.TripStore               { return &tripStore{state: t.state} }
func (t *fakeTx) Reservations() shared.ReservationStore { return &reservationStore{state: t.state} }

type tripStore struct {
	state *state
}

func (s *tripStore) FindAll(_ context.Context) ([]*trip.Trip, error) {
	ids := make([]int64, 0, len(s.state.trips))
	for id := range s.state.trips {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*trip.Trip, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.state.trips[id])
	}
	return out, nil
}

func (s *tripStore) FindByRoute(ctx context.Context, text string) ([]*trip.Trip, error) {
	all, _ := s.FindAll(ctx)
	var out []*trip.Trip
	for _, t := range all {
		if strings.Contains(t.Route().String(), text) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *tripStore) FindByID(_ context.Context, id int64) (*trip.Trip, error) {
	t, ok := s.state.trips[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "trip not found", errNoRows)
	}
	return t, nil
}

func (s *tripStore) Create(_ context.Context, t *trip.Trip) (int64, error) {
	id := s.state.nextTripID
	s.state.nextTripID++

	stored := trip.ReconstructTrip(
		id, t.Owner(), t.Route(), t.DepartureAt(), t.DurationMin(),
		t.Price(), t.SeatsOffered(), t.Status(),
	)
	s.state.trips[id] = stored
	return id, nil
}

func (s *tripStore) Update(_ context.Context, t *trip.Trip) error {
	if _, ok := s.state.trips[t.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "trip not found", errNoRows)
	}
	s.state.trips[t.ID()] = t
	return nil
}

func (s *tripStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.state.trips[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "trip not found", errNoRows)
	}
	delete(s.state.trips, id)
	for code, r := range s.state.reservations {
		if r.TripID() == id {
			delete(s.state.reservations, code)
		}
	}
	return nil
}

type reservationStore struct {
	state *state
}

func (s *reservationStore) FindAll(_ context.Context) ([]*reservation.Reservation, error) {
	codes := make([]string, 0, len(s.state.reservations))
	for code := range s.state.reservations {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]*reservation.Reservation, 0, len(codes))
	for _, code := range codes {
		out = append(out, s.state.reservations[code])
	}
	return out, nil
}

func (s *reservationStore) FindByCode(_ context.Context, code string) (*reservation.Reservation, error) {
	r, ok := s.state.reservations[code]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", errNoRows)
	}
	return r, nil
}

func (s *reservationStore) FindAllByUser(ctx context.Context, user string) ([]*reservation.Reservation, error) {
	all, _ := s.FindAll(ctx)
	var out []*reservation.Reservation
	for _, r := range all {
		if r.BelongsTo(user) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *reservationStore) FindAllByTrip(ctx context.Context, tripID int64) ([]*reservation.Reservation, error) {
	all, _ := s.FindAll(ctx)
	var out []*reservation.Reservation
	for _, r := range all {
		if r.TripID() == tripID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *reservationStore) FindByUserAndTrip(_ context.Context, user string, tripID int64) (*reservation.Reservation, error) {
	for _, r := range s.state.reservations {
		if r.BelongsTo(user) && r.TripID() == tripID {
			return r, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", errNoRows)
}

func (s *reservationStore) SumSeatsForTrip(_ context.Context, tripID int64) (int, error) {
	total := 0
	for _, r := range s.state.reservations {
		if r.TripID() == tripID {
			total += r.Seats()
		}
	}
	return total, nil
}

func (s *reservationStore) CountForTrip(_ context.Context, tripID int64) (int, error) {
	count := 0
	for _, r := range s.state.reservations {
		if r.TripID() == tripID {
			count++
		}
	}
	return count, nil
}

func (s *reservationStore) Create(_ context.Context, r *reservation.Reservation) error {
	code := r.Code().String()
	if _, ok := s.state.reservations[code]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "reservation already exists", errors.New("duplicate key"))
	}
	for _, existing := range s.state.reservations {
		if existing.BelongsTo(r.User()) && existing.TripID() == r.TripID() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "reservation already exists", errors.New("duplicate key"))
		}
	}
	if _, ok := s.state.trips[r.TripID()]; !ok {
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, "trip does not exist", errors.New("foreign key violation"))
	}
	s.state.reservations[code] = r
	return nil
}

func (s *reservationStore) Update(_ context.Context, r *reservation.Reservation) error {
	code := r.Code().String()
	if _, ok := s.state.reservations[code]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", errNoRows)
	}
	s.state.reservations[code] = r
	return nil
}

func (s *reservationStore) Delete(_ context.Context, code string) error {
	if _, ok := s.state.reservations[code]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", errNoRows)
	}
	delete(s.state.reservations, code)
	return nil
}
