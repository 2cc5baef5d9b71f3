//go:build unit

// Package fake holds an in-memory unit of work for exercising command logic
// without a database. Within snapshots state before running the body and
// restores it when the body fails, mirroring transactional rollback.
package fake

import (
	"context"
	"sync"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"
	domrating "eatyaar/internal/domain/rating"
	domuser "eatyaar/internal/domain/user"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type ratingKey struct {
	ListingID uuid.UUID
	RaterID   uuid.UUID
}

type ratingRec struct {
	ID      uuid.UUID
	RateeID uuid.UUID
	Score   int
}

type claimKey struct {
	ListingID  uuid.UUID
	ClaimantID uuid.UUID
}

type state struct {
	listings map[uuid.UUID]shared.ListingSnapshot
	claims   map[uuid.UUID]shared.ClaimSnapshot
	users    map[uuid.UUID]shared.UserSnapshot
	ratings  map[ratingKey]ratingRec
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.listings {
		c.listings[k] = v
	}
	for k, v := range s.claims {
		c.claims[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.ratings {
		c.ratings[k] = v
	}
	return c
}

func newState() *state {
	return &state{
		listings: make(map[uuid.UUID]shared.ListingSnapshot),
		claims:   make(map[uuid.UUID]shared.ClaimSnapshot),
		users:    make(map[uuid.UUID]shared.UserSnapshot),
		ratings:  make(map[ratingKey]ratingRec),
	}
}

type UoW struct {
	mu sync.Mutex
	st *state
}

func NewUoW() *UoW {
	return &UoW{st: newState()}
}

// Seed helpers install fixtures outside any transaction.

func (u *UoW) SeedListing(s *shared.ListingSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.listings[s.ID] = *s
}

func (u *UoW) SeedClaim(s *shared.ClaimSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.claims[s.ID] = *s
}

func (u *UoW) SeedUser(s *shared.UserSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.users[s.ID] = *s
}

// State accessors for assertions.

func (u *UoW) Listing(id uuid.UUID) (shared.ListingSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.listings[id]
	return s, ok
}

func (u *UoW) Claim(id uuid.UUID) (shared.ClaimSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.claims[id]
	return s, ok
}

func (u *UoW) User(id uuid.UUID) (shared.UserSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.users[id]
	return s, ok
}

func (u *UoW) RatingCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.st.ratings)
}

// Within serializes bodies under one lock so the fake behaves like a
// single-connection database.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	backup := u.st.clone()
	tx := &fakeTx{st: u.st}
	if err := fn(ctx, tx); err != nil {
		u.st = backup
		return err
	}
	return nil
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &fakeReads{st: u.st, mu: &u.mu}
}

type fakeTx struct {
	st *state
}

func (t *fakeTx) Listings() shared.ListingRepository { return &listingRepo{st: t.st} }
func (t *fakeTx) Claims() shared.ClaimRepository     { return &claimRepo{st: t.st} }
func (t *fakeTx) Ratings() shared.RatingRepository   { return &ratingRepo{st: t.st} }
func (t *fakeTx) Users() shared.UserRepository       { return &userRepo{st: t.st} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{st: t.st} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeReads struct {
	st *state
	mu *sync.Mutex
}

func (r *fakeReads) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *fakeReads) ListingByID(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	defer r.lock()()
	s, ok := r.st.listings[id]
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return &s, nil
}

func (r *fakeReads) ClaimByID(_ context.Context, id uuid.UUID) (*shared.ClaimSnapshot, error) {
	defer r.lock()()
	s, ok := r.st.claims[id]
	if !ok {
		return nil, infra.WrapRepoErr("claim not found", nil, infra.KindNotFound)
	}
	return &s, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	defer r.lock()()
	s, ok := r.st.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &s, nil
}

func (r *fakeReads) UserByPhone(_ context.Context, phone string) (*shared.UserSnapshot, error) {
	defer r.lock()()
	for _, s := range r.st.users {
		if s.Phone == phone {
			out := s
			return &out, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *fakeReads) ClaimExists(_ context.Context, listingID, claimantID uuid.UUID) (bool, error) {
	defer r.lock()()
	for _, c := range r.st.claims {
		if c.ListingID == listingID && c.ClaimantID == claimantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReads) RatingExists(_ context.Context, listingID, raterID uuid.UUID) (bool, error) {
	defer r.lock()()
	_, ok := r.st.ratings[ratingKey{ListingID: listingID, RaterID: raterID}]
	return ok, nil
}

type listingRepo struct {
	st *state
}

func (r *listingRepo) Create(_ context.Context, _ db.DBTX, l *domlisting.Listing) (uuid.UUID, error) {
	r.st.listings[l.ID()] = shared.ListingSnapshot{
		ID:           l.ID(),
		OwnerID:      l.OwnerID(),
		Title:        l.Title(),
		Servings:     l.Servings(),
		AreaName:     l.AreaName(),
		ExactAddress: l.ExactAddress(),
		Status:       l.Status(),
		PickupBy:     l.PickupBy(),
	}
	return l.ID(), nil
}

func (r *listingRepo) TransitionStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from, to domlisting.Status) (bool, error) {
	s, ok := r.st.listings[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	r.st.listings[id] = s
	return true, nil
}

func (r *listingRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.st.listings[id]; !ok {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	delete(r.st.listings, id)
	return nil
}

type claimRepo struct {
	st *state
}

func (r *claimRepo) Create(_ context.Context, _ db.DBTX, c *domclaim.Claim) (uuid.UUID, error) {
	for _, existing := range r.st.claims {
		if existing.ListingID == c.ListingID() && existing.ClaimantID == c.ClaimantID() {
			return uuid.Nil, infra.WrapRepoErr("duplicate claim", nil, infra.KindDuplicateKey)
		}
	}
	r.st.claims[c.ID()] = shared.ClaimSnapshot{
		ID:         c.ID(),
		ListingID:  c.ListingID(),
		ClaimantID: c.ClaimantID(),
		Status:     c.Status(),
		CreatedAt:  c.CreatedAt(),
	}
	return c.ID(), nil
}

func (r *claimRepo) TransitionStatus(_ context.Context, _ db.DBTX, id uuid.UUID, from, to domclaim.Status) (bool, error) {
	s, ok := r.st.claims[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	r.st.claims[id] = s
	return true, nil
}

type ratingRepo struct {
	st *state
}

func (r *ratingRepo) Create(_ context.Context, _ db.DBTX, rt *domrating.Rating) (uuid.UUID, error) {
	key := ratingKey{ListingID: rt.ListingID(), RaterID: rt.RaterID()}
	if _, ok := r.st.ratings[key]; ok {
		return uuid.Nil, infra.WrapRepoErr("duplicate rating", nil, infra.KindDuplicateKey)
	}
	r.st.ratings[key] = ratingRec{
		ID:      rt.ID(),
		RateeID: rt.RateeID(),
		Score:   rt.Score().Value(),
	}
	return rt.ID(), nil
}

func (r *ratingRepo) AverageScoreFor(_ context.Context, _ db.DBTX, rateeID uuid.UUID) (float64, int, error) {
	sum, count := 0, 0
	for _, rec := range r.st.ratings {
		if rec.RateeID == rateeID {
			sum += rec.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type userRepo struct {
	st *state
}

func (r *userRepo) Create(_ context.Context, _ db.DBTX, u *domuser.User) (uuid.UUID, error) {
	r.st.users[u.ID()] = shared.UserSnapshot{
		ID:         u.ID(),
		Phone:      u.Phone().Value(),
		Name:       u.Name(),
		Email:      u.Email(),
		City:       u.City(),
		Area:       u.Area(),
		TrustScore: u.TrustScore(),
		TotalGiven: u.TotalGiven(),
		TotalTaken: u.TotalTaken(),
		IsVerified: u.IsVerified(),
		CreatedAt:  u.CreatedAt(),
	}
	return u.ID(), nil
}

func (r *userRepo) CompleteProfile(_ context.Context, _ db.DBTX, id uuid.UUID, name, email, city, area string) error {
	s, ok := r.st.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	s.Name = name
	s.Email = email
	s.City = city
	s.Area = area
	r.st.users[id] = s
	return nil
}

func (r *userRepo) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.st.users[id]; !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *userRepo) IncrementCounters(_ context.Context, _ db.DBTX, id uuid.UUID, givenDelta, takenDelta int) error {
	s, ok := r.st.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	s.TotalGiven += givenDelta
	s.TotalTaken += takenDelta
	r.st.users[id] = s
	return nil
}

func (r *userRepo) UpdateTrustScore(_ context.Context, _ db.DBTX, id uuid.UUID, score float64) error {
	s, ok := r.st.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	s.TrustScore = score
	r.st.users[id] = s
	return nil
}
