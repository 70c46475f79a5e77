// Package memory provides in-memory implementations of the bet and
// category stores, used by service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"betlytics/internal/model"
	"betlytics/internal/repository"
)

// BetStore keeps bets in a map guarded by a mutex. It mirrors the
// semantics of the PostgreSQL bet repository: owner scoping on every
// operation and idempotent deletes.
type BetStore struct {
	mu    sync.RWMutex
	bets  map[uuid.UUID]model.Bet
	order []uuid.UUID
}

// NewBetStore creates an empty in-memory bet store.
func NewBetStore() *BetStore {
	return &BetStore{bets: make(map[uuid.UUID]model.Bet)}
}

// ListByOwner returns the owner's bets in insertion order.
func (s *BetStore) ListByOwner(_ context.Context, ownerID string) ([]model.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Bet
	for _, id := range s.order {
		if b, ok := s.bets[id]; ok && b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

// Create stores a new bet and returns it with an assigned id.
func (s *BetStore) Create(_ context.Context, in model.NewBet) (*model.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := model.Bet{
		ID:        uuid.New(),
		OwnerID:   in.OwnerID,
		Event:     in.Event,
		Market:    in.Market,
		Category:  in.Category,
		Stake:     in.Stake,
		Odds:      in.Odds,
		Unit:      in.Unit,
		Outcome:   in.Outcome,
		Profit:    in.Profit,
		CreatedAt: in.CreatedAt,
	}
	s.bets[b.ID] = b
	s.order = append(s.order, b.ID)
	return &b, nil
}

// Update rewrites a bet's mutable fields; repository.ErrBetNotFound
// when the bet is absent or owned by someone else.
func (s *BetStore) Update(_ context.Context, ownerID string, id uuid.UUID, u model.BetUpdate) (*model.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bets[id]
	if !ok || b.OwnerID != ownerID {
		return nil, repository.ErrBetNotFound
	}

	b.Event = u.Event
	b.Market = u.Market
	b.Category = u.Category
	b.Stake = u.Stake
	b.Odds = u.Odds
	b.Unit = u.Unit
	b.Outcome = u.Outcome
	b.Profit = u.Profit
	b.CreatedAt = u.CreatedAt
	s.bets[id] = b
	return &b, nil
}

// Delete removes a bet if present; absent rows are not an error.
func (s *BetStore) Delete(_ context.Context, ownerID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.bets[id]; ok && b.OwnerID == ownerID {
		delete(s.bets, id)
	}
	return nil
}

// CategoryStore keeps owner-scoped category labels in memory with the
// same semantics as the PostgreSQL category repository.
type CategoryStore struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]model.Category
}

// NewCategoryStore creates an empty in-memory category store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{categories: make(map[uuid.UUID]model.Category)}
}

// ListByOwner returns the owner's categories sorted by name.
func (s *CategoryStore) ListByOwner(_ context.Context, ownerID string) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Category
	for _, c := range s.categories {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sortByName(out)
	return out, nil
}

// Create stores a category; repository.ErrCategoryExists on a
// duplicate (owner, name) pair.
func (s *CategoryStore) Create(_ context.Context, ownerID, name string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.OwnerID == ownerID && c.Name == name {
			return nil, repository.ErrCategoryExists
		}
	}

	c := model.Category{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	s.categories[c.ID] = c
	return &c, nil
}

// Delete removes a category if present; never an error.
func (s *CategoryStore) Delete(_ context.Context, ownerID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.categories[id]; ok && c.OwnerID == ownerID {
		delete(s.categories, id)
	}
	return nil
}

// Exists reports whether the owner has a category by name.
func (s *CategoryStore) Exists(_ context.Context, ownerID, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.OwnerID == ownerID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func sortByName(cs []model.Category) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
}
