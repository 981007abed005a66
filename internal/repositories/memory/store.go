// Package memory provides an in-process implementation of the repository ports,
// used for local development and service tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
)

// Store keeps every entity in maps guarded by a single mutex. A unit of work
// holds the write lock for its whole duration, which serializes all mutations
// the way row locks do in PostgreSQL.
type Store struct {
	mu    sync.RWMutex
	state state
}

type state struct {
	trips        map[string]domain.Trip
	allocations  map[string]domain.CargoAllocation
	accounts     map[string]domain.Account
	transactions map[string]domain.Transaction
	payments     map[string]domain.Payment
	rates        []domain.CustomsRate
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: state{
		trips:        make(map[string]domain.Trip),
		allocations:  make(map[string]domain.CargoAllocation),
		accounts:     make(map[string]domain.Account),
		transactions: make(map[string]domain.Transaction),
		payments:     make(map[string]domain.Payment),
	}}
}

// snapshot copies the maps. Values are structs whose slices and pointers are
// replaced, never mutated in place, so a shallow copy is enough.
func (s *state) snapshot() state {
	return state{
		trips:        maps.Clone(s.trips),
		allocations:  maps.Clone(s.allocations),
		accounts:     maps.Clone(s.accounts),
		transactions: maps.Clone(s.transactions),
		payments:     maps.Clone(s.payments),
		rates:        append([]domain.CustomsRate(nil), s.rates...),
	}
}

// RunInTx executes fn with exclusive access to the store. Writes go straight to
// the live maps; on error (or panic) the snapshot taken on entry is restored.
func (s *Store) RunInTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state.snapshot()
	committed := false
	defer func() {
		if !committed {
			s.state = snap
		}
	}()

	if err := fn(ctx, &txView{st: &s.state}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	committed = true
	return nil
}

// SeedCustomsRate registers a customs rate. Rates are maintained outside this service.
func (s *Store) SeedCustomsRate(rate domain.CustomsRate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rates = append(s.state.rates, rate)
}

// read takes the read lock and returns a view of the committed state with its unlock func.
func (s *Store) read() (*txView, func()) {
	s.mu.RLock()
	return &txView{st: &s.state}, s.mu.RUnlock
}

// Provider wires the store into the service layer.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       s,
		TripRepo:        s,
		AllocationRepo:  s,
		AccountRepo:     s,
		TransactionRepo: s,
		PaymentRepo:     s,
		CustomsRateRepo: s,
	}
}

// txView is the set of repositories bound to a locked state.
type txView struct {
	st *state
}

func (v *txView) Trips() portsrepo.TripRepositoryFacade             { return v }
func (v *txView) Allocations() portsrepo.AllocationRepositoryFacade { return v }
func (v *txView) Accounts() portsrepo.AccountRepositoryFacade       { return v }
func (v *txView) Transactions() portsrepo.TransactionRepositoryFacade {
	return v
}
func (v *txView) Payments() portsrepo.PaymentRepositoryFacade { return v }
func (v *txView) CustomsRates() portsrepo.CustomsRateReader   { return v }

var (
	_ portsrepo.TransactionManager = (*Store)(nil)
	_ portsrepo.UnitOfWork         = (*txView)(nil)
	_ portsrepo.TripReader         = (*Store)(nil)
	_ portsrepo.AllocationReader   = (*Store)(nil)
	_ portsrepo.AccountReader      = (*Store)(nil)
	_ portsrepo.TransactionReader  = (*Store)(nil)
	_ portsrepo.PaymentReader      = (*Store)(nil)
	_ portsrepo.CustomsRateReader  = (*Store)(nil)
)
