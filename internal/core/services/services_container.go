package services

import (
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	if cfg != nil && cfg.DefaultCustomsAccountID != "" {
		// Caller options come last so tests can still override the account.
		opts = append([]Option{WithDefaultCustomsAccount(cfg.DefaultCustomsAccountID)}, opts...)
	}

	return &portssvc.ServiceContainer{
		Trip:       NewTripService(repos, opts...),
		Allocation: NewAllocationService(repos, opts...),
		Account:    NewLedgerService(repos, opts...),
		Payment:    NewPaymentService(repos, opts...),
		Customs:    NewCustomsService(repos, opts...),
	}
}
