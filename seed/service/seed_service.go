package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	customerpkg "github.com/Barento999/ecommerce-spa-sub001/customer"
	"github.com/Barento999/ecommerce-spa-sub001/entity"
	"github.com/Barento999/ecommerce-spa-sub001/identity"
	orderpkg "github.com/Barento999/ecommerce-spa-sub001/order"
	seedpkg "github.com/Barento999/ecommerce-spa-sub001/seed"
)

// seedService implements seed.Service.
type seedService struct {
	accounts identity.Repository
	profiles customerpkg.Repository
	orders   orderpkg.Repository
	gen      *seedpkg.Generator
	reporter seedpkg.Reporter
	now      func() time.Time
}

// NewSeedService constructs a seed.Service writing through the given stores.
// reporter may be nil.
func NewSeedService(
	accounts identity.Repository,
	profiles customerpkg.Repository,
	orders orderpkg.Repository,
	gen *seedpkg.Generator,
	reporter seedpkg.Reporter,
) seedpkg.Service {
	if reporter == nil {
		reporter = seedpkg.ReporterFunc(func(seedpkg.Event) {})
	}
	return &seedService{
		accounts: accounts,
		profiles: profiles,
		orders:   orders,
		gen:      gen,
		reporter: reporter,
		now:      time.Now,
	}
}

func (s *seedService) Run(ctx context.Context, customers []entity.CustomerSeed) *seedpkg.Summary {
	sum := &seedpkg.Summary{
		RunID:     uuid.NewString(),
		StartedAt: s.now(),
		Results:   make([]seedpkg.CustomerResult, 0, len(customers)),
	}
	s.emit(sum.RunID, seedpkg.Event{Type: seedpkg.EventRunStarted})

	for _, c := range customers {
		res := s.seedCustomer(ctx, sum.RunID, c)
		sum.Results = append(sum.Results, res)
		switch res.Outcome {
		case seedpkg.OutcomeSkipped:
			s.emit(sum.RunID, seedpkg.Event{Type: seedpkg.EventCustomerSkipped, Email: c.Email, Error: errString(res.Err)})
		case seedpkg.OutcomeFailed:
			s.emit(sum.RunID, seedpkg.Event{Type: seedpkg.EventCustomerFailed, Email: c.Email, UID: res.UID, Error: errString(res.Err)})
		}
	}

	sum.FinishedAt = s.now()
	s.emit(sum.RunID, seedpkg.Event{Type: seedpkg.EventRunFinished, Orders: sum.Orders()})
	return sum
}

// seedCustomer creates or recovers the customer's account, writes the profile
// for new accounts, then appends a random number of orders.
func (s *seedService) seedCustomer(ctx context.Context, runID string, c entity.CustomerSeed) seedpkg.CustomerResult {
	res := seedpkg.CustomerResult{Email: c.Email}

	account, outcome, err := s.resolveAccount(ctx, runID, c)
	if err != nil {
		res.Outcome = seedpkg.OutcomeSkipped
		res.Err = err
		return res
	}
	res.UID = account.UID
	res.Outcome = outcome

	count := s.gen.OrderCount()
	for i := 0; i < count; i++ {
		o := s.gen.Order(*account)
		id, err := s.orders.AddOrder(ctx, &o)
		if err != nil {
			res.Outcome = seedpkg.OutcomeFailed
			res.Err = fmt.Errorf("add order %d of %d: %w", i+1, count, err)
			return res
		}
		res.OrderIDs = append(res.OrderIDs, id)
		s.emit(runID, seedpkg.Event{Type: seedpkg.EventOrderCreated, Email: c.Email, UID: account.UID, OrderID: id})
	}
	return res
}

func (s *seedService) resolveAccount(ctx context.Context, runID string, c entity.CustomerSeed) (*entity.Account, seedpkg.Outcome, error) {
	account, err := s.accounts.CreateAccount(ctx, identity.AccountToCreate{
		Email:         c.Email,
		Password:      c.Password,
		DisplayName:   c.DisplayName,
		EmailVerified: true,
	})
	if err == nil {
		s.emit(runID, seedpkg.Event{Type: seedpkg.EventAccountCreated, Email: c.Email, UID: account.UID})
		profile := s.gen.Profile(*account, c)
		if err := s.profiles.StoreProfile(ctx, &profile); err != nil {
			return nil, "", fmt.Errorf("store profile: %w", err)
		}
		s.emit(runID, seedpkg.Event{Type: seedpkg.EventProfileWritten, Email: c.Email, UID: account.UID})
		return account, seedpkg.OutcomeCreated, nil
	}
	if !errors.Is(err, identity.ErrEmailAlreadyExists) {
		return nil, "", fmt.Errorf("create account: %w", err)
	}

	account, err = s.accounts.GetAccountByEmail(ctx, c.Email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup existing account: %w", err)
	}
	s.emit(runID, seedpkg.Event{Type: seedpkg.EventAccountReused, Email: c.Email, UID: account.UID})
	return account, seedpkg.OutcomeReused, nil
}

func (s *seedService) emit(runID string, e seedpkg.Event) {
	e.RunID = runID
	e.At = s.now()
	s.reporter.Report(e)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
