// Package bootstrap builds the store clients selected by configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Barento999/ecommerce-spa-sub001/auth"
	"github.com/Barento999/ecommerce-spa-sub001/config"
	customerpkg "github.com/Barento999/ecommerce-spa-sub001/customer"
	customerrepo "github.com/Barento999/ecommerce-spa-sub001/customer/repository"
	"github.com/Barento999/ecommerce-spa-sub001/database"
	"github.com/Barento999/ecommerce-spa-sub001/identity"
	identityrepo "github.com/Barento999/ecommerce-spa-sub001/identity/repository"
	mw "github.com/Barento999/ecommerce-spa-sub001/middleware"
	orderpkg "github.com/Barento999/ecommerce-spa-sub001/order"
	orderrepo "github.com/Barento999/ecommerce-spa-sub001/order/repository"
)

// Backend holds explicitly constructed store clients.
type Backend struct {
	Identity identity.Repository
	Profiles customerpkg.Repository
	Orders   orderpkg.Repository
	// Verifier is nil on the sql backend; authenticated routes then reject every call.
	Verifier mw.TokenVerifier

	closers []func() error
}

// New connects to the backend selected by cfg.Backend.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Backend, error) {
	switch cfg.Backend {
	case config.BackendFirebase:
		return newFirebaseBackend(ctx, cfg, logger)
	case config.BackendSQL:
		return newSQLBackend(cfg, logger)
	}
	return nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
}

func newFirebaseBackend(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Backend, error) {
	app, err := auth.InitFirebaseApp(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore: %w", err)
	}

	logger.WithField("project_id", cfg.ProjectID).Info("Firebase backend ready")
	return &Backend{
		Identity: identityrepo.NewFirebaseIdentityRepo(authClient),
		Profiles: customerrepo.NewFirestoreCustomerRepo(fs),
		Orders:   orderrepo.NewFirestoreOrderRepo(fs),
		Verifier: authClient,
		closers:  []func() error{fs.Close},
	}, nil
}

func newSQLBackend(cfg *config.Config, logger *logrus.Logger) (*Backend, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	logger.WithField("driver", cfg.DBDriver).Info("SQL backend ready")
	return &Backend{
		Identity: identityrepo.NewGormIdentityRepo(db),
		Profiles: customerrepo.NewGormCustomerRepo(db),
		Orders:   orderrepo.NewGormOrderRepo(db),
		closers:  []func() error{sqlDB.Close},
	}, nil
}

// Close releases all underlying clients.
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
