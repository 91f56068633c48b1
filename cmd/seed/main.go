// Command seed populates the identity and document stores with synthetic
// customers, profiles and orders. It always exits 0; per-customer failures
// are logged and summarized.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Barento999/ecommerce-spa-sub001/bootstrap"
	"github.com/Barento999/ecommerce-spa-sub001/config"
	"github.com/Barento999/ecommerce-spa-sub001/logging"
	seedpkg "github.com/Barento999/ecommerce-spa-sub001/seed"
	seedsvc "github.com/Barento999/ecommerce-spa-sub001/seed/service"
)

func main() {
	seedFlag := flag.Uint64("seed", 0, "random seed (0 uses SEED_RANDOM_SEED or the clock)")
	backendFlag := flag.String("backend", "", "override BACKEND (firebase or sql)")
	flag.Parse()

	logger := logrus.New()
	if err := run(logger, *seedFlag, *backendFlag); err != nil {
		logger.WithError(err).Error("Error seeding data")
	}
	os.Exit(0)
}

func run(logger *logrus.Logger, seedOverride uint64, backendOverride string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected panic: %v", r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if backendOverride != "" {
		cfg.Backend = config.Backend(backendOverride)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if seedOverride != 0 {
		cfg.RandomSeed = seedOverride
	}
	logging.Configure(logger, cfg)

	ctx := context.Background()
	backend, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.WithFields(logrus.Fields{"backend": cfg.Backend, "random_seed": seed}).Info("Starting data seeding")

	gen := seedpkg.NewGenerator(seedpkg.NewRand(seed), time.Now, seedpkg.DefaultProducts())
	svc := seedsvc.NewSeedService(backend.Identity, backend.Profiles, backend.Orders, gen, seedpkg.LogReporter(logger))
	sum := svc.Run(ctx, seedpkg.DefaultCustomers())

	printSummary(sum)
	return nil
}

func printSummary(sum *seedpkg.Summary) {
	fmt.Printf("\nSeeding run %s finished in %s\n", sum.RunID, sum.FinishedAt.Sub(sum.StartedAt).Round(time.Millisecond))
	for _, r := range sum.Results {
		line := fmt.Sprintf("  %-8s %-30s orders=%d", r.Outcome, r.Email, len(r.OrderIDs))
		if r.Err != nil {
			line += "  error: " + r.Err.Error()
		}
		fmt.Println(line)
	}
	fmt.Printf("Accounts created: %d, reused: %d, skipped: %d, failed: %d; orders written: %d\n",
		sum.Count(seedpkg.OutcomeCreated), sum.Count(seedpkg.OutcomeReused),
		sum.Count(seedpkg.OutcomeSkipped), sum.Count(seedpkg.OutcomeFailed), sum.Orders())
}
