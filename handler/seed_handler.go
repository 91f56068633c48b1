package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Barento999/ecommerce-spa-sub001/entity"
	seedpkg "github.com/Barento999/ecommerce-spa-sub001/seed"
)

// SeedHandler starts seeding runs in the background, one at a time.
type SeedHandler struct {
	service   seedpkg.Service
	customers func() []entity.CustomerSeed
	logger    *logrus.Logger
	timeout   time.Duration
	running   atomic.Bool
	done      chan *seedpkg.Summary
}

func NewSeedHandler(svc seedpkg.Service, customers func() []entity.CustomerSeed, logger *logrus.Logger) *SeedHandler {
	return &SeedHandler{
		service:   svc,
		customers: customers,
		logger:    logger,
		timeout:   5 * time.Minute,
	}
}

// WithDone makes each finished run's summary available on ch. Sends never block.
func (h *SeedHandler) WithDone(ch chan *seedpkg.Summary) *SeedHandler {
	h.done = ch
	return h
}

// StartSeed responds 202 once a run is started, 409 if one is in progress.
func (h *SeedHandler) StartSeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.running.CompareAndSwap(false, true) {
			callableError(c, statusAlreadyExists, "a seeding run is already in progress")
			return
		}

		customers := h.customers()
		go func() {
			defer h.running.Store(false)
			ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
			defer cancel()

			sum := h.service.Run(ctx, customers)
			h.logger.WithFields(logrus.Fields{
				"run_id":  sum.RunID,
				"created": sum.Count(seedpkg.OutcomeCreated),
				"reused":  sum.Count(seedpkg.OutcomeReused),
				"skipped": sum.Count(seedpkg.OutcomeSkipped),
				"failed":  sum.Count(seedpkg.OutcomeFailed),
				"orders":  sum.Orders(),
			}).Info("Background seeding run finished")

			if h.done != nil {
				select {
				case h.done <- sum:
				default:
				}
			}
		}()

		callableResult(c, http.StatusAccepted, gin.H{
			"message":   "seeding started",
			"customers": len(customers),
		})
	}
}
