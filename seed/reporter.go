package seed

import (
	"time"

	"github.com/sirupsen/logrus"
)

// EventType names a progress event emitted during a run.
type EventType string

const (
	EventRunStarted      EventType = "run.started"
	EventAccountCreated  EventType = "account.created"
	EventAccountReused   EventType = "account.reused"
	EventProfileWritten  EventType = "profile.written"
	EventOrderCreated    EventType = "order.created"
	EventCustomerSkipped EventType = "customer.skipped"
	EventCustomerFailed  EventType = "customer.failed"
	EventRunFinished     EventType = "run.finished"
)

// Event is a single progress notification.
type Event struct {
	Type    EventType `json:"type"`
	RunID   string    `json:"runId"`
	Email   string    `json:"email,omitempty"`
	UID     string    `json:"uid,omitempty"`
	OrderID string    `json:"orderId,omitempty"`
	Error   string    `json:"error,omitempty"`
	Orders  int       `json:"orders,omitempty"` // run.finished only
	At      time.Time `json:"at"`
}

// Reporter receives progress events.
type Reporter interface {
	Report(e Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(e Event)

func (f ReporterFunc) Report(e Event) { f(e) }

// MultiReporter fans events out to every reporter.
func MultiReporter(reporters ...Reporter) Reporter {
	return ReporterFunc(func(e Event) {
		for _, r := range reporters {
			if r != nil {
				r.Report(e)
			}
		}
	})
}

// LogReporter writes events as structured log entries.
func LogReporter(logger *logrus.Logger) Reporter {
	return ReporterFunc(func(e Event) {
		entry := logger.WithFields(logrus.Fields{
			"run_id": e.RunID,
			"event":  string(e.Type),
		})
		if e.Email != "" {
			entry = entry.WithField("email", e.Email)
		}
		if e.UID != "" {
			entry = entry.WithField("uid", e.UID)
		}
		if e.OrderID != "" {
			entry = entry.WithField("order_id", e.OrderID)
		}

		switch e.Type {
		case EventCustomerSkipped, EventCustomerFailed:
			entry.WithField("error", e.Error).Error("Customer not fully seeded")
		case EventOrderCreated:
			entry.Debug("Order created")
		case EventRunFinished:
			entry.WithField("orders", e.Orders).Info("Seeding finished")
		default:
			entry.Info("Seeding progress")
		}
	})
}
