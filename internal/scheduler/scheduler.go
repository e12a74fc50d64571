// Package scheduler runs the periodic reminder job and fans the
// resulting notification intents out to the gateway.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"duty-rotation-service/internal/entities"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const tickTimeout = 30 * time.Second

// ReminderSource produces notification intents for the current duty.
type ReminderSource interface {
	DueReminders(ctx context.Context) ([]entities.Reminder, error)
}

// Notifier delivers a single reminder. Implemented by the chat gateway.
type Notifier interface {
	Notify(ctx context.Context, memberID int64, message string) error
}

// Scheduler triggers reminder fan-out on a cron cadence.
type Scheduler struct {
	log      *zap.SugaredLogger
	cron     *cron.Cron
	source   ReminderSource
	notifier Notifier
	spec     string
}

// New creates a scheduler for the given cron spec.
func New(log *zap.SugaredLogger, spec string, source ReminderSource, notifier Notifier) *Scheduler {
	return &Scheduler{
		log:      log.Named("scheduler"),
		cron:     cron.New(),
		source:   source,
		notifier: notifier,
		spec:     spec,
	}
}

// Start registers the job and begins ticking.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
		return fmt.Errorf("register reminder job %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Infow("reminder job scheduled", "spec", s.spec)
	return nil
}

// Stop halts the cron loop and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// tick delivers each reminder independently: a failed delivery is
// logged and skipped, never retried within the same tick.
func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	reminders, err := s.source.DueReminders(ctx)
	if err != nil {
		s.log.Errorw("failed to collect reminders", "error", err)
		return
	}
	delivered := 0
	for _, r := range reminders {
		if err := s.notifier.Notify(ctx, r.MemberID, r.Message); err != nil {
			s.log.Errorw("failed to deliver reminder", "member_id", r.MemberID, "error", err)
			continue
		}
		delivered++
	}
	if len(reminders) > 0 {
		s.log.Infow("reminders delivered", "total", len(reminders), "delivered", delivered)
	}
}

// LogNotifier is a stand-in gateway that only logs the intent. Used
// until a real chat gateway is wired in.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier creates a logging notifier.
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log.Named("notifier")}
}

// Notify logs the reminder instead of delivering it.
func (n *LogNotifier) Notify(_ context.Context, memberID int64, message string) error {
	n.log.Infow("reminder", "member_id", memberID, "message", message)
	return nil
}
