package cron

import (
	"context"
	"fmt"
	"time"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/logger"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// ReminderDispatcher periodically publishes events for reminders that are due
type ReminderDispatcher struct {
	reminderService service.ReminderService
	cron            *cron.Cron
	spec            string
	timeout         time.Duration
	now             func() time.Time
	log             *log.Logger
}

// NewReminderDispatcher creates a dispatcher running on a cron spec ("* * * * *" fires every minute).
// The spec is read in location, the zone reminders are matched in.
func NewReminderDispatcher(reminderService service.ReminderService, spec string, location *time.Location, timeout time.Duration) *ReminderDispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if location == nil {
		location = time.UTC
	}
	return &ReminderDispatcher{
		reminderService: reminderService,
		cron:            cron.New(cron.WithLocation(location)),
		spec:            spec,
		timeout:         timeout,
		now:             time.Now,
		log:             logger.With("component", "reminder-dispatcher"),
	}
}

// Start starts the dispatcher
func (d *ReminderDispatcher) Start() error {
	d.log.Info("starting reminder dispatcher", "spec", d.spec)

	_, err := d.cron.AddFunc(d.spec, func() {
		d.dispatch()
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	d.cron.Start()
	return nil
}

// Stop stops the dispatcher and waits for a running dispatch to finish
func (d *ReminderDispatcher) Stop() {
	d.log.Info("stopping reminder dispatcher")
	ctx := d.cron.Stop()
	<-ctx.Done()
}

func (d *ReminderDispatcher) dispatch() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	published, err := d.reminderService.DispatchDue(ctx, d.now())
	if err != nil {
		d.log.Error("reminder dispatch finished with errors", "published", published, "err", err)
		return
	}
	if published > 0 {
		d.log.Info("reminders dispatched", "published", published)
	}
}
