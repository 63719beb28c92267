package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
)

// AlertPublisher forwards raised alerts to the notification pipeline.
type AlertPublisher interface {
	PublishAlertEvent(ctx context.Context, alert entity.Alert) error
}

// AlertMonitor periodically re-evaluates the dashboard alert rules and
// publishes warning and critical alerts when they first appear. Evaluation
// itself is stateless; the monitor only tracks which kinds it has already
// published so an unchanged alert is not re-announced every tick.
type AlertMonitor struct {
	analytics service.AnalyticsService
	publisher AlertPublisher
	cron      *cron.Cron
	interval  time.Duration

	published map[entity.AlertKind]bool
}

// NewAlertMonitor creates a new alert monitor. publisher may be nil, in
// which case raised alerts are only logged.
func NewAlertMonitor(analytics service.AnalyticsService, publisher AlertPublisher, checkInterval time.Duration) *AlertMonitor {
	return &AlertMonitor{
		analytics: analytics,
		publisher: publisher,
		cron:      cron.New(),
		interval:  checkInterval,
		published: make(map[entity.AlertKind]bool),
	}
}

// Start starts the alert monitor
func (m *AlertMonitor) Start() error {
	cronExpr := fmt.Sprintf("@every %s", m.interval.String())

	log.Printf("Starting alert monitor with interval: %s", m.interval)

	_, err := m.cron.AddFunc(cronExpr, func() {
		m.checkAlerts()
	})

	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	m.cron.Start()
	log.Println("Alert monitor started successfully")

	return nil
}

// Stop stops the alert monitor
func (m *AlertMonitor) Stop() {
	log.Println("Stopping alert monitor...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Alert monitor stopped")
}

func (m *AlertMonitor) checkAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary := m.analytics.Dashboard(time.Now().UTC())

	current := make(map[entity.AlertKind]bool, len(summary.Alerts))
	for _, alert := range summary.Alerts {
		current[alert.Kind] = true

		if alert.Severity != entity.SeverityWarning && alert.Severity != entity.SeverityCritical {
			continue
		}
		if m.published[alert.Kind] {
			continue
		}

		log.Printf("Alert raised: %s (%s): %s", alert.Kind, alert.Severity, alert.Message)

		if m.publisher != nil {
			if err := m.publisher.PublishAlertEvent(ctx, alert); err != nil {
				log.Printf("Failed to publish alert event: %v", err)
				// retry on the next tick
				continue
			}
		}

		m.published[alert.Kind] = true
	}

	// Cleared alerts become eligible for publishing again.
	for kind := range m.published {
		if !current[kind] {
			delete(m.published, kind)
		}
	}
}
