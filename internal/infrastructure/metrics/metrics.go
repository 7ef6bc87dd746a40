package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ModerationMetrics covers the warning/escalation pipeline.
type ModerationMetrics struct {
	WarningsIssuedTotal prometheus.CounterVec
	ActionsCreatedTotal prometheus.CounterVec
	EscalationsTotal    prometheus.CounterVec

	NotificationFailedTotal prometheus.CounterVec

	WarnDuration prometheus.HistogramVec
}

func NewModerationMetrics() *ModerationMetrics {
	return &ModerationMetrics{
		WarningsIssuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_warnings_issued_total",
				Help: "Total number of warnings issued",
			},
			[]string{"action_type"},
		),

		ActionsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_actions_created_total",
				Help: "Total number of enforced moderation actions",
			},
			[]string{"action_type", "source"},
		),

		EscalationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_escalations_total",
				Help: "Total number of warning-threshold escalations",
			},
			[]string{"action_type"},
		),

		NotificationFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_notification_failed_total",
				Help: "Total number of failed email/message deliveries",
			},
			[]string{"channel"},
		),

		WarnDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moderation_warn_duration_seconds",
				Help:    "Warn flow duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"action_type", "escalated"},
		),
	}
}
