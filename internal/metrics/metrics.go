package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitcircle_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	FacilityCheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_facility_check_ins_total",
			Help: "People checked into facilities",
		},
		[]string{"kind"},
	)

	FacilityCheckOutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_facility_check_outs_total",
			Help: "People checked out of facilities",
		},
		[]string{"kind"},
	)

	FacilityRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_facility_rejections_total",
			Help: "Check-ins rejected by a facility",
		},
		[]string{"kind", "reason"},
	)

	SubscriptionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_subscriptions_created_total",
			Help: "Total number of subscriptions created",
		},
		[]string{"tier"},
	)

	SubscriptionCancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_subscription_cancellations_total",
			Help: "Total number of subscription cancellations",
		},
		[]string{"tier"},
	)

	SubscriptionRenewalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_subscription_renewals_total",
			Help: "Total number of subscription renewals",
		},
		[]string{"tier"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_payments_total",
			Help: "Payment status transitions",
		},
		[]string{"status", "method"},
	)

	RefundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_refunds_total",
			Help: "Total number of refunds processed",
		},
		[]string{"type"},
	)

	RefundedAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_refunded_amount",
			Help: "Refunded money in major currency units",
		},
		[]string{"currency"},
	)

	RatingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcircle_ratings_total",
			Help: "Total number of trainer ratings submitted",
		},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	PlansCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_plans_created_total",
			Help: "Workout and diet plans created",
		},
		[]string{"type", "goal"},
	)

	PlansCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_plans_completed_total",
			Help: "Workout and diet plans marked completed",
		},
		[]string{"type"},
	)

	WorkoutsCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcircle_workouts_completed_total",
			Help: "Scheduled workouts marked completed",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcircle_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitcircle_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCheckIn(kind string, count int) {
	FacilityCheckInsTotal.WithLabelValues(kind).Add(float64(count))
}

func RecordCheckOut(kind string, count int) {
	FacilityCheckOutsTotal.WithLabelValues(kind).Add(float64(count))
}

func RecordFacilityRejection(kind, reason string) {
	FacilityRejectionsTotal.WithLabelValues(kind, reason).Inc()
}

func RecordSubscription(tier string) {
	SubscriptionsCreatedTotal.WithLabelValues(tier).Inc()
}

func RecordSubscriptionCancellation(tier string) {
	SubscriptionCancellationsTotal.WithLabelValues(tier).Inc()
}

func RecordSubscriptionRenewal(tier string) {
	SubscriptionRenewalsTotal.WithLabelValues(tier).Inc()
}

func RecordPayment(status, method string) {
	PaymentsTotal.WithLabelValues(status, method).Inc()
}

// RecordRefund counts a refund of the given type ("full" or "partial") and
// adds its amount to the per-currency total.
func RecordRefund(refundType, currency string, amount float64) {
	RefundsTotal.WithLabelValues(refundType).Inc()
	RefundedAmount.WithLabelValues(currency).Add(amount)
}

func RecordRating() {
	RatingsTotal.Inc()
}

func RecordLogin(result string) {
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

// RecordPlan counts a created plan; planType is "workout" or "diet".
func RecordPlan(planType, goal string) {
	PlansCreatedTotal.WithLabelValues(planType, goal).Inc()
}

func RecordPlanCompleted(planType string) {
	PlansCompletedTotal.WithLabelValues(planType).Inc()
}

func RecordWorkoutCompleted() {
	WorkoutsCompletedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
