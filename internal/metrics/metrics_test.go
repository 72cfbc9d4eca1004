package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/v1/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/api/v1/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/api/v1/auth/login", "401", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/auth/login", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/auth/login", "401")))
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordCheckInAndOut(t *testing.T) {
	FacilityCheckInsTotal.Reset()
	FacilityCheckOutsTotal.Reset()

	RecordCheckIn("Pool", 3)
	RecordCheckIn("Pool", 2)
	RecordCheckOut("Pool", 4)

	assert.Equal(t, float64(5), testutil.ToFloat64(FacilityCheckInsTotal.WithLabelValues("Pool")))
	assert.Equal(t, float64(4), testutil.ToFloat64(FacilityCheckOutsTotal.WithLabelValues("Pool")))
}

func TestRecordFacilityRejection(t *testing.T) {
	FacilityRejectionsTotal.Reset()

	RecordFacilityRejection("Sauna", "capacity_exceeded")
	RecordFacilityRejection("Sauna", "unavailable")
	RecordFacilityRejection("Sauna", "capacity_exceeded")

	assert.Equal(t, float64(2), testutil.ToFloat64(FacilityRejectionsTotal.WithLabelValues("Sauna", "capacity_exceeded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(FacilityRejectionsTotal.WithLabelValues("Sauna", "unavailable")))
}

func TestRecordSubscriptionLifecycle(t *testing.T) {
	SubscriptionsCreatedTotal.Reset()
	SubscriptionCancellationsTotal.Reset()
	SubscriptionRenewalsTotal.Reset()

	RecordSubscription("Premium")
	RecordSubscription("Premium")
	RecordSubscription("Basic")
	RecordSubscriptionCancellation("Premium")
	RecordSubscriptionRenewal("Basic")

	assert.Equal(t, float64(2), testutil.ToFloat64(SubscriptionsCreatedTotal.WithLabelValues("Premium")))
	assert.Equal(t, float64(1), testutil.ToFloat64(SubscriptionsCreatedTotal.WithLabelValues("Basic")))
	assert.Equal(t, float64(1), testutil.ToFloat64(SubscriptionCancellationsTotal.WithLabelValues("Premium")))
	assert.Equal(t, float64(1), testutil.ToFloat64(SubscriptionRenewalsTotal.WithLabelValues("Basic")))
}

func TestRecordPaymentAndRefund(t *testing.T) {
	PaymentsTotal.Reset()
	RefundsTotal.Reset()
	RefundedAmount.Reset()

	RecordPayment("completed", "credit_card")
	RecordRefund("partial", "AZN", 40)
	RecordRefund("partial", "AZN", 60)

	assert.Equal(t, float64(1), testutil.ToFloat64(PaymentsTotal.WithLabelValues("completed", "credit_card")))
	assert.Equal(t, float64(2), testutil.ToFloat64(RefundsTotal.WithLabelValues("partial")))
	assert.Equal(t, float64(100), testutil.ToFloat64(RefundedAmount.WithLabelValues("AZN")))
}

func TestRecordRating(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcircle_ratings_total_test",
			Help: "Total number of trainer ratings submitted",
		},
	)

	old := RatingsTotal
	RatingsTotal = testCounter
	defer func() { RatingsTotal = old }()

	RecordRating()
	RecordRating()

	assert.Equal(t, float64(2), testutil.ToFloat64(testCounter))
}

func TestRecordLoginAndEmail(t *testing.T) {
	LoginAttemptsTotal.Reset()
	EmailsSentTotal.Reset()

	RecordLogin("success")
	RecordLogin("locked")
	RecordEmail("payment_refunded", "success")
	RecordEmail("payment_refunded", "failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("locked")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("payment_refunded", "failed")))
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}

func TestRecordPlans(t *testing.T) {
	PlansCreatedTotal.Reset()
	PlansCompletedTotal.Reset()

	RecordPlan("workout", "muscle_gain")
	RecordPlan("diet", "fat_loss")
	RecordPlanCompleted("workout")
	before := testutil.ToFloat64(WorkoutsCompletedTotal)
	RecordWorkoutCompleted()

	assert.Equal(t, float64(1), testutil.ToFloat64(PlansCreatedTotal.WithLabelValues("workout", "muscle_gain")))
	assert.Equal(t, float64(1), testutil.ToFloat64(PlansCreatedTotal.WithLabelValues("diet", "fat_loss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(PlansCompletedTotal.WithLabelValues("workout")))
	assert.Equal(t, before+1, testutil.ToFloat64(WorkoutsCompletedTotal))
}
