package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorsUsableBeforeRegister(t *testing.T) {
	assert.NotPanics(t, func() {
		PushTokensTotal.WithLabelValues("multicast", ResultDelivered).Add(2)
		PushBatchDurationSeconds.WithLabelValues("multicast").Observe(0.1)
		HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
		TokensPrunedTotal.WithLabelValues().Inc()
	})
}

func TestMustRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		MustRegister("promopush-test")
		MustRegister("promopush-test")
	})

	assert.NotPanics(t, func() {
		PushTokensTotal.WithLabelValues("each", ResultFailed).Inc()
	})
}
