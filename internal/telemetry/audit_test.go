package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"liaison-portal/internal/mocks"
	"liaison-portal/internal/telemetry"
)

func TestEmitPublishesEnvelope(t *testing.T) {
	publisher := new(mocks.PublisherMock)
	emitter := telemetry.NewAuditEmitter(publisher, "audit.portal", "portal", "test")

	publisher.On("Publish", mock.Anything, "audit.portal", mock.MatchedBy(func(env telemetry.AuditEnvelope) bool {
		_, err := time.Parse(time.RFC3339Nano, env.OccurredAt)
		return err == nil &&
			env.EventType == "audit_log" &&
			env.Service == "portal" &&
			env.Environment == "test" &&
			env.RequestID == "req-1" &&
			env.Payload.Level == "INFO" &&
			env.Payload.Text == "Group deleted" &&
			env.Payload.Resource == "g-1"
	}), map[string]string{"x-request-id": "req-1"}).Return(nil).Once()

	emitter.Emit(context.Background(), telemetry.AuditEvent{
		Level:     "INFO",
		Text:      "Group deleted",
		Resource:  "g-1",
		RequestID: "req-1",
	})

	publisher.AssertExpectations(t)
}

func TestEmitSwallowsPublishErrors(t *testing.T) {
	publisher := new(mocks.PublisherMock)
	emitter := telemetry.NewAuditEmitter(publisher, "audit.portal", "portal", "test")

	publisher.On("Publish", mock.Anything, "audit.portal", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	require.NotPanics(t, func() {
		emitter.Emit(context.Background(), telemetry.AuditEvent{Level: "ERROR", Text: "boom"})
	})
	publisher.AssertExpectations(t)
}

func TestNilEmitterIsNoop(t *testing.T) {
	var emitter *telemetry.AuditEmitter
	require.NotPanics(t, func() {
		emitter.Emit(context.Background(), telemetry.AuditEvent{Text: "ignored"})
	})
}
