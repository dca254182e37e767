package telemetry

import (
	"context"
	"log/slog"
	"time"

	"liaison-portal/internal/observability"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any, headers map[string]string) error
	Close() error
}

type AuditEmitter struct {
	publisher   Publisher
	routingKey  string
	service     string
	environment string
	now         func() time.Time
}

type AuditEnvelope struct {
	SchemaVersion int          `json:"schema_version"`
	EventType     string       `json:"event_type"`
	OccurredAt    string       `json:"occurred_at"`
	Service       string       `json:"service"`
	Environment   string       `json:"environment"`
	RequestID     string       `json:"request_id"`
	ClientIP      string       `json:"client_ip,omitempty"`
	Payload       AuditPayload `json:"payload"`
}

type AuditPayload struct {
	Level    string `json:"level"`
	Text     string `json:"text"`
	Resource string `json:"resource,omitempty"`
}

// AuditEvent describes one audited action.
type AuditEvent struct {
	Level     string
	Text      string
	Resource  string
	RequestID string
	ClientIP  string
}

func NewAuditEmitter(publisher Publisher, routingKey, service, environment string) *AuditEmitter {
	return &AuditEmitter{
		publisher:   publisher,
		routingKey:  routingKey,
		service:     service,
		environment: environment,
		now:         time.Now,
	}
}

func (e *AuditEmitter) Emit(ctx context.Context, ev AuditEvent) {
	if e == nil || e.publisher == nil {
		return
	}

	slog.Debug("audit emit", "level", ev.Level, "request_id", ev.RequestID, "resource", ev.Resource, "text", ev.Text)
	envelope := AuditEnvelope{
		SchemaVersion: 1,
		EventType:     "audit_log",
		OccurredAt:    e.now().UTC().Format(time.RFC3339Nano),
		Service:       e.service,
		Environment:   e.environment,
		RequestID:     ev.RequestID,
		ClientIP:      ev.ClientIP,
		Payload: AuditPayload{
			Level:    ev.Level,
			Text:     ev.Text,
			Resource: ev.Resource,
		},
	}

	headers := observability.BuildHeaders(ev.RequestID, observability.TraceIDFromContext(ctx))
	if err := e.publisher.Publish(ctx, e.routingKey, envelope, headers); err != nil {
		observability.IncAuditPublishError()
		slog.Warn("audit publish failed", "error", err)
	}
}
