package rabbitmq

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

// NopPublisher используется, когда RABBITMQ_URL не задан: события только пишутся в лог
type NopPublisher struct {
	logger *slog.Logger
}

func NewNopPublisher(logger *slog.Logger) *NopPublisher {
	return &NopPublisher{logger: logger}
}

func (p *NopPublisher) PublishBookingEvent(_ context.Context, event payloads.BookingEvent) error {
	p.logger.Debug("booking event dropped, broker disabled", "type", event.Type, "entity_id", event.EntityID)
	return nil
}
