package ports

import (
	"context"

	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

// BookingEventPublisher публикует события об изменениях площадок, исполнителей и концертов
type BookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, event payloads.BookingEvent) error
}

// BookingEventConsumer определяет методы для потребления событий бронирования,
// используется воркером
type BookingEventConsumer interface {
	// StartConsumingBookingEvents начинает прослушивание очереди;
	// handler вызывается для каждого полученного события
	StartConsumingBookingEvents(ctx context.Context, handler func(context.Context, payloads.BookingEvent) error) error
}
