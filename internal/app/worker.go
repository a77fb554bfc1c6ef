package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

// runWorker потребляет события бронирования до отмены ctx
func runWorker(ctx context.Context, consumer ports.BookingEventConsumer, logger *slog.Logger) error {
	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	if err := consumer.StartConsumingBookingEvents(workerCtx, bookingEventHandler(logger)); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}
	logger.Info("worker started, waiting for booking events")

	<-ctx.Done()

	logger.Info("shutdown signal received, stopping worker")
	return nil
}

// bookingEventHandler пишет событие в журнал бронирований
func bookingEventHandler(logger *slog.Logger) func(context.Context, payloads.BookingEvent) error {
	log := logger.With("component", "booking_worker")
	return func(ctx context.Context, event payloads.BookingEvent) error {
		attrs := []any{
			"event_id", event.EventID,
			"type", event.Type,
			"entity_id", event.EntityID,
			"occurred_at", event.OccurredAt,
		}
		if event.Name != "" {
			attrs = append(attrs, "name", event.Name)
		}
		if event.Type == payloads.EventShowCreated {
			attrs = append(attrs, "artist_id", event.ArtistID, "venue_id", event.VenueID)
			if event.StartTime != nil {
				attrs = append(attrs, "start_time", *event.StartTime)
			}
		}
		log.InfoContext(ctx, "booking event", attrs...)
		return nil
	}
}
