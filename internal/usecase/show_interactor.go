package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

type showUseCase struct {
	shows     ports.ShowStorage
	listing   ports.ShowListingStorage
	publisher ports.BookingEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewShowUseCase создает новый экземпляр ShowUseCase
func NewShowUseCase(
	shows ports.ShowStorage,
	listing ports.ShowListingStorage,
	publisher ports.BookingEventPublisher,
	logger *slog.Logger,
	opts ...Option,
) ShowUseCase {
	o := buildOptions(opts)
	return &showUseCase{
		shows:     shows,
		listing:   listing,
		publisher: publisher,
		logger:    logger,
		now:       o.now,
	}
}

func (uc *showUseCase) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	shows, err := uc.listing.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения списка концертов: %w", err)
	}
	return shows, nil
}

// CreateShow сохраняет концерт; пересечения по времени не проверяются
func (uc *showUseCase) CreateShow(ctx context.Context, in domain.ShowInput) (*domain.Show, error) {
	if in.StartTime.IsZero() {
		return nil, fmt.Errorf("usecase: не указано время начала концерта")
	}

	show := &domain.Show{ArtistID: in.ArtistID, VenueID: in.VenueID, StartTime: in.StartTime}
	if err := uc.shows.CreateShow(ctx, show); err != nil {
		return nil, fmt.Errorf("usecase: ошибка создания концерта (artist %d, venue %d): %w", in.ArtistID, in.VenueID, err)
	}

	uc.logger.Info("show created", "show_id", show.ID, "artist_id", show.ArtistID, "venue_id", show.VenueID)

	event := payloads.NewBookingEvent(payloads.EventShowCreated, show.ID, "", uc.now())
	event.ArtistID = show.ArtistID
	event.VenueID = show.VenueID
	event.StartTime = &show.StartTime
	if err := uc.publisher.PublishBookingEvent(ctx, event); err != nil {
		uc.logger.Warn("failed to publish booking event", "type", event.Type, "show_id", show.ID, "error", err)
	}
	return show, nil
}
