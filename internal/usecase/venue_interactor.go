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

// venueUseCase implements VenueUseCase
type venueUseCase struct {
	venues    ports.VenueStorage
	genres    ports.GenreStorage
	publisher ports.BookingEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewVenueUseCase создает новый экземпляр VenueUseCase
func NewVenueUseCase(
	venues ports.VenueStorage,
	genres ports.GenreStorage,
	publisher ports.BookingEventPublisher,
	logger *slog.Logger,
	opts ...Option,
) VenueUseCase {
	o := buildOptions(opts)
	return &venueUseCase{
		venues:    venues,
		genres:    genres,
		publisher: publisher,
		logger:    logger,
		now:       o.now,
	}
}

func (uc *venueUseCase) ListVenuesByArea(ctx context.Context) ([]domain.Area, error) {
	now := uc.now()

	venues, err := uc.venues.ListVenuesWithShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения списка площадок: %w", err)
	}

	areas := GroupVenuesByArea(venues, now)
	uc.logger.Debug("venues grouped by area", "venues", len(venues), "areas", len(areas))
	return areas, nil
}

func (uc *venueUseCase) SearchVenues(ctx context.Context, term string) (domain.SearchResult, error) {
	now := uc.now()

	venues, err := uc.venues.SearchVenuesByName(ctx, term)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("usecase: ошибка поиска площадок по %q: %w", term, err)
	}

	data := SummarizeVenues(venues, now)
	return domain.SearchResult{Count: len(data), Data: data}, nil
}

func (uc *venueUseCase) GetVenueDetail(ctx context.Context, id int) (*domain.VenueDetail, error) {
	now := uc.now()

	venue, err := uc.venues.GetVenueDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения площадки %d: %w", id, err)
	}

	past, upcoming := SplitShows(venue.Shows, now, artistCard)
	return &domain.VenueDetail{
		Venue:              *venue,
		GenreLabels:        venue.GenreNames(),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (uc *venueUseCase) GetVenue(ctx context.Context, id int) (*domain.Venue, error) {
	venue, err := uc.venues.GetVenueByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения площадки %d: %w", id, err)
	}
	return venue, nil
}

func (uc *venueUseCase) CreateVenue(ctx context.Context, in domain.VenueInput) (*domain.Venue, error) {
	genres, err := resolveGenres(ctx, uc.genres, in.Genres)
	if err != nil {
		return nil, err
	}

	venue := &domain.Venue{Genres: genres}
	in.Apply(venue)

	if err := uc.venues.CreateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("usecase: ошибка создания площадки %q: %w", in.Name, err)
	}

	uc.logger.Info("venue created", "venue_id", venue.ID, "name", venue.Name)
	uc.publish(ctx, payloads.EventVenueCreated, venue)
	return venue, nil
}

func (uc *venueUseCase) UpdateVenue(ctx context.Context, id int, in domain.VenueInput) (*domain.Venue, error) {
	venue, err := uc.venues.GetVenueByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения площадки %d: %w", id, err)
	}

	genres, err := resolveGenres(ctx, uc.genres, in.Genres)
	if err != nil {
		return nil, err
	}

	in.Apply(venue)
	venue.Genres = genres

	if err := uc.venues.UpdateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("usecase: ошибка обновления площадки %d: %w", id, err)
	}

	uc.logger.Info("venue updated", "venue_id", venue.ID)
	uc.publish(ctx, payloads.EventVenueUpdated, venue)
	return venue, nil
}

func (uc *venueUseCase) DeleteVenue(ctx context.Context, id int) (*domain.Venue, error) {
	venue, err := uc.venues.DeleteVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка удаления площадки %d: %w", id, err)
	}

	uc.logger.Info("venue deleted", "venue_id", id, "name", venue.Name)
	uc.publish(ctx, payloads.EventVenueDeleted, venue)
	return venue, nil
}

// publish отправляет событие после коммита; ошибка публикации не откатывает операцию
func (uc *venueUseCase) publish(ctx context.Context, eventType string, venue *domain.Venue) {
	event := payloads.NewBookingEvent(eventType, venue.ID, venue.Name, uc.now())
	event.VenueID = venue.ID
	if err := uc.publisher.PublishBookingEvent(ctx, event); err != nil {
		uc.logger.Warn("failed to publish booking event", "type", eventType, "venue_id", venue.ID, "error", err)
	}
}
