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

// artistUseCase implements ArtistUseCase
type artistUseCase struct {
	artists   ports.ArtistStorage
	genres    ports.GenreStorage
	publisher ports.BookingEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewArtistUseCase создает новый экземпляр ArtistUseCase
func NewArtistUseCase(
	artists ports.ArtistStorage,
	genres ports.GenreStorage,
	publisher ports.BookingEventPublisher,
	logger *slog.Logger,
	opts ...Option,
) ArtistUseCase {
	o := buildOptions(opts)
	return &artistUseCase{
		artists:   artists,
		genres:    genres,
		publisher: publisher,
		logger:    logger,
		now:       o.now,
	}
}

func (uc *artistUseCase) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	artists, err := uc.artists.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения списка исполнителей: %w", err)
	}
	return artists, nil
}

func (uc *artistUseCase) SearchArtists(ctx context.Context, term string) (domain.SearchResult, error) {
	now := uc.now()

	artists, err := uc.artists.SearchArtistsByName(ctx, term)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("usecase: ошибка поиска исполнителей по %q: %w", term, err)
	}

	data := SummarizeArtists(artists, now)
	return domain.SearchResult{Count: len(data), Data: data}, nil
}

func (uc *artistUseCase) GetArtistDetail(ctx context.Context, id int) (*domain.ArtistDetail, error) {
	now := uc.now()

	artist, err := uc.artists.GetArtistDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения исполнителя %d: %w", id, err)
	}

	past, upcoming := SplitShows(artist.Shows, now, venueCard)
	return &domain.ArtistDetail{
		Artist:             *artist,
		GenreLabels:        artist.GenreNames(),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (uc *artistUseCase) GetArtist(ctx context.Context, id int) (*domain.Artist, error) {
	artist, err := uc.artists.GetArtistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения исполнителя %d: %w", id, err)
	}
	return artist, nil
}

func (uc *artistUseCase) CreateArtist(ctx context.Context, in domain.ArtistInput) (*domain.Artist, error) {
	genres, err := resolveGenres(ctx, uc.genres, in.Genres)
	if err != nil {
		return nil, err
	}

	artist := &domain.Artist{Genres: genres}
	in.Apply(artist)

	if err := uc.artists.CreateArtist(ctx, artist); err != nil {
		return nil, fmt.Errorf("usecase: ошибка создания исполнителя %q: %w", in.Name, err)
	}

	uc.logger.Info("artist created", "artist_id", artist.ID, "name", artist.Name)
	uc.publish(ctx, payloads.EventArtistCreated, artist)
	return artist, nil
}

func (uc *artistUseCase) UpdateArtist(ctx context.Context, id int, in domain.ArtistInput) (*domain.Artist, error) {
	artist, err := uc.artists.GetArtistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения исполнителя %d: %w", id, err)
	}

	genres, err := resolveGenres(ctx, uc.genres, in.Genres)
	if err != nil {
		return nil, err
	}

	in.Apply(artist)
	artist.Genres = genres

	if err := uc.artists.UpdateArtist(ctx, artist); err != nil {
		return nil, fmt.Errorf("usecase: ошибка обновления исполнителя %d: %w", id, err)
	}

	uc.logger.Info("artist updated", "artist_id", artist.ID)
	uc.publish(ctx, payloads.EventArtistUpdated, artist)
	return artist, nil
}

func (uc *artistUseCase) DeleteArtist(ctx context.Context, id int) (*domain.Artist, error) {
	artist, err := uc.artists.DeleteArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка удаления исполнителя %d: %w", id, err)
	}

	uc.logger.Info("artist deleted", "artist_id", id, "name", artist.Name)
	uc.publish(ctx, payloads.EventArtistDeleted, artist)
	return artist, nil
}

func (uc *artistUseCase) publish(ctx context.Context, eventType string, artist *domain.Artist) {
	event := payloads.NewBookingEvent(eventType, artist.ID, artist.Name, uc.now())
	event.ArtistID = artist.ID
	if err := uc.publisher.PublishBookingEvent(ctx, event); err != nil {
		uc.logger.Warn("failed to publish booking event", "type", eventType, "artist_id", artist.ID, "error", err)
	}
}
