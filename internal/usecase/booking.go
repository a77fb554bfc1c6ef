package usecase

import (
	"context"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// VenueUseCase определяет интерфейс бизнес-логики работы с площадками
type VenueUseCase interface {
	// ListVenuesByArea группирует площадки по (city, state) в порядке первого появления
	ListVenuesByArea(ctx context.Context) ([]domain.Area, error)
	// SearchVenues ищет площадки по подстроке имени без учёта регистра
	SearchVenues(ctx context.Context, term string) (domain.SearchResult, error)
	// GetVenueDetail возвращает площадку с прошедшими и предстоящими концертами
	GetVenueDetail(ctx context.Context, id int) (*domain.VenueDetail, error)
	// GetVenue возвращает площадку с жанрами для формы редактирования
	GetVenue(ctx context.Context, id int) (*domain.Venue, error)
	CreateVenue(ctx context.Context, in domain.VenueInput) (*domain.Venue, error)
	UpdateVenue(ctx context.Context, id int, in domain.VenueInput) (*domain.Venue, error)
	// DeleteVenue удаляет площадку каскадно вместе с её концертами
	DeleteVenue(ctx context.Context, id int) (*domain.Venue, error)
}

// ArtistUseCase определяет интерфейс бизнес-логики работы с исполнителями
type ArtistUseCase interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	SearchArtists(ctx context.Context, term string) (domain.SearchResult, error)
	GetArtistDetail(ctx context.Context, id int) (*domain.ArtistDetail, error)
	GetArtist(ctx context.Context, id int) (*domain.Artist, error)
	CreateArtist(ctx context.Context, in domain.ArtistInput) (*domain.Artist, error)
	UpdateArtist(ctx context.Context, id int, in domain.ArtistInput) (*domain.Artist, error)
	DeleteArtist(ctx context.Context, id int) (*domain.Artist, error)
}

// ShowUseCase определяет интерфейс бизнес-логики работы с концертами
type ShowUseCase interface {
	// ListShows возвращает все концерты по возрастанию start_time
	ListShows(ctx context.Context) ([]domain.ShowListing, error)
	CreateShow(ctx context.Context, in domain.ShowInput) (*domain.Show, error)
}

// GenreUseCase отдаёт справочник жанров для форм
type GenreUseCase interface {
	ListGenreNames(ctx context.Context) ([]string, error)
}

// Option настраивает interactor'ы
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
