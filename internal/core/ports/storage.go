package ports

import (
	"context"
	"io"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// VenueStorage определяет методы для взаимодействия с хранилищем площадок.
// Списки упорядочены по (name, id); отсутствие записи — domain.ErrNotFound.
type VenueStorage interface {
	// ListVenuesWithShows возвращает все площадки вместе с их концертами
	ListVenuesWithShows(ctx context.Context) ([]domain.Venue, error)
	// SearchVenuesByName ищет площадки по подстроке без учёта регистра
	SearchVenuesByName(ctx context.Context, term string) ([]domain.Venue, error)
	// GetVenueByID возвращает площадку с жанрами (для формы редактирования)
	GetVenueByID(ctx context.Context, id int) (*domain.Venue, error)
	// GetVenueDetail возвращает площадку с жанрами и концертами (с исполнителями)
	GetVenueDetail(ctx context.Context, id int) (*domain.Venue, error)
	CreateVenue(ctx context.Context, venue *domain.Venue) error
	// UpdateVenue перезаписывает все поля и заменяет набор жанров
	UpdateVenue(ctx context.Context, venue *domain.Venue) error
	// DeleteVenue удаляет площадку вместе с её концертами и возвращает удалённую запись
	DeleteVenue(ctx context.Context, id int) (*domain.Venue, error)
}

// ArtistStorage определяет методы для взаимодействия с хранилищем исполнителей
type ArtistStorage interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	SearchArtistsByName(ctx context.Context, term string) ([]domain.Artist, error)
	GetArtistByID(ctx context.Context, id int) (*domain.Artist, error)
	GetArtistDetail(ctx context.Context, id int) (*domain.Artist, error)
	CreateArtist(ctx context.Context, artist *domain.Artist) error
	UpdateArtist(ctx context.Context, artist *domain.Artist) error
	DeleteArtist(ctx context.Context, id int) (*domain.Artist, error)
}

// GenreStorage определяет методы для чтения справочника жанров
type GenreStorage interface {
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	// FindGenresByNames возвращает жанры с точным совпадением названия
	FindGenresByNames(ctx context.Context, names []string) ([]domain.Genre, error)
}

// ShowStorage определяет методы для работы с концертами
type ShowStorage interface {
	// CreateShow проверяет ссылки на исполнителя и площадку и сохраняет концерт
	// в одной транзакции; при отсутствии ссылки — domain.ErrReferenceNotFound
	CreateShow(ctx context.Context, show *domain.Show) error
}

// ShowListingStorage — денормализованное чтение концертов (join с площадкой и исполнителем)
type ShowListingStorage interface {
	ListShows(ctx context.Context) ([]domain.ShowListing, error)
}

// FileStorage определяет интерфейс для работы с файловым хранилищем (MinIO / S3)
type FileStorage interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}
