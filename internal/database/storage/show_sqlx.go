package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ShowListingStorage читает денормализованный список концертов через sqlx
type ShowListingStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewShowListingStorage(db *sqlx.DB, logger *slog.Logger) *ShowListingStorage {
	return &ShowListingStorage{db: db, logger: logger}
}

const listShowsQuery = `
	SELECT s.id,
	       s.start_time,
	       s.venue_id,
	       v.name AS venue_name,
	       s.artist_id,
	       a.name AS artist_name,
	       COALESCE(a.image_link, '') AS artist_image_link
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
	ORDER BY s.start_time ASC, s.id ASC
`

// ListShows получает все концерты с именами площадки и исполнителя
func (s *ShowListingStorage) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	start := time.Now()

	shows := []domain.ShowListing{}
	if err := s.db.SelectContext(ctx, &shows, listShowsQuery); err != nil {
		s.logger.Error("failed to list shows", "error", err)
		return nil, fmt.Errorf("ошибка при получении концертов: %w", err)
	}

	s.logger.Debug("listed shows",
		"count", len(shows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return shows, nil
}
