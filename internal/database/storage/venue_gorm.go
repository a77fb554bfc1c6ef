package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VenueStorage реализует интерфейс ports.VenueStorage с использованием GORM
type VenueStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewVenueStorage создает новый экземпляр VenueStorage
func NewVenueStorage(db *gorm.DB, logger *slog.Logger) *VenueStorage {
	return &VenueStorage{db: db, logger: logger}
}

// ListVenuesWithShows получает все площадки с концертами, по имени и id
func (s *VenueStorage) ListVenuesWithShows(ctx context.Context) ([]domain.Venue, error) {
	start := time.Now()

	var venues []domain.Venue
	err := s.db.WithContext(ctx).
		Preload("Shows").
		Order("name ASC").Order("id ASC").
		Find(&venues).Error
	if err != nil {
		s.logger.Error("failed to list venues", "error", err)
		return nil, fmt.Errorf("ошибка при получении площадок: %w", err)
	}

	s.logger.Debug("listed venues", "count", len(venues), "duration_ms", time.Since(start).Milliseconds())
	return venues, nil
}

// SearchVenuesByName ищет площадки по подстроке имени без учёта регистра
func (s *VenueStorage) SearchVenuesByName(ctx context.Context, term string) ([]domain.Venue, error) {
	start := time.Now()

	var venues []domain.Venue
	err := s.db.WithContext(ctx).
		Preload("Shows").
		Where("name ILIKE ?", containsPattern(term)).
		Order("name ASC").Order("id ASC").
		Find(&venues).Error
	if err != nil {
		s.logger.Error("failed to search venues", "term", term, "error", err)
		return nil, fmt.Errorf("ошибка при поиске площадок: %w", err)
	}

	s.logger.Debug("venues search completed",
		"term", term,
		"found", len(venues),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return venues, nil
}

// GetVenueByID получает площадку с жанрами
func (s *VenueStorage) GetVenueByID(ctx context.Context, id int) (*domain.Venue, error) {
	var venue domain.Venue
	err := s.db.WithContext(ctx).Preload("Genres").First(&venue, id).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении площадки %d: %w", id, notFound(err))
	}
	return &venue, nil
}

// GetVenueDetail получает площадку с жанрами и концертами вместе с исполнителями
func (s *VenueStorage) GetVenueDetail(ctx context.Context, id int) (*domain.Venue, error) {
	var venue domain.Venue
	err := s.db.WithContext(ctx).
		Preload("Genres").
		Preload("Shows", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC").Order("id ASC")
		}).
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении площадки %d: %w", id, notFound(err))
	}
	return &venue, nil
}

// CreateVenue сохраняет площадку и связи с жанрами в одной транзакции.
// Сами жанры не изменяются.
func (s *VenueStorage) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Genres.*", "Shows").Create(venue).Error
	})
	if err != nil {
		s.logger.Error("failed to create venue", "name", venue.Name, "error", err)
		return fmt.Errorf("ошибка при сохранении площадки: %w", err)
	}

	s.logger.Info("venue saved", "venue_id", venue.ID, "genres", len(venue.Genres))
	return nil
}

// UpdateVenue перезаписывает все поля площадки и заменяет набор жанров
func (s *VenueStorage) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(venue).
			Select("*").
			Omit("ID", "CreatedAt", "Genres", "Shows").
			Updates(venue)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return replaceGenres(tx, "venue_genres", "venue_id", venue.ID, venue.Genres)
	})
	if err != nil {
		s.logger.Error("failed to update venue", "venue_id", venue.ID, "error", err)
		return fmt.Errorf("ошибка при обновлении площадки %d: %w", venue.ID, err)
	}
	return nil
}

// DeleteVenue удаляет площадку, её концерты и связи с жанрами в одной транзакции
func (s *VenueStorage) DeleteVenue(ctx context.Context, id int) (*domain.Venue, error) {
	var venue domain.Venue
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("venue_id = ?", id).Delete(&domain.Show{}).Error; err != nil {
			return fmt.Errorf("удаление концертов: %w", err)
		}
		if err := replaceGenres(tx, "venue_genres", "venue_id", id, nil); err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при удалении площадки %d: %w", id, err)
	}

	s.logger.Info("venue removed", "venue_id", id)
	return &venue, nil
}

// replaceGenres заменяет (а не дополняет) набор жанров владельца в таблице связей.
// Строка владельца при этом не обновляется.
func replaceGenres(tx *gorm.DB, table, ownerColumn string, ownerID int, genres []domain.Genre) error {
	ids := lo.Uniq(lo.Map(genres, func(g domain.Genre, _ int) int { return g.ID }))

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, ownerColumn)
	args := []any{ownerID}
	if len(ids) > 0 {
		query += " AND genre_id NOT IN ?"
		args = append(args, ids)
	}
	if err := tx.Exec(query, args...).Error; err != nil {
		return fmt.Errorf("удаление связей с жанрами: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	rows := lo.Map(ids, func(id int, _ int) map[string]any {
		return map[string]any{ownerColumn: ownerID, "genre_id": id}
	})
	err := tx.Table(table).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("сохранение связей с жанрами: %w", err)
	}
	return nil
}
