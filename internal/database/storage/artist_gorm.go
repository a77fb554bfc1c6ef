package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"gorm.io/gorm"
)

// ArtistStorage реализует интерфейс ports.ArtistStorage с использованием GORM
type ArtistStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewArtistStorage создает новый экземпляр ArtistStorage
func NewArtistStorage(db *gorm.DB, logger *slog.Logger) *ArtistStorage {
	return &ArtistStorage{db: db, logger: logger}
}

// ListArtists получает всех исполнителей по имени и id
func (s *ArtistStorage) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	start := time.Now()

	var artists []domain.Artist
	err := s.db.WithContext(ctx).
		Preload("Genres").
		Order("name ASC").Order("id ASC").
		Find(&artists).Error
	if err != nil {
		s.logger.Error("failed to list artists", "error", err)
		return nil, fmt.Errorf("ошибка при получении исполнителей: %w", err)
	}

	s.logger.Debug("listed artists", "count", len(artists), "duration_ms", time.Since(start).Milliseconds())
	return artists, nil
}

// SearchArtistsByName ищет исполнителей по подстроке имени без учёта регистра
func (s *ArtistStorage) SearchArtistsByName(ctx context.Context, term string) ([]domain.Artist, error) {
	start := time.Now()

	var artists []domain.Artist
	err := s.db.WithContext(ctx).
		Preload("Shows").
		Where("name ILIKE ?", containsPattern(term)).
		Order("name ASC").Order("id ASC").
		Find(&artists).Error
	if err != nil {
		s.logger.Error("failed to search artists", "term", term, "error", err)
		return nil, fmt.Errorf("ошибка при поиске исполнителей: %w", err)
	}

	s.logger.Debug("artists search completed",
		"term", term,
		"found", len(artists),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return artists, nil
}

// GetArtistByID получает исполнителя с жанрами
func (s *ArtistStorage) GetArtistByID(ctx context.Context, id int) (*domain.Artist, error) {
	var artist domain.Artist
	err := s.db.WithContext(ctx).Preload("Genres").First(&artist, id).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении исполнителя %d: %w", id, notFound(err))
	}
	return &artist, nil
}

// GetArtistDetail получает исполнителя с жанрами и концертами вместе с площадками
func (s *ArtistStorage) GetArtistDetail(ctx context.Context, id int) (*domain.Artist, error) {
	var artist domain.Artist
	err := s.db.WithContext(ctx).
		Preload("Genres").
		Preload("Shows", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC").Order("id ASC")
		}).
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении исполнителя %d: %w", id, notFound(err))
	}
	return &artist, nil
}

// CreateArtist сохраняет исполнителя и связи с жанрами в одной транзакции
func (s *ArtistStorage) CreateArtist(ctx context.Context, artist *domain.Artist) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Genres.*", "Shows").Create(artist).Error
	})
	if err != nil {
		s.logger.Error("failed to create artist", "name", artist.Name, "error", err)
		return fmt.Errorf("ошибка при сохранении исполнителя: %w", err)
	}

	s.logger.Info("artist saved", "artist_id", artist.ID, "genres", len(artist.Genres))
	return nil
}

// UpdateArtist перезаписывает все поля исполнителя и заменяет набор жанров
func (s *ArtistStorage) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(artist).
			Select("*").
			Omit("ID", "CreatedAt", "Genres", "Shows").
			Updates(artist)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return replaceGenres(tx, "artist_genres", "artist_id", artist.ID, artist.Genres)
	})
	if err != nil {
		s.logger.Error("failed to update artist", "artist_id", artist.ID, "error", err)
		return fmt.Errorf("ошибка при обновлении исполнителя %d: %w", artist.ID, err)
	}
	return nil
}

// DeleteArtist удаляет исполнителя, его концерты и связи с жанрами в одной транзакции
func (s *ArtistStorage) DeleteArtist(ctx context.Context, id int) (*domain.Artist, error) {
	var artist domain.Artist
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("artist_id = ?", id).Delete(&domain.Show{}).Error; err != nil {
			return fmt.Errorf("удаление концертов: %w", err)
		}
		if err := replaceGenres(tx, "artist_genres", "artist_id", id, nil); err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при удалении исполнителя %d: %w", id, err)
	}

	s.logger.Info("artist removed", "artist_id", id)
	return &artist, nil
}
