package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/fyyur/internal/domain"
	"gorm.io/gorm"
)

// ShowStorage реализует запись концертов с использованием GORM
type ShowStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewShowStorage(db *gorm.DB, logger *slog.Logger) *ShowStorage {
	return &ShowStorage{db: db, logger: logger}
}

// CreateShow проверяет существование исполнителя и площадки и сохраняет концерт
func (s *ShowStorage) CreateShow(ctx context.Context, show *domain.Show) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artists, venues int64
		if err := tx.Model(&domain.Artist{}).Where("id = ?", show.ArtistID).Count(&artists).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Venue{}).Where("id = ?", show.VenueID).Count(&venues).Error; err != nil {
			return err
		}
		if artists == 0 || venues == 0 {
			return domain.ErrReferenceNotFound
		}
		return tx.Omit("Artist", "Venue").Create(show).Error
	})
	if err != nil {
		s.logger.Warn("failed to create show",
			"artist_id", show.ArtistID,
			"venue_id", show.VenueID,
			"error", err,
		)
		return fmt.Errorf("ошибка при сохранении концерта: %w", err)
	}

	s.logger.Info("show saved", "show_id", show.ID, "start_time", show.StartTime)
	return nil
}
