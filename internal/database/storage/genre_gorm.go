package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/fyyur/internal/domain"
	"gorm.io/gorm"
)

// GenreStorage реализует интерфейс ports.GenreStorage с использованием GORM
type GenreStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGenreStorage(db *gorm.DB, logger *slog.Logger) *GenreStorage {
	return &GenreStorage{db: db, logger: logger}
}

// ListGenres возвращает справочник жанров по алфавиту
func (s *GenreStorage) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	if err := s.db.WithContext(ctx).Order("genre ASC").Find(&genres).Error; err != nil {
		s.logger.Error("failed to list genres", "error", err)
		return nil, fmt.Errorf("ошибка при получении жанров: %w", err)
	}
	return genres, nil
}

// FindGenresByNames ищет жанры по точному совпадению названия
func (s *GenreStorage) FindGenresByNames(ctx context.Context, names []string) ([]domain.Genre, error) {
	var genres []domain.Genre
	if len(names) == 0 {
		return genres, nil
	}
	if err := s.db.WithContext(ctx).Where("genre IN ?", names).Find(&genres).Error; err != nil {
		s.logger.Error("failed to find genres", "names", names, "error", err)
		return nil, fmt.Errorf("ошибка при поиске жанров: %w", err)
	}
	return genres, nil
}
