package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/samber/lo"
)

type genreUseCase struct {
	genres ports.GenreStorage
	logger *slog.Logger
}

// NewGenreUseCase создает новый экземпляр GenreUseCase
func NewGenreUseCase(genres ports.GenreStorage, logger *slog.Logger) GenreUseCase {
	return &genreUseCase{genres: genres, logger: logger}
}

func (uc *genreUseCase) ListGenreNames(ctx context.Context) ([]string, error) {
	genres, err := uc.genres.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения жанров: %w", err)
	}
	return lo.Map(genres, func(g domain.Genre, _ int) string { return g.Genre }), nil
}

// resolveGenres сопоставляет названия жанров строкам справочника по точному совпадению.
// Неизвестные названия отклоняют операцию целиком.
func resolveGenres(ctx context.Context, storage ports.GenreStorage, names []string) ([]domain.Genre, error) {
	names = NormalizeGenreNames(names)
	if len(names) == 0 {
		return []domain.Genre{}, nil
	}

	genres, err := storage.FindGenresByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка поиска жанров: %w", err)
	}

	found := lo.Map(genres, func(g domain.Genre, _ int) string { return g.Genre })
	if missing, _ := lo.Difference(names, found); len(missing) > 0 {
		return nil, &domain.UnknownGenresError{Names: missing}
	}
	return genres, nil
}
