package domain

import "sort"

// Genre представляет музыкальный жанр, общий для площадок и исполнителей,
// соответствует таблице genres в бд
type Genre struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Genre string `gorm:"column:genre;not null;uniqueIndex" json:"genre"`
}

func (Genre) TableName() string {
	return "genres"
}

func genreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Genre)
	}
	sort.Strings(names)
	return names
}
