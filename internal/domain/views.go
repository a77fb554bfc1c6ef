package domain

import "time"

// EntitySummary — строка списка/поиска площадок и исполнителей
type EntitySummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area группирует площадки одного города и штата
type Area struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []EntitySummary `json:"venues"`
}

// SearchResult — результат поиска по имени
type SearchResult struct {
	Count int             `json:"count"`
	Data  []EntitySummary `json:"data"`
}

// ShowCard — концерт на странице площадки или исполнителя.
// Для площадки заполняется контрагент-исполнитель, для исполнителя — площадка.
type ShowCard struct {
	ShowID           int       `json:"show_id"`
	CounterpartID    int       `json:"counterpart_id"`
	CounterpartName  string    `json:"counterpart_name"`
	CounterpartImage string    `json:"counterpart_image_link"`
	StartTime        time.Time `json:"start_time"`
}

// VenueDetail — данные страницы площадки
type VenueDetail struct {
	Venue
	GenreLabels        []string   `json:"genre_labels"`
	PastShows          []ShowCard `json:"past_shows"`
	UpcomingShows      []ShowCard `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// ArtistDetail — данные страницы исполнителя
type ArtistDetail struct {
	Artist
	GenreLabels        []string   `json:"genre_labels"`
	PastShows          []ShowCard `json:"past_shows"`
	UpcomingShows      []ShowCard `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}
