package usecase

import (
	"slices"
	"strings"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/samber/lo"
)

// CountUpcoming считает концерты, начинающиеся строго после now
func CountUpcoming(shows []domain.Show, now time.Time) int {
	return lo.CountBy(shows, func(s domain.Show) bool {
		return s.IsUpcoming(now)
	})
}

// SummarizeVenues строит строки списка с числом предстоящих концертов для одного now
func SummarizeVenues(venues []domain.Venue, now time.Time) []domain.EntitySummary {
	return lo.Map(venues, func(v domain.Venue, _ int) domain.EntitySummary {
		return domain.EntitySummary{ID: v.ID, Name: v.Name, NumUpcomingShows: CountUpcoming(v.Shows, now)}
	})
}

// SummarizeArtists — то же для исполнителей
func SummarizeArtists(artists []domain.Artist, now time.Time) []domain.EntitySummary {
	return lo.Map(artists, func(a domain.Artist, _ int) domain.EntitySummary {
		return domain.EntitySummary{ID: a.ID, Name: a.Name, NumUpcomingShows: CountUpcoming(a.Shows, now)}
	})
}

type areaKey struct {
	city  string
	state string
}

// GroupVenuesByArea раскладывает площадки по парам (city, state).
// Порядок групп — порядок первого появления пары во входном списке,
// внутри группы сохраняется входной порядок.
func GroupVenuesByArea(venues []domain.Venue, now time.Time) []domain.Area {
	areas := make([]domain.Area, 0)
	index := make(map[areaKey]int)

	for i, summary := range SummarizeVenues(venues, now) {
		key := areaKey{city: venues[i].City, state: venues[i].State}
		pos, ok := index[key]
		if !ok {
			pos = len(areas)
			index[key] = pos
			areas = append(areas, domain.Area{City: key.city, State: key.state, Venues: []domain.EntitySummary{}})
		}
		areas[pos].Venues = append(areas[pos].Venues, summary)
	}
	return areas
}

// SplitShows делит концерты на прошедшие (start < now) и предстоящие (start > now).
// Концерт ровно в now не попадает ни в один список.
func SplitShows(shows []domain.Show, now time.Time, card func(domain.Show) domain.ShowCard) (past, upcoming []domain.ShowCard) {
	sorted := slices.Clone(shows)
	slices.SortStableFunc(sorted, func(a, b domain.Show) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return a.ID - b.ID
	})

	past = []domain.ShowCard{}
	upcoming = []domain.ShowCard{}
	for _, s := range sorted {
		switch {
		case s.IsPast(now):
			past = append(past, card(s))
		case s.IsUpcoming(now):
			upcoming = append(upcoming, card(s))
		}
	}
	return past, upcoming
}

func artistCard(s domain.Show) domain.ShowCard {
	c := domain.ShowCard{ShowID: s.ID, CounterpartID: s.ArtistID, StartTime: s.StartTime}
	if s.Artist != nil {
		c.CounterpartName = s.Artist.Name
		c.CounterpartImage = s.Artist.ImageLink
	}
	return c
}

func venueCard(s domain.Show) domain.ShowCard {
	c := domain.ShowCard{ShowID: s.ID, CounterpartID: s.VenueID, StartTime: s.StartTime}
	if s.Venue != nil {
		c.CounterpartName = s.Venue.Name
		c.CounterpartImage = s.Venue.ImageLink
	}
	return c
}

// NormalizeGenreNames убирает пробелы по краям, пустые значения и дубликаты
func NormalizeGenreNames(names []string) []string {
	trimmed := lo.Map(names, func(n string, _ int) string { return strings.TrimSpace(n) })
	return lo.Uniq(lo.Compact(trimmed))
}
