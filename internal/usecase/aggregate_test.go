package usecase

import (
	"testing"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

func showAt(id int, offset time.Duration) domain.Show {
	return domain.Show{ID: id, ArtistID: 1, VenueID: 1, StartTime: refNow.Add(offset)}
}

func TestCountUpcomingIsStrict(t *testing.T) {
	shows := []domain.Show{
		showAt(1, -time.Hour),
		showAt(2, 0),
		showAt(3, time.Second),
		showAt(4, 48*time.Hour),
	}
	assert.Equal(t, 2, CountUpcoming(shows, refNow))
	assert.Equal(t, 0, CountUpcoming(nil, refNow))
}

func TestGroupVenuesByAreaSingleBucket(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, Name: "A", City: "Austin", State: "TX"},
		{ID: 2, Name: "B", City: "Austin", State: "TX"},
	}

	areas := GroupVenuesByArea(venues, refNow)

	require.Len(t, areas, 1)
	assert.Equal(t, "Austin", areas[0].City)
	assert.Equal(t, "TX", areas[0].State)
	assert.Equal(t, []domain.EntitySummary{
		{ID: 1, Name: "A", NumUpcomingShows: 0},
		{ID: 2, Name: "B", NumUpcomingShows: 0},
	}, areas[0].Venues)
}

func TestGroupVenuesByAreaPartitionsInFirstSeenOrder(t *testing.T) {
	venues := []domain.Venue{
		{ID: 3, Name: "Blue Note", City: "New York", State: "NY"},
		{ID: 1, Name: "Dueling Pianos", City: "San Francisco", State: "CA", Shows: []domain.Show{showAt(10, time.Hour), showAt(11, -time.Hour)}},
		{ID: 2, Name: "Park Square", City: "San Francisco", State: "CA"},
		{ID: 4, Name: "Portland Hall", City: "Portland", State: "ME"},
		{ID: 5, Name: "Portland Club", City: "Portland", State: "OR"},
	}

	areas := GroupVenuesByArea(venues, refNow)

	require.Len(t, areas, 4)
	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "San Francisco", areas[1].City)
	assert.Equal(t, "ME", areas[2].State)
	assert.Equal(t, "OR", areas[3].State)
	assert.Equal(t, 1, areas[1].Venues[0].NumUpcomingShows)

	seen := map[int]int{}
	for _, a := range areas {
		for _, v := range a.Venues {
			seen[v.ID]++
		}
	}
	assert.Len(t, seen, len(venues))
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %d listed more than once", id)
	}
}

func TestSplitShowsBoundary(t *testing.T) {
	shows := []domain.Show{
		showAt(3, 2*time.Hour),
		showAt(1, -2*time.Hour),
		showAt(2, 0),
		showAt(4, -time.Minute),
	}

	past, upcoming := SplitShows(shows, refNow, artistCard)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 1)
	assert.Equal(t, 1, past[0].ShowID)
	assert.Equal(t, 4, past[1].ShowID)
	assert.Equal(t, 3, upcoming[0].ShowID)
	assert.LessOrEqual(t, len(past)+len(upcoming), len(shows))
}

func TestSplitShowsEmptyBucketsAreNotNil(t *testing.T) {
	past, upcoming := SplitShows(nil, refNow, venueCard)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestShowCardsCarryCounterpart(t *testing.T) {
	s := showAt(9, time.Hour)
	s.ArtistID = 7
	s.VenueID = 8
	s.Artist = &domain.Artist{ID: 7, Name: "Guns N Petals", ImageLink: "http://img/a"}
	s.Venue = &domain.Venue{ID: 8, Name: "The Musical Hop", ImageLink: "http://img/v"}

	a := artistCard(s)
	assert.Equal(t, 7, a.CounterpartID)
	assert.Equal(t, "Guns N Petals", a.CounterpartName)
	assert.Equal(t, "http://img/a", a.CounterpartImage)

	v := venueCard(s)
	assert.Equal(t, 8, v.CounterpartID)
	assert.Equal(t, "The Musical Hop", v.CounterpartName)
}

func TestNormalizeGenreNames(t *testing.T) {
	assert.Equal(t, []string{"Rock", "Jazz"}, NormalizeGenreNames([]string{" Rock", "Jazz", "", "Rock "}))
	assert.Empty(t, NormalizeGenreNames(nil))
}
