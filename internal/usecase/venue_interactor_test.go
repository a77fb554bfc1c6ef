package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/logger"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVenueFixture(t *testing.T) (*memStore, *recordingPublisher, VenueUseCase) {
	t.Helper()
	store := newMemStore("Rock", "Jazz", "Blues", "Folk")
	pub := &recordingPublisher{}
	uc := NewVenueUseCase(store, store, pub, logger.Discard(), WithClock(func() time.Time { return refNow }))
	return store, pub, uc
}

func TestListVenuesByAreaCountsUpcomingShows(t *testing.T) {
	store, _, uc := newVenueFixture(t)
	artist := store.addArtist(domain.Artist{Name: "Guns N Petals"})
	hop := store.addVenue(domain.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"})
	store.addVenue(domain.Venue{Name: "Park Square Live", City: "San Francisco", State: "CA"})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: hop.ID, StartTime: refNow.Add(time.Hour)})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: hop.ID, StartTime: refNow.Add(2 * time.Hour)})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: hop.ID, StartTime: refNow.Add(-time.Hour)})

	areas, err := uc.ListVenuesByArea(context.Background())
	require.NoError(t, err)

	require.Len(t, areas, 1)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, "Park Square Live", areas[0].Venues[0].Name)
	assert.Equal(t, 0, areas[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, "The Musical Hop", areas[0].Venues[1].Name)
	assert.Equal(t, 2, areas[0].Venues[1].NumUpcomingShows)
}

func TestListVenuesByAreaStorageFailure(t *testing.T) {
	store, _, uc := newVenueFixture(t)
	store.failErr = errors.New("connection refused")

	_, err := uc.ListVenuesByArea(context.Background())
	require.Error(t, err)
}

func TestSearchVenuesCaseInsensitiveSubstring(t *testing.T) {
	store, _, uc := newVenueFixture(t)
	store.addVenue(domain.Venue{Name: "Tavern", City: "Austin", State: "TX"})
	store.addVenue(domain.Venue{Name: "Venue X", City: "Austin", State: "TX"})
	store.addVenue(domain.Venue{Name: "Blue Moon", City: "Austin", State: "TX"})

	res, err := uc.SearchVenues(context.Background(), "ven")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "Tavern", res.Data[0].Name)
	assert.Equal(t, "Venue X", res.Data[1].Name)

	all, err := uc.SearchVenues(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)
}

func TestGetVenueDetailNotFound(t *testing.T) {
	_, _, uc := newVenueFixture(t)

	_, err := uc.GetVenueDetail(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetVenueDetailSplitsShows(t *testing.T) {
	store, _, uc := newVenueFixture(t)
	artist := store.addArtist(domain.Artist{Name: "Matt Quevedo", ImageLink: "http://img/matt"})
	venue := store.addVenue(domain.Venue{Name: "The Dueling Pianos Bar", City: "New York", State: "NY"})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: refNow.Add(-24 * time.Hour)})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: refNow})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: refNow.Add(24 * time.Hour)})

	detail, err := uc.GetVenueDetail(context.Background(), venue.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Equal(t, "Matt Quevedo", detail.PastShows[0].CounterpartName)
	assert.Equal(t, "http://img/matt", detail.UpcomingShows[0].CounterpartImage)
}

func TestCreateVenueRoundTripGenres(t *testing.T) {
	_, pub, uc := newVenueFixture(t)

	created, err := uc.CreateVenue(context.Background(), domain.VenueInput{
		Name:   "The Jazz Cellar",
		City:   "Austin",
		State:  "TX",
		Genres: []string{"Rock", "Jazz"},
	})
	require.NoError(t, err)

	detail, err := uc.GetVenueDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz", "Rock"}, detail.GenreLabels)
	assert.Equal(t, []string{payloads.EventVenueCreated}, pub.types())
}

func TestCreateVenueRejectsUnknownGenre(t *testing.T) {
	store, pub, uc := newVenueFixture(t)

	_, err := uc.CreateVenue(context.Background(), domain.VenueInput{
		Name:   "Nowhere",
		City:   "Austin",
		State:  "TX",
		Genres: []string{"Rock", "Polka"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownGenre)

	var unknown *domain.UnknownGenresError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"Polka"}, unknown.Names)

	venues, _ := store.ListVenuesWithShows(context.Background())
	assert.Empty(t, venues)
	assert.Empty(t, pub.types())
}

func TestCreateVenuePersistenceFailure(t *testing.T) {
	store, _, uc := newVenueFixture(t)
	store.failErr = errors.New("unique violation")

	_, err := uc.CreateVenue(context.Background(), domain.VenueInput{Name: "X", City: "Austin", State: "TX"})
	require.Error(t, err)
}

func TestUpdateVenueReplacesGenres(t *testing.T) {
	_, _, uc := newVenueFixture(t)
	ctx := context.Background()

	created, err := uc.CreateVenue(ctx, domain.VenueInput{Name: "Hop", City: "SF", State: "CA", Genres: []string{"Rock", "Jazz"}})
	require.NoError(t, err)

	_, err = uc.UpdateVenue(ctx, created.ID, domain.VenueInput{
		Name:          "The Hop",
		City:          "SF",
		State:         "CA",
		Genres:        []string{"Folk"},
		SeekingTalent: true,
	})
	require.NoError(t, err)

	got, err := uc.GetVenue(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Hop", got.Name)
	assert.True(t, got.SeekingTalent)
	assert.Equal(t, []string{"Folk"}, got.GenreNames())
}

func TestUpdateVenueNotFound(t *testing.T) {
	_, _, uc := newVenueFixture(t)

	_, err := uc.UpdateVenue(context.Background(), 77, domain.VenueInput{Name: "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteVenueCascadesShows(t *testing.T) {
	store, pub, uc := newVenueFixture(t)
	artist := store.addArtist(domain.Artist{Name: "The Wild Sax Band"})
	venue := store.addVenue(domain.Venue{Name: "Park Square", City: "SF", State: "CA"})
	other := store.addVenue(domain.Venue{Name: "Other", City: "SF", State: "CA"})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: refNow.Add(time.Hour)})
	store.addShow(domain.Show{ArtistID: artist.ID, VenueID: other.ID, StartTime: refNow.Add(time.Hour)})

	deleted, err := uc.DeleteVenue(context.Background(), venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Park Square", deleted.Name)
	assert.Equal(t, 1, store.showCount())
	assert.Equal(t, []string{payloads.EventVenueDeleted}, pub.types())

	_, err = uc.DeleteVenue(context.Background(), venue.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublishFailureDoesNotFailCreate(t *testing.T) {
	_, pub, uc := newVenueFixture(t)
	pub.err = errBrokerDown

	_, err := uc.CreateVenue(context.Background(), domain.VenueInput{Name: "Quiet", City: "A", State: "TX"})
	require.NoError(t, err)
}
