package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

// memStore — in-memory реализация портов хранилища с каскадным удалением
type memStore struct {
	mu      sync.Mutex
	nextID  int
	venues  map[int]domain.Venue
	artists map[int]domain.Artist
	genres  []domain.Genre
	shows   map[int]domain.Show
	failErr error
}

func newMemStore(genres ...string) *memStore {
	s := &memStore{
		venues:  map[int]domain.Venue{},
		artists: map[int]domain.Artist{},
		shows:   map[int]domain.Show{},
	}
	for _, g := range genres {
		s.nextID++
		s.genres = append(s.genres, domain.Genre{ID: s.nextID, Genre: g})
	}
	return s
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) addVenue(v domain.Venue) domain.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.id()
	v.Shows = nil
	s.venues[v.ID] = v
	return v
}

func (s *memStore) addArtist(a domain.Artist) domain.Artist {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	a.Shows = nil
	s.artists[a.ID] = a
	return a
}

func (s *memStore) addShow(sh domain.Show) domain.Show {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh.ID = s.id()
	s.shows[sh.ID] = sh
	return sh
}

func byNameThenID[T any](items []T, name func(T) string, id func(T) int) {
	slices.SortFunc(items, func(a, b T) int {
		if c := strings.Compare(name(a), name(b)); c != 0 {
			return c
		}
		return id(a) - id(b)
	})
}

func (s *memStore) venueWithShows(v domain.Venue, withArtists bool) domain.Venue {
	v.Shows = nil
	for _, sh := range s.shows {
		if sh.VenueID != v.ID {
			continue
		}
		if withArtists {
			a := s.artists[sh.ArtistID]
			sh.Artist = &a
		}
		v.Shows = append(v.Shows, sh)
	}
	return v
}

func (s *memStore) artistWithShows(a domain.Artist, withVenues bool) domain.Artist {
	a.Shows = nil
	for _, sh := range s.shows {
		if sh.ArtistID != a.ID {
			continue
		}
		if withVenues {
			v := s.venues[sh.VenueID]
			sh.Venue = &v
		}
		a.Shows = append(a.Shows, sh)
	}
	return a
}

// VenueStorage

func (s *memStore) ListVenuesWithShows(ctx context.Context) ([]domain.Venue, error) {
	return s.SearchVenuesByName(ctx, "")
}

func (s *memStore) SearchVenuesByName(_ context.Context, term string) ([]domain.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	out := []domain.Venue{}
	for _, v := range s.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, s.venueWithShows(v, false))
		}
	}
	byNameThenID(out, func(v domain.Venue) string { return v.Name }, func(v domain.Venue) int { return v.ID })
	return out, nil
}

func (s *memStore) GetVenueByID(_ context.Context, id int) (*domain.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v.Genres = slices.Clone(v.Genres)
	return &v, nil
}

func (s *memStore) GetVenueDetail(_ context.Context, id int) (*domain.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v = s.venueWithShows(v, true)
	return &v, nil
}

func (s *memStore) CreateVenue(_ context.Context, v *domain.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	v.ID = s.id()
	s.venues[v.ID] = *v
	return nil
}

func (s *memStore) UpdateVenue(_ context.Context, v *domain.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	s.venues[v.ID] = *v
	return nil
}

func (s *memStore) DeleteVenue(_ context.Context, id int) (*domain.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for sid, sh := range s.shows {
		if sh.VenueID == id {
			delete(s.shows, sid)
		}
	}
	delete(s.venues, id)
	return &v, nil
}

// ArtistStorage

func (s *memStore) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	return s.SearchArtistsByName(ctx, "")
}

func (s *memStore) SearchArtistsByName(_ context.Context, term string) ([]domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Artist{}
	for _, a := range s.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, s.artistWithShows(a, false))
		}
	}
	byNameThenID(out, func(a domain.Artist) string { return a.Name }, func(a domain.Artist) int { return a.ID })
	return out, nil
}

func (s *memStore) GetArtistByID(_ context.Context, id int) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (s *memStore) GetArtistDetail(_ context.Context, id int) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a = s.artistWithShows(a, true)
	return &a, nil
}

func (s *memStore) CreateArtist(_ context.Context, a *domain.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	s.artists[a.ID] = *a
	return nil
}

func (s *memStore) UpdateArtist(_ context.Context, a *domain.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artists[a.ID] = *a
	return nil
}

func (s *memStore) DeleteArtist(_ context.Context, id int) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for sid, sh := range s.shows {
		if sh.ArtistID == id {
			delete(s.shows, sid)
		}
	}
	delete(s.artists, id)
	return &a, nil
}

// GenreStorage

func (s *memStore) ListGenres(context.Context) ([]domain.Genre, error) {
	return slices.Clone(s.genres), nil
}

func (s *memStore) FindGenresByNames(_ context.Context, names []string) ([]domain.Genre, error) {
	out := []domain.Genre{}
	for _, g := range s.genres {
		if slices.Contains(names, g.Genre) {
			out = append(out, g)
		}
	}
	return out, nil
}

// ShowStorage / ShowListingStorage

func (s *memStore) CreateShow(_ context.Context, sh *domain.Show) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artists[sh.ArtistID]; !ok {
		return domain.ErrReferenceNotFound
	}
	if _, ok := s.venues[sh.VenueID]; !ok {
		return domain.ErrReferenceNotFound
	}
	sh.ID = s.id()
	s.shows[sh.ID] = *sh
	return nil
}

func (s *memStore) ListShows(context.Context) ([]domain.ShowListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.ShowListing{}
	for _, sh := range s.shows {
		out = append(out, domain.ShowListing{
			ID:              sh.ID,
			StartTime:       sh.StartTime,
			VenueID:         sh.VenueID,
			VenueName:       s.venues[sh.VenueID].Name,
			ArtistID:        sh.ArtistID,
			ArtistName:      s.artists[sh.ArtistID].Name,
			ArtistImageLink: s.artists[sh.ArtistID].ImageLink,
		})
	}
	slices.SortFunc(out, func(a, b domain.ShowListing) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return a.ID - b.ID
	})
	return out, nil
}

func (s *memStore) showCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shows)
}

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []payloads.BookingEvent
	err    error
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, e payloads.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var errBrokerDown = errors.New("broker down")
