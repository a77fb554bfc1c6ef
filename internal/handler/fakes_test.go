package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/logger"
	"github.com/GoArmGo/fyyur/internal/web"
	"github.com/stretchr/testify/require"
)

type fakeVenues struct {
	areas   []domain.Area
	search  domain.SearchResult
	detail  *domain.VenueDetail
	venue   *domain.Venue
	err     error
	term    string
	created []domain.VenueInput
	updated []domain.VenueInput
	deleted []int
}

func (f *fakeVenues) ListVenuesByArea(context.Context) ([]domain.Area, error) {
	return f.areas, f.err
}

func (f *fakeVenues) SearchVenues(_ context.Context, term string) (domain.SearchResult, error) {
	f.term = term
	return f.search, f.err
}

func (f *fakeVenues) GetVenueDetail(_ context.Context, id int) (*domain.VenueDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.detail, nil
}

func (f *fakeVenues) GetVenue(_ context.Context, id int) (*domain.Venue, error) {
	if f.venue == nil || f.venue.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.venue, nil
}

func (f *fakeVenues) CreateVenue(_ context.Context, in domain.VenueInput) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &domain.Venue{ID: 10, Name: in.Name}, nil
}

func (f *fakeVenues) UpdateVenue(_ context.Context, id int, in domain.VenueInput) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.venue == nil || f.venue.ID != id {
		return nil, domain.ErrNotFound
	}
	f.updated = append(f.updated, in)
	return &domain.Venue{ID: id, Name: in.Name}, nil
}

func (f *fakeVenues) DeleteVenue(_ context.Context, id int) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.venue == nil || f.venue.ID != id {
		return nil, domain.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return f.venue, nil
}

type fakeArtists struct {
	artists []domain.Artist
	search  domain.SearchResult
	detail  *domain.ArtistDetail
	artist  *domain.Artist
	err     error
	created []domain.ArtistInput
	updated []domain.ArtistInput
	deleted []int
}

func (f *fakeArtists) ListArtists(context.Context) ([]domain.Artist, error) {
	return f.artists, f.err
}

func (f *fakeArtists) SearchArtists(context.Context, string) (domain.SearchResult, error) {
	return f.search, f.err
}

func (f *fakeArtists) GetArtistDetail(_ context.Context, id int) (*domain.ArtistDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.detail, nil
}

func (f *fakeArtists) GetArtist(_ context.Context, id int) (*domain.Artist, error) {
	if f.artist == nil || f.artist.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.artist, nil
}

func (f *fakeArtists) CreateArtist(_ context.Context, in domain.ArtistInput) (*domain.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &domain.Artist{ID: 20, Name: in.Name}, nil
}

func (f *fakeArtists) UpdateArtist(_ context.Context, id int, in domain.ArtistInput) (*domain.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.artist == nil || f.artist.ID != id {
		return nil, domain.ErrNotFound
	}
	f.updated = append(f.updated, in)
	return &domain.Artist{ID: id, Name: in.Name}, nil
}

func (f *fakeArtists) DeleteArtist(_ context.Context, id int) (*domain.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.artist == nil || f.artist.ID != id {
		return nil, domain.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return f.artist, nil
}

type fakeShows struct {
	listings []domain.ShowListing
	err      error
	created  []domain.ShowInput
}

func (f *fakeShows) ListShows(context.Context) ([]domain.ShowListing, error) {
	return f.listings, f.err
}

func (f *fakeShows) CreateShow(_ context.Context, in domain.ShowInput) (*domain.Show, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &domain.Show{ID: 1, ArtistID: in.ArtistID, VenueID: in.VenueID, StartTime: in.StartTime}, nil
}

type fakeGenres struct{}

func (fakeGenres) ListGenreNames(context.Context) ([]string, error) {
	return []string{"Blues", "Jazz", "Rock n Roll"}, nil
}

type uploadedFile struct {
	key         string
	contentType string
	body        string
}

type fakeFiles struct {
	uploads   []uploadedFile
	deleted   []string
	deleteErr error
}

func (f *fakeFiles) UploadFile(_ context.Context, key string, r io.Reader, contentType string) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.uploads = append(f.uploads, uploadedFile{key: key, contentType: contentType, body: string(body)})
	return "http://files.local/fyyur-images/" + key, nil
}

func (f *fakeFiles) DeleteFile(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testApp struct {
	router  http.Handler
	venues  *fakeVenues
	artists *fakeArtists
	shows   *fakeShows
	files   *fakeFiles
	pinger  *fakePinger
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	app := &testApp{
		venues:  &fakeVenues{},
		artists: &fakeArtists{},
		shows:   &fakeShows{},
		files:   &fakeFiles{},
		pinger:  &fakePinger{},
	}
	log := logger.Discard()
	h := NewHandler(
		UseCases{Venues: app.venues, Artists: app.artists, Shows: app.shows, Genres: fakeGenres{}},
		app.files,
		NewFlashStore("test-secret-test-secret-test-sec", log),
		renderer,
		app.pinger,
		log,
	)
	app.router = NewRouter(h, log, 5*time.Second)
	return app
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (a *testApp) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req)
}

func (a *testApp) postMultipart(t *testing.T, path string, values url.Values, filename, contentType, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, vals := range values {
		for _, v := range vals {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	if filename != "" {
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Disposition": {`form-data; name="image_file"; filename="` + filename + `"`},
			"Content-Type":        {contentType},
		})
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return a.do(req)
}

// followFlash открывает главную страницу с cookie из ответа-редиректа
func (a *testApp) followFlash(rec *httptest.ResponseRecorder) string {
	return a.get("/", rec.Result().Cookies()...).Body.String()
}

func validVenueValues() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"genres":              {"Jazz", "Blues"},
		"facebook_link":       {"https://www.facebook.com/TheMusicalHop"},
		"website_link":        {"https://www.themusicalhop.com"},
		"seeking_talent":      {"y"},
		"seeking_description": {"We are on the lookout for a local artist to play every two weeks."},
	}
}

func validArtistValues() url.Values {
	return url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"genres":        {"Rock n Roll"},
		"facebook_link": {"https://www.facebook.com/GunsNPetals"},
	}
}
