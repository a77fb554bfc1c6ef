package handler

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/go-playground/validator/v10"
)

var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// Форматы, в которых принимается start_time формы концерта
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// VenueForm — поля формы площадки
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Address            string   `form:"address" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	Genres             []string `form:"genres" validate:"dive,required,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// ArtistForm — поля формы исполнителя
type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" validate:"max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	Genres             []string `form:"genres" validate:"dive,required,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// ShowForm — поля формы концерта
type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" validate:"required,starttime"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей формы
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})

	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return slices.Contains(stateChoices, fl.Field().String())
	})
	_ = v.RegisterValidation("starttime", func(fl validator.FieldLevel) bool {
		_, err := parseStartTime(fl.Field().String())
		return err == nil
	})
	return v
}

// validateForm возвращает ошибки по полям формы или nil
func validateForm(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i > 0 {
			field = field[:i]
		}
		if _, seen := out[field]; !seen {
			out[field] = fieldMessage(fe)
		}
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Invalid URL."
	case "usstate":
		return "Not a valid choice."
	case "number":
		return "Must be a numeric id."
	case "starttime":
		return "Not a valid datetime value."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}

// parseStartTime разбирает время концерта; значения без зоны считаются UTC
func parseStartTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start_time %q", value)
}

func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

func trimmed(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func venueFormFromValues(values url.Values) VenueForm {
	return VenueForm{
		Name:               trimmed(values, "name"),
		City:               trimmed(values, "city"),
		State:              trimmed(values, "state"),
		Address:            trimmed(values, "address"),
		Phone:              trimmed(values, "phone"),
		ImageLink:          trimmed(values, "image_link"),
		FacebookLink:       trimmed(values, "facebook_link"),
		WebsiteLink:        trimmed(values, "website_link"),
		Genres:             values["genres"],
		SeekingTalent:      isChecked(values.Get("seeking_talent")),
		SeekingDescription: trimmed(values, "seeking_description"),
	}
}

func venueFormFromEntity(v *domain.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		Genres:             v.GenreNames(),
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func (f VenueForm) Input() domain.VenueInput {
	return domain.VenueInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		Genres:             f.Genres,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func artistFormFromValues(values url.Values) ArtistForm {
	return ArtistForm{
		Name:               trimmed(values, "name"),
		City:               trimmed(values, "city"),
		State:              trimmed(values, "state"),
		Phone:              trimmed(values, "phone"),
		ImageLink:          trimmed(values, "image_link"),
		FacebookLink:       trimmed(values, "facebook_link"),
		WebsiteLink:        trimmed(values, "website_link"),
		Genres:             values["genres"],
		SeekingVenue:       isChecked(values.Get("seeking_venue")),
		SeekingDescription: trimmed(values, "seeking_description"),
	}
}

func artistFormFromEntity(a *domain.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		Genres:             a.GenreNames(),
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func (f ArtistForm) Input() domain.ArtistInput {
	return domain.ArtistInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		Genres:             f.Genres,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func showFormFromValues(values url.Values) ShowForm {
	return ShowForm{
		ArtistID:  trimmed(values, "artist_id"),
		VenueID:   trimmed(values, "venue_id"),
		StartTime: trimmed(values, "start_time"),
	}
}

// Input вызывается только после успешной валидации формы
func (f ShowForm) Input() (domain.ShowInput, error) {
	artistID, err := strconv.Atoi(f.ArtistID)
	if err != nil {
		return domain.ShowInput{}, fmt.Errorf("artist_id: %w", err)
	}
	venueID, err := strconv.Atoi(f.VenueID)
	if err != nil {
		return domain.ShowInput{}, fmt.Errorf("venue_id: %w", err)
	}
	start, err := parseStartTime(f.StartTime)
	if err != nil {
		return domain.ShowInput{}, err
	}
	return domain.ShowInput{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}
