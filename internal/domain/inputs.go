package domain

import "time"

// VenueInput — поля формы создания/редактирования площадки
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
}

// Apply переносит поля формы в сущность (жанры разрешаются отдельно).
func (in VenueInput) Apply(v *Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.ImageLink = in.ImageLink
	v.FacebookLink = in.FacebookLink
	v.WebsiteLink = in.WebsiteLink
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// ArtistInput — поля формы создания/редактирования исполнителя
type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string
}

// Apply переносит поля формы в сущность (жанры разрешаются отдельно).
func (in ArtistInput) Apply(a *Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.ImageLink = in.ImageLink
	a.FacebookLink = in.FacebookLink
	a.WebsiteLink = in.WebsiteLink
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ShowInput — поля формы создания концерта
type ShowInput struct {
	ArtistID  int
	VenueID   int
	StartTime time.Time
}
