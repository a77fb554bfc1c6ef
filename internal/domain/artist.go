package domain

import "time"

// Artist представляет исполнителя, которого можно забронировать на концерт,
// соответствует таблице artists в бд
type Artist struct {
	ID                 int       `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"size:120" json:"city"`
	State              string    `gorm:"size:120" json:"state"`
	Phone              string    `gorm:"size:120" json:"phone"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	SeekingVenue       bool      `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Genres []Genre `gorm:"many2many:artist_genres;" json:"genres,omitempty"`
	Shows  []Show  `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"shows,omitempty"`
}

func (Artist) TableName() string {
	return "artists"
}

// GenreNames возвращает названия жанров исполнителя
func (a *Artist) GenreNames() []string {
	return genreNames(a.Genres)
}
