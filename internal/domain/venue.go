package domain

import "time"

// Venue представляет площадку, на которой проходят концерты,
// соответствует таблице venues в бд
type Venue struct {
	ID                 int       `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"size:120;not null" json:"city"`
	State              string    `gorm:"size:120;not null" json:"state"`
	Address            string    `gorm:"size:120" json:"address"`
	Phone              string    `gorm:"size:120" json:"phone"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Genres []Genre `gorm:"many2many:venue_genres;" json:"genres,omitempty"`
	Shows  []Show  `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"shows,omitempty"`
}

func (Venue) TableName() string {
	return "venues"
}

// GenreNames возвращает названия жанров площадки
func (v *Venue) GenreNames() []string {
	return genreNames(v.Genres)
}
