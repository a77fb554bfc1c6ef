package domain

import "time"

// Show связывает исполнителя и площадку в конкретное время,
// соответствует таблице shows в бд
type Show struct {
	ID        int       `gorm:"primaryKey" json:"id" db:"id"`
	StartTime time.Time `gorm:"not null" json:"start_time" db:"start_time"`
	ArtistID  int       `gorm:"not null;index" json:"artist_id" db:"artist_id"`
	VenueID   int       `gorm:"not null;index" json:"venue_id" db:"venue_id"`

	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty" db:"-"`
	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty" db:"-"`
}

func (Show) TableName() string {
	return "shows"
}

// IsUpcoming сообщает, начинается ли концерт строго после now.
func (s Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// IsPast сообщает, начался ли концерт строго до now.
func (s Show) IsPast(now time.Time) bool {
	return s.StartTime.Before(now)
}

// ShowListing — денормализованная строка для страницы со списком концертов
type ShowListing struct {
	ID              int       `json:"id" db:"id"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
	VenueID         int       `json:"venue_id" db:"venue_id"`
	VenueName       string    `json:"venue_name" db:"venue_name"`
	ArtistID        int       `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
}
