package payloads

import (
	"time"

	"github.com/google/uuid"
)

// Типы событий бронирования
const (
	EventVenueCreated  = "venue.created"
	EventVenueUpdated  = "venue.updated"
	EventVenueDeleted  = "venue.deleted"
	EventArtistCreated = "artist.created"
	EventArtistUpdated = "artist.updated"
	EventArtistDeleted = "artist.deleted"
	EventShowCreated   = "show.created"
)

// BookingEvent публикуется в RabbitMQ после успешного коммита изменения.
type BookingEvent struct {
	EventID    uuid.UUID  `json:"event_id"`
	Type       string     `json:"type"`
	EntityID   int        `json:"entity_id"`
	Name       string     `json:"name,omitempty"`
	ArtistID   int        `json:"artist_id,omitempty"`
	VenueID    int        `json:"venue_id,omitempty"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewBookingEvent создаёт событие с новым идентификатором
func NewBookingEvent(eventType string, entityID int, name string, at time.Time) BookingEvent {
	return BookingEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}
