package status_changed

import (
	"time"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
)

type statusChangedMessage struct {
	EntityType string    `json:"entity_type"`
	EntityID   int64     `json:"entity_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func fromDomain(event entities.StatusChangedEvent) statusChangedMessage {
	return statusChangedMessage{
		EntityType: event.EntityType.String(),
		EntityID:   event.EntityID,
		OldStatus:  event.OldStatus,
		NewStatus:  event.NewStatus,
		Actor:      event.Actor,
		OccurredAt: event.OccurredAt,
	}
}
