package entities

import "time"

type StatusChangedEntityType string

const (
	EntityShipment           StatusChangedEntityType = "shipment"
	EntityRoute              StatusChangedEntityType = "route"
	EntityCustomsDeclaration StatusChangedEntityType = "customs_declaration"
)

func (t StatusChangedEntityType) String() string {
	return string(t)
}

// StatusChangedEvent публикуется после успешного перехода статуса.
// Доставка best-effort: сбой публикации никогда не откатывает сам переход.
type StatusChangedEvent struct {
	EntityType StatusChangedEntityType
	EntityID   int64
	OldStatus  string
	NewStatus  string
	Actor      string
	OccurredAt time.Time
}
