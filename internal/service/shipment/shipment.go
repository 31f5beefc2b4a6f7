package shipment

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Shipment struct {
	repository      Repository
	notifier        Notifier
	trackingNumbers TrackingNumberFactory
	clock           Clock
	txManager       TxManager
	log             serviceLogger
}

func New(
	repository Repository,
	notifier Notifier,
	trackingNumbers TrackingNumberFactory,
	clock Clock,
	txManager TxManager,
	log serviceLogger,
) *Shipment {
	return &Shipment{
		repository:      repository,
		notifier:        notifier,
		trackingNumbers: trackingNumbers,
		clock:           clock,
		txManager:       txManager,
		log:             log,
	}
}

func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.ServiceType == nil ||
		shipmentModify.WeightKg == nil ||
		shipmentModify.OriginWarehouseID == nil ||
		shipmentModify.DestinationAddress == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidServiceType(*shipmentModify.ServiceType) {
		return nil, ErrInvalidServiceType
	}
	if *shipmentModify.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if shipmentModify.DeclaredValue != nil && *shipmentModify.DeclaredValue < 0 {
		return nil, ErrInvalidDeclaredValue
	}
	if *shipmentModify.DestinationAddress == "" {
		return nil, ErrInvalidDestination
	}

	shipmentModify.TrackingNumber = pointer.To(s.trackingNumbers.Generate())
	shipmentModify.Status = pointer.To(entities.ShipmentPending)

	created, err := s.repository.Create(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	return created, nil
}

// AddTrackingUpdate - единственная точка смены статуса отправления.
// Переход и запись истории фиксируются одной транзакцией; нотификация
// уходит после коммита и на результат операции не влияет.
func (s *Shipment) AddTrackingUpdate(ctx context.Context, trackingNumber string, update entities.TrackingUpdate) (*entities.Shipment, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}
	if !isValidStatus(update.Status) {
		return nil, ErrInvalidStatus
	}
	if !isValidActor(update.Actor) {
		return nil, ErrMissingRequiredFields
	}

	var (
		updated   *entities.Shipment
		oldStatus entities.ShipmentStatusType
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		// Ручной перевод разрешен между любыми нетерминальными статусами.
		// Из терминального статуса допустим только повторный переход в него же.
		if current.Status.IsTerminal() && update.Status != current.Status {
			return ErrShipmentTerminal
		}

		occurredAt := s.clock.Now()

		_, err = s.repository.AppendTrackingEvent(ctx, entities.TrackingEvent{
			ShipmentID: current.ID,
			Status:     update.Status,
			Location:   update.Location,
			Notes:      update.Notes,
			Actor:      update.Actor,
			OccurredAt: occurredAt,
		})
		if err != nil {
			return fmt.Errorf("append tracking event: %w", err)
		}

		shipmentModify := entities.ShipmentModify{
			ID:     &current.ID,
			Status: &update.Status,
		}

		// Дата фактической доставки выставляется один раз и никогда
		// не перезаписывается повторными переходами в delivered.
		if update.Status == entities.ShipmentDelivered && current.ActualDeliveryDate == nil {
			shipmentModify.ActualDeliveryDate = &occurredAt
		}

		updated, err = s.repository.Update(ctx, shipmentModify)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		oldStatus = current.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, entities.StatusChangedEvent{
		EntityType: entities.EntityShipment,
		EntityID:   updated.ID,
		OldStatus:  oldStatus.String(),
		NewStatus:  updated.Status.String(),
		Actor:      update.Actor,
		OccurredAt: s.clock.Now(),
	})

	return updated, nil
}

func (s *Shipment) GetShipment(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	shipmentEntity, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipmentEntity, nil
}

func (s *Shipment) GetTrackingHistory(ctx context.Context, trackingNumber string) ([]entities.TrackingEvent, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	var events []entities.TrackingEvent
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		events, err = s.repository.ListTrackingEvents(ctx, shipmentEntity.ID)
		if err != nil {
			return fmt.Errorf("list tracking events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteShipment удаляет отправление. Разрешено только пока статус pending:
// отправление с историей движения физически не удаляется.
func (s *Shipment) DeleteShipment(ctx context.Context, trackingNumber string) error {
	if !isValidTrackingNumber(trackingNumber) {
		return ErrInvalidTrackingNumber
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if current.Status != entities.ShipmentPending {
			return ErrShipmentNotPending
		}

		if err := s.repository.Delete(ctx, current.ID); err != nil {
			return fmt.Errorf("delete shipment: %w", err)
		}
		return nil
	})
}

// FlagOverdueShipments переводит просроченные активные отправления в
// exception через обычную операцию смены статуса. Возвращает количество
// помеченных отправлений.
func (s *Shipment) FlagOverdueShipments(ctx context.Context) (int64, error) {
	overdue, err := s.repository.ListOverdue(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("list overdue shipments: %w", err)
	}

	var flagged int64
	for _, shipmentEntity := range overdue {
		_, err := s.AddTrackingUpdate(ctx, shipmentEntity.TrackingNumber, entities.TrackingUpdate{
			Status: entities.ShipmentException,
			Notes:  "estimated delivery date passed",
			Actor:  "system",
		})
		if err != nil {
			s.log.With(
				logger.NewField("tracking_number", shipmentEntity.TrackingNumber),
				logger.NewField("error", err),
			).Warn("failed to flag overdue shipment")
			continue
		}
		flagged++
	}

	return flagged, nil
}

func (s *Shipment) notifyStatusChanged(ctx context.Context, event entities.StatusChangedEvent) {
	if err := s.notifier.StatusChanged(ctx, event); err != nil {
		// Нотификация best-effort: сбой логируется и глотается,
		// сам переход уже зафиксирован.
		s.log.With(
			logger.NewField("entity_id", event.EntityID),
			logger.NewField("new_status", event.NewStatus),
			logger.NewField("error", err),
		).Warn("status change notification failed")
	}
}
