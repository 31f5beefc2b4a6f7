package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/repository"
	"github.com/shauritanga/rtexpress-sub000/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, tracking_number, status, service_type, weight_kg, declared_value,
		origin_warehouse_id, destination_address, estimated_delivery_date, actual_delivery_date,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	query := `
		INSERT INTO shipments (tracking_number, status, service_type, weight_kg, declared_value,
			origin_warehouse_id, destination_address, estimated_delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.TrackingNumber,
		shipmentModifyModel.Status,
		shipmentModifyModel.ServiceType,
		shipmentModifyModel.WeightKg,
		shipmentModifyModel.DeclaredValue,
		shipmentModifyModel.OriginWarehouseID,
		shipmentModifyModel.DestinationAddress,
		shipmentModifyModel.EstimatedDeliveryDate,
	).Scan(
		&shipmentModel.ID,
		&shipmentModel.TrackingNumber,
		&shipmentModel.Status,
		&shipmentModel.ServiceType,
		&shipmentModel.WeightKg,
		&shipmentModel.DeclaredValue,
		&shipmentModel.OriginWarehouseID,
		&shipmentModel.DestinationAddress,
		&shipmentModel.EstimatedDeliveryDate,
		&shipmentModel.ActualDeliveryDate,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}
	if shipmentModifyModel.ServiceType != nil {
		builder = builder.Set("service_type", shipmentModifyModel.ServiceType)
	}
	if shipmentModifyModel.WeightKg != nil {
		builder = builder.Set("weight_kg", shipmentModifyModel.WeightKg)
	}
	if shipmentModifyModel.DeclaredValue != nil {
		builder = builder.Set("declared_value", shipmentModifyModel.DeclaredValue)
	}
	if shipmentModifyModel.DestinationAddress != nil {
		builder = builder.Set("destination_address", shipmentModifyModel.DestinationAddress)
	}
	if shipmentModifyModel.EstimatedDeliveryDate != nil {
		builder = builder.Set("estimated_delivery_date", shipmentModifyModel.EstimatedDeliveryDate)
	}
	if shipmentModifyModel.ActualDeliveryDate != nil {
		builder = builder.Set("actual_delivery_date", shipmentModifyModel.ActualDeliveryDate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.TrackingNumber,
			&shipmentModel.Status,
			&shipmentModel.ServiceType,
			&shipmentModel.WeightKg,
			&shipmentModel.DeclaredValue,
			&shipmentModel.OriginWarehouseID,
			&shipmentModel.DestinationAddress,
			&shipmentModel.EstimatedDeliveryDate,
			&shipmentModel.ActualDeliveryDate,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM shipments WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_number = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, trackingNumber).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.TrackingNumber,
			&shipmentModel.Status,
			&shipmentModel.ServiceType,
			&shipmentModel.WeightKg,
			&shipmentModel.DeclaredValue,
			&shipmentModel.OriginWarehouseID,
			&shipmentModel.DestinationAddress,
			&shipmentModel.EstimatedDeliveryDate,
			&shipmentModel.ActualDeliveryDate,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

// ListOverdue возвращает активные отправления с истекшей плановой датой
// доставки. Уже помеченные exception не возвращаются повторно.
func (r *Repository) ListOverdue(ctx context.Context, asOf time.Time) ([]entities.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE estimated_delivery_date < $1
		  AND status NOT IN ('delivered', 'cancelled', 'exception')
		ORDER BY estimated_delivery_date, id`

	rows, err := r.querier.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list overdue error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentModel ShipmentDB
		err := rows.Scan(
			&shipmentModel.ID,
			&shipmentModel.TrackingNumber,
			&shipmentModel.Status,
			&shipmentModel.ServiceType,
			&shipmentModel.WeightKg,
			&shipmentModel.DeclaredValue,
			&shipmentModel.OriginWarehouseID,
			&shipmentModel.DestinationAddress,
			&shipmentModel.EstimatedDeliveryDate,
			&shipmentModel.ActualDeliveryDate,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list overdue scan error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list overdue rows error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

func (r *Repository) AppendTrackingEvent(ctx context.Context, event entities.TrackingEvent) (*entities.TrackingEvent, error) {
	query := `
		INSERT INTO tracking_events (shipment_id, status, location, notes, actor, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, shipment_id, status, location, notes, actor, occurred_at
	`

	var eventModel TrackingEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		event.ShipmentID,
		event.Status.String(),
		event.Location,
		event.Notes,
		event.Actor,
		event.OccurredAt,
	).Scan(
		&eventModel.ID,
		&eventModel.ShipmentID,
		&eventModel.Status,
		&eventModel.Location,
		&eventModel.Notes,
		&eventModel.Actor,
		&eventModel.OccurredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository append event error: %w", err)
	}

	return ToEventDomain(&eventModel), nil
}

func (r *Repository) ListTrackingEvents(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error) {
	query := `
		SELECT id, shipment_id, status, location, notes, actor, occurred_at
		FROM tracking_events
		WHERE shipment_id = $1
		ORDER BY occurred_at, id`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list events error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]TrackingEventDB, 0, 8)
	for rows.Next() {
		var eventModel TrackingEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.ShipmentID,
			&eventModel.Status,
			&eventModel.Location,
			&eventModel.Notes,
			&eventModel.Actor,
			&eventModel.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list events scan error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list events rows error: %w", err)
	}

	return ToEventDomainList(eventModels), nil
}
