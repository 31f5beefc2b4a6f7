package route

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/service/route"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const routeColumns = `id, status, driver_id, warehouse_id, delivery_date, planned_start_time,
		started_at, completed_at, created_at, updated_at`

const stopColumns = `id, route_id, shipment_id, stop_order, latitude, longitude, stop_type,
		priority, planned_arrival, planned_departure, status`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет маршрут и все его стопы. Вызывается только внутри
// транзакции сервисного слоя, поэтому частичной вставки не бывает.
func (r *Repository) Create(ctx context.Context, routeModifyEntity entities.RouteModify, stops []entities.Stop) (*entities.Route, error) {
	routeModifyModel := FromDomainModify(&routeModifyEntity)

	query := `
		INSERT INTO routes (status, driver_id, warehouse_id, delivery_date, planned_start_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + routeColumns

	var routeModel RouteDB
	err := r.querier.QueryRow(
		ctx,
		query,
		routeModifyModel.Status,
		routeModifyModel.DriverID,
		routeModifyModel.WarehouseID,
		routeModifyModel.DeliveryDate,
		routeModifyModel.PlannedStartTime,
	).Scan(
		&routeModel.ID,
		&routeModel.Status,
		&routeModel.DriverID,
		&routeModel.WarehouseID,
		&routeModel.DeliveryDate,
		&routeModel.PlannedStartTime,
		&routeModel.StartedAt,
		&routeModel.CompletedAt,
		&routeModel.CreatedAt,
		&routeModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	createdStops := make([]entities.Stop, 0, len(stops))
	for _, stop := range stops {
		stopQuery := `
			INSERT INTO route_stops (route_id, shipment_id, stop_order, latitude, longitude,
				stop_type, priority, planned_arrival, planned_departure, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING ` + stopColumns

		var stopModel StopDB
		err := r.querier.QueryRow(
			ctx,
			stopQuery,
			routeModel.ID,
			stop.ShipmentID,
			stop.StopOrder,
			stop.Latitude,
			stop.Longitude,
			stop.Type.String(),
			stop.Priority.String(),
			stop.PlannedArrival,
			stop.PlannedDeparture,
			stop.Status.String(),
		).Scan(
			&stopModel.ID,
			&stopModel.RouteID,
			&stopModel.ShipmentID,
			&stopModel.StopOrder,
			&stopModel.Latitude,
			&stopModel.Longitude,
			&stopModel.StopType,
			&stopModel.Priority,
			&stopModel.PlannedArrival,
			&stopModel.PlannedDeparture,
			&stopModel.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository create stop error: %w", err)
		}
		createdStops = append(createdStops, *ToStopDomain(&stopModel))
	}

	routeEntity := ToDomain(&routeModel)
	routeEntity.Stops = createdStops
	routeEntity.TotalStops = len(createdStops)
	return routeEntity, nil
}

func (r *Repository) Update(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error) {
	routeModifyModel := FromDomainModify(&routeModifyEntity)

	builder := qb.
		Update("routes")

	// опциональные поля
	if routeModifyModel.Status != nil {
		builder = builder.Set("status", routeModifyModel.Status)
	}
	if routeModifyModel.DeliveryDate != nil {
		builder = builder.Set("delivery_date", routeModifyModel.DeliveryDate)
	}
	if routeModifyModel.PlannedStartTime != nil {
		builder = builder.Set("planned_start_time", routeModifyModel.PlannedStartTime)
	}
	if routeModifyModel.StartedAt != nil {
		builder = builder.Set("started_at", routeModifyModel.StartedAt)
	}
	if routeModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", routeModifyModel.CompletedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": routeModifyModel.ID}).
		Suffix("RETURNING " + routeColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	var routeModel RouteDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&routeModel.ID,
			&routeModel.Status,
			&routeModel.DriverID,
			&routeModel.WarehouseID,
			&routeModel.DeliveryDate,
			&routeModel.PlannedStartTime,
			&routeModel.StartedAt,
			&routeModel.CompletedAt,
			&routeModel.CreatedAt,
			&routeModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

// Delete удаляет маршрут; стопы уходят каскадом по внешнему ключу.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM routes WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected route repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return route.ErrRouteNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE id = $1`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&routeModel.ID,
			&routeModel.Status,
			&routeModel.DriverID,
			&routeModel.WarehouseID,
			&routeModel.DeliveryDate,
			&routeModel.PlannedStartTime,
			&routeModel.StartedAt,
			&routeModel.CompletedAt,
			&routeModel.CreatedAt,
			&routeModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	stops, err := r.listStops(ctx, id)
	if err != nil {
		return nil, err
	}

	routeEntity := ToDomain(&routeModel)
	routeEntity.Stops = stops
	routeEntity.TotalStops = len(stops)
	return routeEntity, nil
}

// UpdateStops перезаписывает порядок и плановые времена набора стопов.
// Состав набора не меняется: только stop_order и расписание.
func (r *Repository) UpdateStops(ctx context.Context, routeID int64, stops []entities.Stop) error {
	query := `
		UPDATE route_stops
		SET stop_order = $1,
		    planned_arrival = $2,
		    planned_departure = $3
		WHERE id = $4 AND route_id = $5
	`

	for _, stop := range stops {
		result, err := r.querier.Exec(
			ctx,
			query,
			stop.StopOrder,
			stop.PlannedArrival,
			stop.PlannedDeparture,
			stop.ID,
			routeID,
		)
		if err != nil {
			return fmt.Errorf("unexpected route repository update stops error: %w", err)
		}
		if result.RowsAffected() == 0 {
			return route.ErrStopNotFound
		}
	}

	return nil
}

func (r *Repository) UpdateStopStatus(ctx context.Context, routeID, stopID int64, status entities.StopStatusType) (*entities.Stop, error) {
	query := `
		UPDATE route_stops
		SET status = $1
		WHERE id = $2 AND route_id = $3
		RETURNING ` + stopColumns

	var stopModel StopDB
	err := r.querier.QueryRow(ctx, query, status.String(), stopID, routeID).
		Scan(
			&stopModel.ID,
			&stopModel.RouteID,
			&stopModel.ShipmentID,
			&stopModel.StopOrder,
			&stopModel.Latitude,
			&stopModel.Longitude,
			&stopModel.StopType,
			&stopModel.Priority,
			&stopModel.PlannedArrival,
			&stopModel.PlannedDeparture,
			&stopModel.Status,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrStopNotFound
		}
		return nil, fmt.Errorf("unexpected route repository update stop status error: %w", err)
	}

	return ToStopDomain(&stopModel), nil
}

// DriverHasActiveRoute - производная доступность: водитель занят, пока
// у него есть маршрут в статусе planned или in_progress.
func (r *Repository) DriverHasActiveRoute(ctx context.Context, driverID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM routes
			WHERE driver_id = $1
			  AND status IN ('planned', 'in_progress')
		)
	`

	var busy bool
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&busy)
	if err != nil {
		return false, fmt.Errorf("unexpected route repository driver availability error: %w", err)
	}

	return busy, nil
}

func (r *Repository) SumShipmentWeights(ctx context.Context, shipmentIDs []int64) (float64, error) {
	if len(shipmentIDs) == 0 {
		return 0, nil
	}

	query := `
		SELECT COALESCE(SUM(weight_kg), 0)
		FROM shipments
		WHERE id = ANY($1)
	`

	var totalWeight float64
	err := r.querier.QueryRow(ctx, query, shipmentIDs).Scan(&totalWeight)
	if err != nil {
		return 0, fmt.Errorf("unexpected route repository sum weights error: %w", err)
	}

	return totalWeight, nil
}

func (r *Repository) listStops(ctx context.Context, routeID int64) ([]entities.Stop, error) {
	query := `
		SELECT ` + stopColumns + `
		FROM route_stops
		WHERE route_id = $1
		ORDER BY stop_order, id`

	rows, err := r.querier.Query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository list stops error: %w", err)
	}
	defer rows.Close()

	stopModels := make([]StopDB, 0, 8)
	for rows.Next() {
		var stopModel StopDB
		err := rows.Scan(
			&stopModel.ID,
			&stopModel.RouteID,
			&stopModel.ShipmentID,
			&stopModel.StopOrder,
			&stopModel.Latitude,
			&stopModel.Longitude,
			&stopModel.StopType,
			&stopModel.Priority,
			&stopModel.PlannedArrival,
			&stopModel.PlannedDeparture,
			&stopModel.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository list stops scan error: %w", err)
		}
		stopModels = append(stopModels, stopModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route repository list stops rows error: %w", err)
	}

	return ToStopDomainList(stopModels), nil
}
