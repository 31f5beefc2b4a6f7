package route

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/pkg/routing"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Route struct {
	repository    Repository
	warehouseRepo WarehouseRepository
	schedule      ScheduleFactory
	notifier      Notifier
	clock         Clock
	txManager     TxManager
	log           serviceLogger
}

func New(
	repository Repository,
	warehouseRepo WarehouseRepository,
	schedule ScheduleFactory,
	notifier Notifier,
	clock Clock,
	txManager TxManager,
	log serviceLogger,
) *Route {
	return &Route{
		repository:    repository,
		warehouseRepo: warehouseRepo,
		schedule:      schedule,
		notifier:      notifier,
		clock:         clock,
		txManager:     txManager,
		log:           log,
	}
}

// CreateRoute создает маршрут со всеми стопами одной транзакцией.
// Водитель должен быть свободен: доступность - производный факт
// "нет активного маршрута", а не отдельный флаг.
func (s *Route) CreateRoute(ctx context.Context, routeModify entities.RouteModify, stops []entities.Stop) (*entities.Route, error) {
	if routeModify.DriverID == nil ||
		routeModify.WarehouseID == nil ||
		routeModify.DeliveryDate == nil ||
		routeModify.PlannedStartTime == nil {
		return nil, ErrMissingRequiredFields
	}
	if err := validateStops(stops); err != nil {
		return nil, err
	}

	var created *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.warehouseRepo.GetByID(ctx, *routeModify.WarehouseID); err != nil {
			return fmt.Errorf("get depot warehouse: %w", err)
		}

		busy, err := s.repository.DriverHasActiveRoute(ctx, *routeModify.DriverID)
		if err != nil {
			return fmt.Errorf("check driver availability: %w", err)
		}
		if busy {
			return ErrDriverUnavailable
		}

		totalWeight, err := s.repository.SumShipmentWeights(ctx, shipmentIDs(stops))
		if err != nil {
			return fmt.Errorf("sum shipment weights: %w", err)
		}

		routeModify.Status = pointer.To(entities.RoutePlanned)

		for i := range stops {
			stops[i].StopOrder = i + 1
			stops[i].Status = entities.StopPending
			arrival := s.schedule.PlannedArrival(i+1, *routeModify.PlannedStartTime)
			departure := s.schedule.PlannedDeparture(i+1, *routeModify.PlannedStartTime)
			stops[i].PlannedArrival = &arrival
			stops[i].PlannedDeparture = &departure
		}

		created, err = s.repository.Create(ctx, routeModify, stops)
		if err != nil {
			return fmt.Errorf("create route: %w", err)
		}

		created.TotalWeightKg = totalWeight
		created.TotalStops = len(stops)
		created.EstimatedDurationHours = s.schedule.EstimatedDurationHours(len(stops))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// StartRoute переводит маршрут planned -> in_progress.
func (s *Route) StartRoute(ctx context.Context, routeID int64) (*entities.Route, error) {
	var (
		updated   *entities.Route
		oldStatus entities.RouteStatusType
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if current.Status != entities.RoutePlanned {
			return ErrRouteNotPlanned
		}

		updated, err = s.repository.Update(ctx, entities.RouteModify{
			ID:        &current.ID,
			Status:    pointer.To(entities.RouteInProgress),
			StartedAt: pointer.To(s.clock.Now()),
		})
		if err != nil {
			return fmt.Errorf("update route status: %w", err)
		}

		oldStatus = current.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, oldStatus)
	return updated, nil
}

// CompleteRoute переводит маршрут in_progress -> completed. Статус маршрута
// не выводится из статусов стопов - завершение всегда операторское.
func (s *Route) CompleteRoute(ctx context.Context, routeID int64) (*entities.Route, error) {
	var (
		updated   *entities.Route
		oldStatus entities.RouteStatusType
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if current.Status != entities.RouteInProgress {
			return ErrRouteNotInProgress
		}

		updated, err = s.repository.Update(ctx, entities.RouteModify{
			ID:          &current.ID,
			Status:      pointer.To(entities.RouteCompleted),
			CompletedAt: pointer.To(s.clock.Now()),
		})
		if err != nil {
			return fmt.Errorf("update route status: %w", err)
		}

		oldStatus = current.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, oldStatus)
	return updated, nil
}

// DeleteRoute удаляет маршрут вместе со стопами. Разрешено только из
// planned; водитель при этом снова становится доступен автоматически,
// поскольку доступность - производный факт.
func (s *Route) DeleteRoute(ctx context.Context, routeID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if current.Status != entities.RoutePlanned {
			return ErrRouteNotPlanned
		}

		if err := s.repository.Delete(ctx, current.ID); err != nil {
			return fmt.Errorf("delete route: %w", err)
		}
		return nil
	})
}

// OptimizeRoute пересортировывает стопы маршрута: приоритетные первыми,
// остальные жадным nearest-neighbor от депо. Новый порядок и плановые
// времена фиксируются одной транзакцией. Маршрут под исполнением
// пересортировывать нельзя.
func (s *Route) OptimizeRoute(ctx context.Context, routeID int64) (*entities.Route, error) {
	var optimized *entities.Route

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if current.Status != entities.RoutePlanned {
			return ErrRouteNotPlanned
		}

		depot, err := s.warehouseRepo.GetByID(ctx, current.WarehouseID)
		if err != nil {
			return fmt.Errorf("get depot warehouse: %w", err)
		}

		ordered := routing.Sequence(depot.Latitude, depot.Longitude, current.Stops)

		for i := range ordered {
			ordered[i].StopOrder = i + 1
			arrival := s.schedule.PlannedArrival(i+1, current.PlannedStartTime)
			departure := s.schedule.PlannedDeparture(i+1, current.PlannedStartTime)
			ordered[i].PlannedArrival = &arrival
			ordered[i].PlannedDeparture = &departure
		}

		if err := s.repository.UpdateStops(ctx, current.ID, ordered); err != nil {
			return fmt.Errorf("update stop order: %w", err)
		}

		current.Stops = ordered
		current.EstimatedDurationHours = s.schedule.EstimatedDurationHours(len(ordered))
		optimized = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return optimized, nil
}

// UpdateStopStatus меняет статус одного стопа исполняемого маршрута.
// completed и failed терминальны для стопа.
func (s *Route) UpdateStopStatus(ctx context.Context, routeID, stopID int64, status entities.StopStatusType) (*entities.Stop, error) {
	if !isValidStopStatus(status) {
		return nil, ErrInvalidStopStatus
	}

	var updated *entities.Stop
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		if current.Status != entities.RouteInProgress {
			return ErrRouteNotInProgress
		}

		var stop *entities.Stop
		for i := range current.Stops {
			if current.Stops[i].ID == stopID {
				stop = &current.Stops[i]
				break
			}
		}
		if stop == nil {
			return ErrStopNotFound
		}

		if !canTransitionStop(stop.Status, status) {
			if stop.Status.IsTerminal() {
				return ErrStopTerminal
			}
			return fmt.Errorf("%s -> %s: %w", stop.Status, status, ErrInvalidStopStatus)
		}

		updated, err = s.repository.UpdateStopStatus(ctx, routeID, stopID, status)
		if err != nil {
			return fmt.Errorf("update stop status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Route) GetRoute(ctx context.Context, routeID int64) (*entities.Route, error) {
	routeEntity, err := s.repository.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	return routeEntity, nil
}

func shipmentIDs(stops []entities.Stop) []int64 {
	ids := make([]int64, 0, len(stops))
	for _, stop := range stops {
		if stop.ShipmentID != nil {
			ids = append(ids, *stop.ShipmentID)
		}
	}
	return ids
}

func (s *Route) notifyStatusChanged(ctx context.Context, routeEntity *entities.Route, oldStatus entities.RouteStatusType) {
	err := s.notifier.StatusChanged(ctx, entities.StatusChangedEvent{
		EntityType: entities.EntityRoute,
		EntityID:   routeEntity.ID,
		OldStatus:  oldStatus.String(),
		NewStatus:  routeEntity.Status.String(),
		Actor:      "dispatcher",
		OccurredAt: s.clock.Now(),
	})
	if err != nil {
		s.log.With(
			logger.NewField("route_id", routeEntity.ID),
			logger.NewField("new_status", routeEntity.Status.String()),
			logger.NewField("error", err),
		).Warn("status change notification failed")
	}
}
