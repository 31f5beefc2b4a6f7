//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"math/rand"
	"time"

	statusChangedGateway "github.com/shauritanga/rtexpress-sub000/internal/gateway/kafka/status_changed"
	customs_approve_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_approve_post"
	customs_charges_get "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_charges_get"
	customs_clear_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_clear_post"
	customs_document_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_document_post"
	customs_get "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_get"
	customs_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_post"
	customs_reject_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_reject_post"
	customs_submit_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/customs_submit_post"
	route_complete_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/route_complete_post"
	route_delete "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/route_delete"
	route_get "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/route_get"
	route_optimize_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/route_optimize_post"
	route_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/route_post"
	route_start_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/route_start_post"
	shipment_delete "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/shipment_delete"
	shipment_get "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/shipment_get"
	shipment_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/shipment_post"
	shipment_track_get "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/shipment_track_get"
	shipment_track_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/shipment_track_post"
	stop_status_post "github.com/shauritanga/rtexpress-sub000/internal/handlers/rest/stop_status_post"
	"github.com/shauritanga/rtexpress-sub000/internal/handlers/tasks/overdue_shipments"
	"github.com/shauritanga/rtexpress-sub000/internal/pkg/config"
	"github.com/shauritanga/rtexpress-sub000/internal/pkg/factory/stop_schedule"
	"github.com/shauritanga/rtexpress-sub000/internal/pkg/factory/tracking_number"

	customsRepo "github.com/shauritanga/rtexpress-sub000/internal/repository/customs"
	routeRepo "github.com/shauritanga/rtexpress-sub000/internal/repository/route"
	shipmentRepo "github.com/shauritanga/rtexpress-sub000/internal/repository/shipment"
	warehouseRepo "github.com/shauritanga/rtexpress-sub000/internal/repository/warehouse"
	customsService "github.com/shauritanga/rtexpress-sub000/internal/service/customs"
	routeService "github.com/shauritanga/rtexpress-sub000/internal/service/route"
	shipmentService "github.com/shauritanga/rtexpress-sub000/internal/service/shipment"

	"github.com/shauritanga/rtexpress-sub000/pkg/background"
	"github.com/shauritanga/rtexpress-sub000/pkg/clock"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
	"github.com/shauritanga/rtexpress-sub000/pkg/querier"
	"github.com/shauritanga/rtexpress-sub000/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueFlagInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceRoute      ServiceRoute
	ServiceCustoms    ServiceCustoms
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_delete.Service
	shipment_track_post.Service
	shipment_track_get.Service
}

type ServiceRoute interface {
	route_post.Service
	route_get.Service
	route_delete.Service
	route_start_post.Service
	route_complete_post.Service
	route_optimize_post.Service
	stop_status_post.Service
}

type ServiceCustoms interface {
	customs_post.Service
	customs_get.Service
	customs_document_post.Service
	customs_submit_post.Service
	customs_approve_post.Service
	customs_reject_post.Service
	customs_clear_post.Service
	customs_charges_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideOverdueFlagInterval,

		provideShipmentRepository,
		provideRouteRepository,
		provideCustomsRepository,
		provideWarehouseRepository,

		provideStatusChangedGateway,
		provideTrackingNumberFactory,
		stop_schedule.New,

		provideServiceShipment,
		provideServiceRoute,
		provideServiceCustoms,

		provideOverdueShipmentsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(ServiceCustoms), new(*customsService.Customs)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(routeService.Repository), new(*routeRepo.Repository)),
		wire.Bind(new(routeService.WarehouseRepository), new(*warehouseRepo.Repository)),
		wire.Bind(new(customsService.Repository), new(*customsRepo.Repository)),

		wire.Bind(new(shipmentService.Notifier), new(*statusChangedGateway.Gateway)),
		wire.Bind(new(routeService.Notifier), new(*statusChangedGateway.Gateway)),
		wire.Bind(new(customsService.Notifier), new(*statusChangedGateway.Gateway)),

		wire.Bind(new(shipmentService.TrackingNumberFactory), new(*tracking_number.TrackingNumberFactory)),
		wire.Bind(new(routeService.ScheduleFactory), new(*stop_schedule.ScheduleFactory)),

		wire.Bind(new(shipmentService.Clock), new(*clock.System)),
		wire.Bind(new(routeService.Clock), new(*clock.System)),
		wire.Bind(new(customsService.Clock), new(*clock.System)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(routeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(customsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(overdue_shipments.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	CustomsService *customsService.Customs
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-customs-response)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,

		provideCustomsRepository,
		provideStatusChangedGateway,
		provideServiceCustoms,

		wire.Bind(new(customsService.Repository), new(*customsRepo.Repository)),
		wire.Bind(new(customsService.Notifier), new(*statusChangedGateway.Gateway)),
		wire.Bind(new(customsService.Clock), new(*clock.System)),
		wire.Bind(new(customsService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() *clock.System {
	return clock.NewSystem()
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideCustomsRepository(querier *querier.Querier) *customsRepo.Repository {
	return customsRepo.New(querier)
}

func provideWarehouseRepository(querier *querier.Querier) *warehouseRepo.Repository {
	return warehouseRepo.New(querier)
}

func provideStatusChangedGateway(producer sarama.SyncProducer, cfg *config.Config) *statusChangedGateway.Gateway {
	return statusChangedGateway.New(producer, cfg.Kafka.TopicStatusChanged)
}

func provideTrackingNumberFactory(clk *clock.System) *tracking_number.TrackingNumberFactory {
	return tracking_number.New(clk, rand.NewSource(time.Now().UnixNano()))
}

func provideServiceShipment(
	repository shipmentService.Repository,
	notifier shipmentService.Notifier,
	trackingNumbers shipmentService.TrackingNumberFactory,
	clk shipmentService.Clock,
	txManager shipmentService.TxManager,
	log logger.Logger,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		notifier,
		trackingNumbers,
		clk,
		txManager,
		log,
	)
}

func provideServiceRoute(
	repository routeService.Repository,
	warehouseRepository routeService.WarehouseRepository,
	schedule routeService.ScheduleFactory,
	notifier routeService.Notifier,
	clk routeService.Clock,
	txManager routeService.TxManager,
	log logger.Logger,
) *routeService.Route {
	return routeService.New(
		repository,
		warehouseRepository,
		schedule,
		notifier,
		clk,
		txManager,
		log,
	)
}

func provideServiceCustoms(
	repository customsService.Repository,
	notifier customsService.Notifier,
	clk customsService.Clock,
	txManager customsService.TxManager,
	log logger.Logger,
) *customsService.Customs {
	return customsService.New(
		repository,
		notifier,
		clk,
		txManager,
		log,
	)
}

func provideOverdueFlagInterval(cfg *config.Config) OverdueFlagInterval {
	return OverdueFlagInterval(cfg.Tasks.OverdueShipmentsFlagInterval)
}

func provideOverdueShipmentsTask(
	log logger.Logger,
	shipmentService overdue_shipments.Service,
	interval OverdueFlagInterval,
) *overdue_shipments.OverdueShipments {
	return overdue_shipments.NewOverdueShipments(log, shipmentService, time.Duration(interval))
}

func provideTaskList(
	overdueShipmentsTask *overdue_shipments.OverdueShipments,
) []background.Task {
	return []background.Task{
		overdueShipmentsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
