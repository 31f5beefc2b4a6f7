package overdue_shipments

import (
	"context"
	"time"

	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Service interface {
	FlagOverdueShipments(ctx context.Context) (int64, error)
}

type OverdueShipments struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOverdueShipments(log logger.Logger, service Service, interval time.Duration) *OverdueShipments {
	return &OverdueShipments{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OverdueShipments) TTL() time.Duration {
	return o.interval
}

func (o *OverdueShipments) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	flagged, err := o.service.FlagOverdueShipments(ctxWithTimeout)

	if flagged > 0 {
		o.log.With(
			logger.NewField("flagged_shipments", flagged),
		).Info("overdue shipments flagging")
	}

	return err
}

func (o *OverdueShipments) Info() string {
	return "overdue shipments flagging"
}
