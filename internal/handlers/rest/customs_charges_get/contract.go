//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customs_charges_get_test
package customs_charges_get

import (
	"context"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	EstimateCharges(ctx context.Context, declarationID int64) (*entities.CustomsCharges, error)
}
