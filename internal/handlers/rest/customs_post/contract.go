//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customs_post_test
package customs_post

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
	CreateDeclaration(ctx context.Context, declarationModify entities.CustomsDeclarationModify, items []entities.CustomsItem) (*entities.CustomsDeclaration, error)
}
