//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customs_test
package customs

import (
	"context"
	"time"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

type Repository interface {
	CreateDeclaration(ctx context.Context, declarationModify entities.CustomsDeclarationModify) (*entities.CustomsDeclaration, error)
	CreateItems(ctx context.Context, declarationID int64, items []entities.CustomsItem) ([]entities.CustomsItem, error)
	Update(ctx context.Context, declarationModify entities.CustomsDeclarationModify) (*entities.CustomsDeclaration, error)

	// GetByID возвращает декларацию вместе с позициями и документами.
	GetByID(ctx context.Context, id int64) (*entities.CustomsDeclaration, error)

	AttachDocument(ctx context.Context, document entities.ComplianceDocument) (*entities.ComplianceDocument, error)
}

type Notifier interface {
	StatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
