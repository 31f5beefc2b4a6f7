//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customs_document_post_test
package customs_document_post

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
	AttachDocument(ctx context.Context, declarationID int64, documentType entities.ComplianceDocumentType, fileName string) (*entities.ComplianceDocument, error)
}
