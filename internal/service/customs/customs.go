package customs

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/pkg/tariff"
	"github.com/shauritanga/rtexpress-sub000/pkg/logger"
)

// Таблица легальных переходов жизненного цикла декларации.
// Любой переход вне таблицы отклоняется одной проверкой canTransition.
var transitions = map[entities.CustomsStatusType][]entities.CustomsStatusType{
	entities.CustomsDraft:     {entities.CustomsSubmitted},
	entities.CustomsSubmitted: {entities.CustomsApproved, entities.CustomsRejected},
	entities.CustomsApproved:  {entities.CustomsCleared},
}

func canTransition(from, to entities.CustomsStatusType) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Customs struct {
	repository Repository
	notifier   Notifier
	clock      Clock
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	notifier Notifier,
	clock Clock,
	txManager TxManager,
	log serviceLogger,
) *Customs {
	return &Customs{
		repository: repository,
		notifier:   notifier,
		clock:      clock,
		txManager:  txManager,
		log:        log,
	}
}

// CreateDeclaration создает декларацию вместе с позициями в одной транзакции.
// Суммарная заявленная стоимость выводится из позиций, не принимается извне.
func (s *Customs) CreateDeclaration(
	ctx context.Context,
	declarationModify entities.CustomsDeclarationModify,
	items []entities.CustomsItem,
) (*entities.CustomsDeclaration, error) {
	if declarationModify.ShipmentID == nil ||
		declarationModify.DeclarationType == nil ||
		declarationModify.DestinationCountry == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidDeclarationType(*declarationModify.DeclarationType) {
		return nil, ErrInvalidDeclarationType
	}
	if !isValidCountry(*declarationModify.DestinationCountry) {
		return nil, ErrInvalidCountry
	}
	if !areValidItems(items) {
		return nil, ErrInvalidItems
	}

	var totalValue float64
	for _, item := range items {
		totalValue += item.UnitValue * float64(item.Quantity)
	}

	country := strings.ToUpper(*declarationModify.DestinationCountry)
	declarationModify.DestinationCountry = &country
	declarationModify.Status = pointer.To(entities.CustomsDraft)
	declarationModify.TotalDeclaredValue = &totalValue

	var created *entities.CustomsDeclaration
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		declaration, err := s.repository.CreateDeclaration(ctx, declarationModify)
		if err != nil {
			return fmt.Errorf("create declaration: %w", err)
		}

		createdItems, err := s.repository.CreateItems(ctx, declaration.ID, items)
		if err != nil {
			return fmt.Errorf("create declaration items: %w", err)
		}

		declaration.Items = createdItems
		created = declaration
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Customs) AttachDocument(
	ctx context.Context,
	declarationID int64,
	documentType entities.ComplianceDocumentType,
	fileName string,
) (*entities.ComplianceDocument, error) {
	if !isValidDocumentType(documentType) {
		return nil, ErrInvalidDocumentType
	}

	var attached *entities.ComplianceDocument
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		declaration, err := s.repository.GetByID(ctx, declarationID)
		if err != nil {
			return fmt.Errorf("get declaration: %w", err)
		}

		if declaration.Status != entities.CustomsDraft {
			return ErrDeclarationNotEditable
		}

		attached, err = s.repository.AttachDocument(ctx, entities.ComplianceDocument{
			DeclarationID: declaration.ID,
			DocumentType:  documentType,
			FileName:      fileName,
			UploadedAt:    s.clock.Now(),
		})
		if err != nil {
			return fmt.Errorf("attach document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attached, nil
}

// Submit переводит декларацию draft -> submitted. Подача гейтится
// полнотой: все обязательные поля и все обязательные документы.
// При отказе декларация остается нетронутой.
func (s *Customs) Submit(ctx context.Context, declarationID int64, actor string) (*entities.CustomsDeclaration, error) {
	updated, oldStatus, err := s.transition(ctx, declarationID, entities.CustomsSubmitted, func(declaration *entities.CustomsDeclaration, modify *entities.CustomsDeclarationModify) error {
		if !isComplete(declaration) {
			return ErrIncompleteDeclaration
		}
		modify.SubmittedAt = pointer.To(s.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, oldStatus, actor)
	return updated, nil
}

// Approve легален только из submitted; фиксирует проверяющего и референс таможни.
func (s *Customs) Approve(ctx context.Context, declarationID int64, approvedBy, customsReference string) (*entities.CustomsDeclaration, error) {
	if strings.TrimSpace(approvedBy) == "" {
		return nil, ErrMissingRequiredFields
	}

	updated, oldStatus, err := s.transition(ctx, declarationID, entities.CustomsApproved, func(_ *entities.CustomsDeclaration, modify *entities.CustomsDeclarationModify) error {
		modify.ApprovedAt = pointer.To(s.clock.Now())
		modify.ApprovedBy = &approvedBy
		modify.CustomsReference = &customsReference
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, oldStatus, approvedBy)
	return updated, nil
}

// Reject легален только из submitted; rejected - терминальный статус.
func (s *Customs) Reject(ctx context.Context, declarationID int64, reason string) (*entities.CustomsDeclaration, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingRequiredFields
	}

	updated, oldStatus, err := s.transition(ctx, declarationID, entities.CustomsRejected, func(_ *entities.CustomsDeclaration, modify *entities.CustomsDeclarationModify) error {
		modify.RejectionReason = &reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, oldStatus, "customs")
	return updated, nil
}

// Clear легален только из approved; фиксирует время и референс выпуска.
func (s *Customs) Clear(ctx context.Context, declarationID int64, customsReference string) (*entities.CustomsDeclaration, error) {
	updated, oldStatus, err := s.transition(ctx, declarationID, entities.CustomsCleared, func(_ *entities.CustomsDeclaration, modify *entities.CustomsDeclarationModify) error {
		modify.ClearedAt = pointer.To(s.clock.Now())
		modify.CustomsReference = &customsReference
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, oldStatus, "customs")
	return updated, nil
}

func (s *Customs) GetDeclaration(ctx context.Context, declarationID int64) (*entities.CustomsDeclaration, error) {
	declaration, err := s.repository.GetByID(ctx, declarationID)
	if err != nil {
		return nil, fmt.Errorf("get declaration: %w", err)
	}
	return declaration, nil
}

// EstimateCharges считает оценку пошлины и налога по текущим позициям.
func (s *Customs) EstimateCharges(ctx context.Context, declarationID int64) (*entities.CustomsCharges, error) {
	declaration, err := s.repository.GetByID(ctx, declarationID)
	if err != nil {
		return nil, fmt.Errorf("get declaration: %w", err)
	}

	charges := tariff.Estimate(declaration.Items, declaration.DestinationCountry)
	return &charges, nil
}

// transition выполняет один переход статуса в транзакции: проверка
// легальности по таблице, дополнительный гейт prepare, частичное обновление.
func (s *Customs) transition(
	ctx context.Context,
	declarationID int64,
	to entities.CustomsStatusType,
	prepare func(declaration *entities.CustomsDeclaration, modify *entities.CustomsDeclarationModify) error,
) (*entities.CustomsDeclaration, entities.CustomsStatusType, error) {
	var (
		updated   *entities.CustomsDeclaration
		oldStatus entities.CustomsStatusType
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		declaration, err := s.repository.GetByID(ctx, declarationID)
		if err != nil {
			return fmt.Errorf("get declaration: %w", err)
		}

		if !canTransition(declaration.Status, to) {
			return fmt.Errorf("%s -> %s: %w", declaration.Status, to, ErrInvalidStateTransition)
		}

		modify := entities.CustomsDeclarationModify{
			ID:     &declaration.ID,
			Status: &to,
		}
		if err := prepare(declaration, &modify); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update declaration: %w", err)
		}

		oldStatus = declaration.Status
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return updated, oldStatus, nil
}

func isComplete(declaration *entities.CustomsDeclaration) bool {
	if declaration.DeclarationType == "" ||
		declaration.DestinationCountry == "" ||
		declaration.TotalDeclaredValue <= 0 ||
		len(declaration.Items) == 0 {
		return false
	}
	return len(MissingDocuments(declaration)) == 0
}

func (s *Customs) notifyStatusChanged(ctx context.Context, declaration *entities.CustomsDeclaration, oldStatus entities.CustomsStatusType, actor string) {
	err := s.notifier.StatusChanged(ctx, entities.StatusChangedEvent{
		EntityType: entities.EntityCustomsDeclaration,
		EntityID:   declaration.ID,
		OldStatus:  oldStatus.String(),
		NewStatus:  declaration.Status.String(),
		Actor:      actor,
		OccurredAt: s.clock.Now(),
	})
	if err != nil {
		s.log.With(
			logger.NewField("declaration_id", declaration.ID),
			logger.NewField("new_status", declaration.Status.String()),
			logger.NewField("error", err),
		).Warn("status change notification failed")
	}
}
