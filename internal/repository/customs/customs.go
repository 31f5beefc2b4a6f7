package customs

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/repository"
	"github.com/shauritanga/rtexpress-sub000/internal/service/customs"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const declarationColumns = `id, shipment_id, status, declaration_type, destination_country,
		total_declared_value, contains_batteries, contains_liquids, contains_dangerous_goods,
		submitted_at, approved_at, cleared_at, approved_by, customs_reference, rejection_reason,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateDeclaration(ctx context.Context, declarationModifyEntity entities.CustomsDeclarationModify) (*entities.CustomsDeclaration, error) {
	declarationModifyModel := FromDomainModify(&declarationModifyEntity)

	query := `
		INSERT INTO customs_declarations (shipment_id, status, declaration_type, destination_country,
			total_declared_value, contains_batteries, contains_liquids, contains_dangerous_goods)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, FALSE), COALESCE($7, FALSE), COALESCE($8, FALSE))
		RETURNING ` + declarationColumns

	var declarationModel DeclarationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		declarationModifyModel.ShipmentID,
		declarationModifyModel.Status,
		declarationModifyModel.DeclarationType,
		declarationModifyModel.DestinationCountry,
		declarationModifyModel.TotalDeclaredValue,
		declarationModifyModel.ContainsBatteries,
		declarationModifyModel.ContainsLiquids,
		declarationModifyModel.ContainsDangerousGoods,
	).Scan(
		&declarationModel.ID,
		&declarationModel.ShipmentID,
		&declarationModel.Status,
		&declarationModel.DeclarationType,
		&declarationModel.DestinationCountry,
		&declarationModel.TotalDeclaredValue,
		&declarationModel.ContainsBatteries,
		&declarationModel.ContainsLiquids,
		&declarationModel.ContainsDangerousGoods,
		&declarationModel.SubmittedAt,
		&declarationModel.ApprovedAt,
		&declarationModel.ClearedAt,
		&declarationModel.ApprovedBy,
		&declarationModel.CustomsReference,
		&declarationModel.RejectionReason,
		&declarationModel.CreatedAt,
		&declarationModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customs.ErrDeclarationExists
		}
		return nil, fmt.Errorf("unexpected customs repository create error: %w", err)
	}

	return ToDomain(&declarationModel), nil
}

func (r *Repository) CreateItems(ctx context.Context, declarationID int64, items []entities.CustomsItem) ([]entities.CustomsItem, error) {
	query := `
		INSERT INTO customs_items (declaration_id, description, hs_code, quantity, unit_value, country_of_origin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, declaration_id, description, hs_code, quantity, unit_value, country_of_origin
	`

	itemModels := make([]ItemDB, 0, len(items))
	for _, item := range items {
		var itemModel ItemDB
		err := r.querier.QueryRow(
			ctx,
			query,
			declarationID,
			item.Description,
			item.HSCode,
			item.Quantity,
			item.UnitValue,
			item.CountryOfOrigin,
		).Scan(
			&itemModel.ID,
			&itemModel.DeclarationID,
			&itemModel.Description,
			&itemModel.HSCode,
			&itemModel.Quantity,
			&itemModel.UnitValue,
			&itemModel.CountryOfOrigin,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected customs repository create item error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	return ToItemDomainList(itemModels), nil
}

func (r *Repository) Update(ctx context.Context, declarationModifyEntity entities.CustomsDeclarationModify) (*entities.CustomsDeclaration, error) {
	declarationModifyModel := FromDomainModify(&declarationModifyEntity)

	builder := qb.
		Update("customs_declarations")

	// опциональные поля
	if declarationModifyModel.Status != nil {
		builder = builder.Set("status", declarationModifyModel.Status)
	}
	if declarationModifyModel.DeclarationType != nil {
		builder = builder.Set("declaration_type", declarationModifyModel.DeclarationType)
	}
	if declarationModifyModel.DestinationCountry != nil {
		builder = builder.Set("destination_country", declarationModifyModel.DestinationCountry)
	}
	if declarationModifyModel.TotalDeclaredValue != nil {
		builder = builder.Set("total_declared_value", declarationModifyModel.TotalDeclaredValue)
	}
	if declarationModifyModel.SubmittedAt != nil {
		builder = builder.Set("submitted_at", declarationModifyModel.SubmittedAt)
	}
	if declarationModifyModel.ApprovedAt != nil {
		builder = builder.Set("approved_at", declarationModifyModel.ApprovedAt)
	}
	if declarationModifyModel.ClearedAt != nil {
		builder = builder.Set("cleared_at", declarationModifyModel.ClearedAt)
	}
	if declarationModifyModel.ApprovedBy != nil {
		builder = builder.Set("approved_by", declarationModifyModel.ApprovedBy)
	}
	if declarationModifyModel.CustomsReference != nil {
		builder = builder.Set("customs_reference", declarationModifyModel.CustomsReference)
	}
	if declarationModifyModel.RejectionReason != nil {
		builder = builder.Set("rejection_reason", declarationModifyModel.RejectionReason)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": declarationModifyModel.ID}).
		Suffix("RETURNING " + declarationColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customs repository update error: %w", err)
	}

	var declarationModel DeclarationDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&declarationModel.ID,
			&declarationModel.ShipmentID,
			&declarationModel.Status,
			&declarationModel.DeclarationType,
			&declarationModel.DestinationCountry,
			&declarationModel.TotalDeclaredValue,
			&declarationModel.ContainsBatteries,
			&declarationModel.ContainsLiquids,
			&declarationModel.ContainsDangerousGoods,
			&declarationModel.SubmittedAt,
			&declarationModel.ApprovedAt,
			&declarationModel.ClearedAt,
			&declarationModel.ApprovedBy,
			&declarationModel.CustomsReference,
			&declarationModel.RejectionReason,
			&declarationModel.CreatedAt,
			&declarationModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customs.ErrDeclarationNotFound
		}
		return nil, fmt.Errorf("unexpected customs repository update error: %w", err)
	}

	return ToDomain(&declarationModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.CustomsDeclaration, error) {
	query := `
		SELECT ` + declarationColumns + `
		FROM customs_declarations
		WHERE id = $1`

	var declarationModel DeclarationDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&declarationModel.ID,
			&declarationModel.ShipmentID,
			&declarationModel.Status,
			&declarationModel.DeclarationType,
			&declarationModel.DestinationCountry,
			&declarationModel.TotalDeclaredValue,
			&declarationModel.ContainsBatteries,
			&declarationModel.ContainsLiquids,
			&declarationModel.ContainsDangerousGoods,
			&declarationModel.SubmittedAt,
			&declarationModel.ApprovedAt,
			&declarationModel.ClearedAt,
			&declarationModel.ApprovedBy,
			&declarationModel.CustomsReference,
			&declarationModel.RejectionReason,
			&declarationModel.CreatedAt,
			&declarationModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customs.ErrDeclarationNotFound
		}
		return nil, fmt.Errorf("unexpected customs repository getbyid error: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	documents, err := r.listDocuments(ctx, id)
	if err != nil {
		return nil, err
	}

	declaration := ToDomain(&declarationModel)
	declaration.Items = items
	declaration.Documents = documents
	return declaration, nil
}

func (r *Repository) AttachDocument(ctx context.Context, document entities.ComplianceDocument) (*entities.ComplianceDocument, error) {
	query := `
		INSERT INTO compliance_documents (declaration_id, document_type, file_name, uploaded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, declaration_id, document_type, file_name, uploaded_at
	`

	var documentModel DocumentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		document.DeclarationID,
		document.DocumentType.String(),
		document.FileName,
		document.UploadedAt,
	).Scan(
		&documentModel.ID,
		&documentModel.DeclarationID,
		&documentModel.DocumentType,
		&documentModel.FileName,
		&documentModel.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected customs repository attach document error: %w", err)
	}

	return ToDocumentDomain(&documentModel), nil
}

func (r *Repository) listItems(ctx context.Context, declarationID int64) ([]entities.CustomsItem, error) {
	query := `
		SELECT id, declaration_id, description, hs_code, quantity, unit_value, country_of_origin
		FROM customs_items
		WHERE declaration_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, declarationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected customs repository list items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]ItemDB, 0, 8)
	for rows.Next() {
		var itemModel ItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.DeclarationID,
			&itemModel.Description,
			&itemModel.HSCode,
			&itemModel.Quantity,
			&itemModel.UnitValue,
			&itemModel.CountryOfOrigin,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected customs repository list items scan error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected customs repository list items rows error: %w", err)
	}

	return ToItemDomainList(itemModels), nil
}

func (r *Repository) listDocuments(ctx context.Context, declarationID int64) ([]entities.ComplianceDocument, error) {
	query := `
		SELECT id, declaration_id, document_type, file_name, uploaded_at
		FROM compliance_documents
		WHERE declaration_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, declarationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected customs repository list documents error: %w", err)
	}
	defer rows.Close()

	documentModels := make([]DocumentDB, 0, 4)
	for rows.Next() {
		var documentModel DocumentDB
		err := rows.Scan(
			&documentModel.ID,
			&documentModel.DeclarationID,
			&documentModel.DocumentType,
			&documentModel.FileName,
			&documentModel.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected customs repository list documents scan error: %w", err)
		}
		documentModels = append(documentModels, documentModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected customs repository list documents rows error: %w", err)
	}

	return ToDocumentDomainList(documentModels), nil
}
