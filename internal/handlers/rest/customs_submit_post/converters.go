package customs_submit_post

import (
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/generated/dto"
)

func toDeclarationDTO(declaration *entities.CustomsDeclaration) dto.CustomsDeclaration {
	items := make([]dto.CustomsItem, len(declaration.Items))
	for i, item := range declaration.Items {
		items[i] = dto.CustomsItem{
			ID:              item.ID,
			DeclarationID:   item.DeclarationID,
			Description:     item.Description,
			HSCode:          item.HSCode,
			Quantity:        item.Quantity,
			UnitValue:       item.UnitValue,
			CountryOfOrigin: item.CountryOfOrigin,
		}
	}

	documents := make([]dto.ComplianceDocument, len(declaration.Documents))
	for i, document := range declaration.Documents {
		documents[i] = dto.ComplianceDocument{
			ID:            document.ID,
			DeclarationID: document.DeclarationID,
			DocumentType:  document.DocumentType.String(),
			FileName:      document.FileName,
			UploadedAt:    document.UploadedAt,
		}
	}

	return dto.CustomsDeclaration{
		ID:                     declaration.ID,
		ShipmentID:             declaration.ShipmentID,
		Status:                 declaration.Status.String(),
		DeclarationType:        declaration.DeclarationType.String(),
		DestinationCountry:     declaration.DestinationCountry,
		TotalDeclaredValue:     declaration.TotalDeclaredValue,
		ContainsBatteries:      declaration.ContainsBatteries,
		ContainsLiquids:        declaration.ContainsLiquids,
		ContainsDangerousGoods: declaration.ContainsDangerousGoods,
		SubmittedAt:            declaration.SubmittedAt,
		ApprovedAt:             declaration.ApprovedAt,
		ClearedAt:              declaration.ClearedAt,
		ApprovedBy:             declaration.ApprovedBy,
		CustomsReference:       declaration.CustomsReference,
		RejectionReason:        declaration.RejectionReason,
		Items:                  items,
		Documents:              documents,
		CreatedAt:              declaration.CreatedAt,
		UpdatedAt:              declaration.UpdatedAt,
	}
}
