package customs

import "github.com/shauritanga/rtexpress-sub000/internal/entities"

func ToDomain(d *DeclarationDB) *entities.CustomsDeclaration {
	if d == nil {
		return nil
	}
	declaration := &entities.CustomsDeclaration{
		ID:                     d.ID,
		ShipmentID:             d.ShipmentID,
		Status:                 entities.CustomsStatusType(d.Status),
		DeclarationType:        entities.CustomsDeclarationType(d.DeclarationType),
		DestinationCountry:     d.DestinationCountry,
		TotalDeclaredValue:     d.TotalDeclaredValue,
		ContainsBatteries:      d.ContainsBatteries,
		ContainsLiquids:        d.ContainsLiquids,
		ContainsDangerousGoods: d.ContainsDangerousGoods,
		SubmittedAt:            d.SubmittedAt,
		ApprovedAt:             d.ApprovedAt,
		ClearedAt:              d.ClearedAt,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}

	if d.ApprovedBy != nil {
		declaration.ApprovedBy = *d.ApprovedBy
	}
	if d.CustomsReference != nil {
		declaration.CustomsReference = *d.CustomsReference
	}
	if d.RejectionReason != nil {
		declaration.RejectionReason = *d.RejectionReason
	}

	return declaration
}

func FromDomainModify(d *entities.CustomsDeclarationModify) *DeclarationModifyDB {
	if d == nil {
		return nil
	}
	declarationModifyDB := &DeclarationModifyDB{
		ID:                     d.ID,
		ShipmentID:             d.ShipmentID,
		DestinationCountry:     d.DestinationCountry,
		TotalDeclaredValue:     d.TotalDeclaredValue,
		ContainsBatteries:      d.ContainsBatteries,
		ContainsLiquids:        d.ContainsLiquids,
		ContainsDangerousGoods: d.ContainsDangerousGoods,
		SubmittedAt:            d.SubmittedAt,
		ApprovedAt:             d.ApprovedAt,
		ClearedAt:              d.ClearedAt,
		ApprovedBy:             d.ApprovedBy,
		CustomsReference:       d.CustomsReference,
		RejectionReason:        d.RejectionReason,
	}

	if d.Status != nil {
		status := d.Status.String()
		declarationModifyDB.Status = &status
	}
	if d.DeclarationType != nil {
		declarationType := d.DeclarationType.String()
		declarationModifyDB.DeclarationType = &declarationType
	}

	return declarationModifyDB
}

func ToItemDomain(i *ItemDB) *entities.CustomsItem {
	if i == nil {
		return nil
	}
	return &entities.CustomsItem{
		ID:              i.ID,
		DeclarationID:   i.DeclarationID,
		Description:     i.Description,
		HSCode:          i.HSCode,
		Quantity:        i.Quantity,
		UnitValue:       i.UnitValue,
		CountryOfOrigin: i.CountryOfOrigin,
	}
}

func ToItemDomainList(itemsDB []ItemDB) []entities.CustomsItem {
	items := make([]entities.CustomsItem, 0, len(itemsDB))
	for i := range itemsDB {
		items = append(items, *ToItemDomain(&itemsDB[i]))
	}
	return items
}

func ToDocumentDomain(d *DocumentDB) *entities.ComplianceDocument {
	if d == nil {
		return nil
	}
	return &entities.ComplianceDocument{
		ID:            d.ID,
		DeclarationID: d.DeclarationID,
		DocumentType:  entities.ComplianceDocumentType(d.DocumentType),
		FileName:      d.FileName,
		UploadedAt:    d.UploadedAt,
	}
}

func ToDocumentDomainList(documentsDB []DocumentDB) []entities.ComplianceDocument {
	documents := make([]entities.ComplianceDocument, 0, len(documentsDB))
	for i := range documentsDB {
		documents = append(documents, *ToDocumentDomain(&documentsDB[i]))
	}
	return documents
}
