package customs

import "github.com/shauritanga/rtexpress-sub000/internal/entities"

// Порог, выше которого требуется сертификат происхождения.
const originCertificateThreshold = 2500.0

// RequiredDocuments возвращает типы документов, обязательные для подачи
// конкретной декларации. Набор зависит от содержимого отправления.
func RequiredDocuments(declaration *entities.CustomsDeclaration) []entities.ComplianceDocumentType {
	required := []entities.ComplianceDocumentType{entities.DocCommercialInvoice}

	if declaration.ContainsBatteries {
		required = append(required, entities.DocBatterySafety)
	}
	if declaration.ContainsLiquids {
		required = append(required, entities.DocMSDSSheet)
	}
	if declaration.ContainsDangerousGoods {
		required = append(required, entities.DocDangerousGoods)
	}
	if declaration.TotalDeclaredValue > originCertificateThreshold {
		required = append(required, entities.DocCertificateOfOrigin)
	}

	return required
}

// MissingDocuments - обязательные типы, для которых нет загруженного документа.
func MissingDocuments(declaration *entities.CustomsDeclaration) []entities.ComplianceDocumentType {
	uploaded := make(map[entities.ComplianceDocumentType]bool, len(declaration.Documents))
	for _, doc := range declaration.Documents {
		uploaded[doc.DocumentType] = true
	}

	missing := make([]entities.ComplianceDocumentType, 0)
	for _, docType := range RequiredDocuments(declaration) {
		if !uploaded[docType] {
			missing = append(missing, docType)
		}
	}
	return missing
}
