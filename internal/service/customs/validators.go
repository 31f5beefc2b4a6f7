package customs

import (
	"strings"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
)

func isValidDeclarationType(declarationType entities.CustomsDeclarationType) bool {
	switch declarationType {
	case entities.DeclarationCommercial,
		entities.DeclarationGift,
		entities.DeclarationSample,
		entities.DeclarationReturn:
		return true
	}
	return false
}

// Код страны назначения - ISO 3166-1 alpha-2.
func isValidCountry(country string) bool {
	if len(country) != 2 {
		return false
	}
	for _, r := range strings.ToUpper(country) {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isValidDocumentType(documentType entities.ComplianceDocumentType) bool {
	switch documentType {
	case entities.DocCommercialInvoice,
		entities.DocCertificateOfOrigin,
		entities.DocBatterySafety,
		entities.DocMSDSSheet,
		entities.DocDangerousGoods:
		return true
	}
	return false
}

func areValidItems(items []entities.CustomsItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" ||
			strings.TrimSpace(item.HSCode) == "" ||
			item.Quantity <= 0 ||
			item.UnitValue < 0 {
			return false
		}
	}
	return true
}
