package entities

import "time"

type CustomsDeclaration struct {
	ID                     int64
	ShipmentID             int64
	Status                 CustomsStatusType
	DeclarationType        CustomsDeclarationType
	DestinationCountry     string
	TotalDeclaredValue     float64
	ContainsBatteries      bool
	ContainsLiquids        bool
	ContainsDangerousGoods bool
	SubmittedAt            *time.Time
	ApprovedAt             *time.Time
	ClearedAt              *time.Time
	ApprovedBy             string
	CustomsReference       string
	RejectionReason        string
	Items                  []CustomsItem
	Documents              []ComplianceDocument
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type CustomsStatusType string

const (
	CustomsDraft     CustomsStatusType = "draft"
	CustomsSubmitted CustomsStatusType = "submitted"
	CustomsApproved  CustomsStatusType = "approved"
	CustomsRejected  CustomsStatusType = "rejected"
	CustomsCleared   CustomsStatusType = "cleared"
)

func (s CustomsStatusType) String() string {
	return string(s)
}

func (s CustomsStatusType) IsTerminal() bool {
	return s == CustomsRejected || s == CustomsCleared
}

type CustomsDeclarationType string

const (
	DeclarationCommercial CustomsDeclarationType = "commercial"
	DeclarationGift       CustomsDeclarationType = "gift"
	DeclarationSample     CustomsDeclarationType = "sample"
	DeclarationReturn     CustomsDeclarationType = "return"
)

func (t CustomsDeclarationType) String() string {
	return string(t)
}

type CustomsDeclarationModify struct {
	ID                     *int64
	ShipmentID             *int64
	Status                 *CustomsStatusType
	DeclarationType        *CustomsDeclarationType
	DestinationCountry     *string
	TotalDeclaredValue     *float64
	ContainsBatteries      *bool
	ContainsLiquids        *bool
	ContainsDangerousGoods *bool
	SubmittedAt            *time.Time
	ApprovedAt             *time.Time
	ClearedAt              *time.Time
	ApprovedBy             *string
	CustomsReference       *string
	RejectionReason        *string
}

type CustomsItem struct {
	ID              int64
	DeclarationID   int64
	Description     string
	HSCode          string
	Quantity        int
	UnitValue       float64
	CountryOfOrigin string
}

// ComplianceDocumentType - тип загруженного таможенного документа.
type ComplianceDocumentType string

const (
	DocCommercialInvoice    ComplianceDocumentType = "commercial_invoice"
	DocCertificateOfOrigin  ComplianceDocumentType = "certificate_of_origin"
	DocBatterySafety        ComplianceDocumentType = "battery_safety_document"
	DocMSDSSheet            ComplianceDocumentType = "msds_sheet"
	DocDangerousGoods       ComplianceDocumentType = "dangerous_goods_declaration"
)

func (t ComplianceDocumentType) String() string {
	return string(t)
}

type ComplianceDocument struct {
	ID            int64
	DeclarationID int64
	DocumentType  ComplianceDocumentType
	FileName      string
	UploadedAt    time.Time
}

// CustomsCharges - оценка пошлины и налога по декларации.
type CustomsCharges struct {
	DutyAmount  float64
	TaxAmount   float64
	TotalAmount float64
	Currency    string
}
