package customs

import "time"

type DeclarationDB struct {
	ID                     int64
	ShipmentID             int64
	Status                 string
	DeclarationType        string
	DestinationCountry     string
	TotalDeclaredValue     float64
	ContainsBatteries      bool
	ContainsLiquids        bool
	ContainsDangerousGoods bool
	SubmittedAt            *time.Time
	ApprovedAt             *time.Time
	ClearedAt              *time.Time
	ApprovedBy             *string
	CustomsReference       *string
	RejectionReason        *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type DeclarationModifyDB struct {
	ID                     *int64
	ShipmentID             *int64
	Status                 *string
	DeclarationType        *string
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

type ItemDB struct {
	ID              int64
	DeclarationID   int64
	Description     string
	HSCode          string
	Quantity        int
	UnitValue       float64
	CountryOfOrigin string
}

type DocumentDB struct {
	ID            int64
	DeclarationID int64
	DocumentType  string
	FileName      string
	UploadedAt    time.Time
}
