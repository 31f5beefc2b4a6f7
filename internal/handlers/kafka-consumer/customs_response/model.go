package customs_response

// decisionEvent — сообщение от таможенной системы с решением по декларации.
type decisionEvent struct {
	DeclarationID    int64  `json:"declaration_id"`
	Decision         string `json:"decision"`
	ApprovedBy       string `json:"approved_by"`
	CustomsReference string `json:"customs_reference"`
	Reason           string `json:"reason"`
}

const (
	decisionApproved = "approved"
	decisionRejected = "rejected"
)
