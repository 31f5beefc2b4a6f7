package customs

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidDeclarationType = errors.New("invalid declaration type")
	ErrInvalidCountry         = errors.New("invalid destination country")
	ErrInvalidItems           = errors.New("declaration must contain at least one item")
	ErrInvalidDocumentType    = errors.New("invalid compliance document type")

	ErrDeclarationNotFound     = errors.New("customs declaration not found")
	ErrDeclarationExists       = errors.New("shipment already has a customs declaration")
	ErrIncompleteDeclaration   = errors.New("declaration is incomplete")
	ErrInvalidStateTransition  = errors.New("operation is not legal from the current declaration status")
	ErrDeclarationNotEditable  = errors.New("declaration can only be edited in draft status")
)
