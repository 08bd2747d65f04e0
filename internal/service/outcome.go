package service

import (
	"github.com/MKhiriev/go-product-keeper/models"
)

// OutcomeKind classifies the result of a product operation.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeNotFound
	OutcomeInvalidPayload
	OutcomeUnauthorized
	OutcomeMissingToken
	OutcomeInternal
)

var outcomeKindNames = map[OutcomeKind]string{
	OutcomeSuccess:        "success",
	OutcomeNotFound:       "not_found",
	OutcomeInvalidPayload: "invalid_payload",
	OutcomeUnauthorized:   "unauthorized",
	OutcomeMissingToken:   "missing_token",
	OutcomeInternal:       "internal",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Operation names the product operation that produced an Outcome.
type Operation int

const (
	OperationList Operation = iota + 1
	OperationGet
	OperationCreate
	OperationUpdate
	OperationDelete
)

var operationNames = map[Operation]string{
	OperationList:   "list",
	OperationGet:    "get",
	OperationCreate: "create",
	OperationUpdate: "update",
	OperationDelete: "delete",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the result of one product operation. Which payload fields are
// set depends on Kind:
//   - Success: Product (get, create, update) or Products (list); nothing for delete
//   - NotFound: ID
//   - InvalidPayload: Fields
//   - Unauthorized, MissingToken, Internal: Err, for logging only
type Outcome struct {
	Kind      OutcomeKind
	Operation Operation

	Product  models.Product
	Products []models.Product
	ID       int64
	Fields   map[string]string

	Err error
}

func success(op Operation) Outcome {
	return Outcome{Kind: OutcomeSuccess, Operation: op}
}

func notFound(op Operation, id int64) Outcome {
	return Outcome{Kind: OutcomeNotFound, Operation: op, ID: id}
}

func invalidPayload(op Operation, fields map[string]string, err error) Outcome {
	return Outcome{Kind: OutcomeInvalidPayload, Operation: op, Fields: fields, Err: err}
}

func failure(kind OutcomeKind, op Operation, err error) Outcome {
	return Outcome{Kind: kind, Operation: op, Err: err}
}
