// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// product server's services and HTTP handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// throughout the API and its tests.
package app

const (
	// MsgProductNotFound is returned when no product has the requested id.
	MsgProductNotFound = "product not found"

	// MsgInvalidPayload is returned when the product payload cannot be
	// decoded or violates a field rule.
	MsgInvalidPayload = "invalid product payload"

	// MsgMalformedJSON describes a body that is not a JSON product object.
	MsgMalformedJSON = "malformed JSON payload"

	// MsgBodyRequired describes a request that carries no body at all.
	MsgBodyRequired = "request body is required"

	// MsgMissingToken is returned when a mutating request has no bearer
	// token in its Authorization header.
	MsgMissingToken = "authorization token is missing"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is present
	// but cannot be verified or has expired.
	MsgTokenIsExpiredOrInvalid = "authorization token is invalid or expired"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
