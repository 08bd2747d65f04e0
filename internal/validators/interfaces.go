// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the structural checks applied to incoming payloads
// before they reach storage.
//
// A Validator receives the value to check and, optionally, the names of the
// fields to restrict the check to. Rule violations of a product payload are
// collected into a single *ValidationError so a client sees every problem at
// once; programming mistakes (unsupported type, unknown field name) are
// reported with their own sentinels.
//
// The product service always validates whole payloads and never passes field
// names; field scoping serves callers that re-check a single field, such as
// the package tests.
package validators

import "context"

// Validator checks a value against structural rules. Fields, when given,
// limit the check to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
