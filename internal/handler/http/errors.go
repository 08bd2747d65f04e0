// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrUnknownOutcome is returned by statusFromOutcome for an outcome kind it
// has no status for. It signals a programming error, and the client
// receives 500 Internal Server Error.
var ErrUnknownOutcome = errors.New("unknown outcome kind")

// errTrailingData is reported to the service when a request body continues
// after its JSON value.
var errTrailingData = errors.New("unexpected data after JSON payload")
