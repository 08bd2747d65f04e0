// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the products API.
//
// A command and its operands are parsed from the positional arguments left
// after the configuration flags, executed through adapter.ProductAdapter and
// printed as JSON.
package client
