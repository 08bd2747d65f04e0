// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product is a catalogue item as stored and returned by the API.
//
// ID is assigned by the store on creation and never changes afterwards;
// updates replace Name, Maker and Price in place.
type Product struct {
	// ID is the store-assigned identifier of the product.
	ID int64 `json:"id"`

	// Name is the display name of the product. Never blank.
	Name string `json:"name"`

	// Maker is the manufacturer of the product. Never blank.
	Maker string `json:"maker"`

	// Price is the product price in the smallest currency unit.
	// Always strictly positive.
	Price int64 `json:"price"`
}

// ProductInput is the candidate data a caller supplies when creating or
// updating a product. It becomes authoritative only after validation.
type ProductInput struct {
	Name  string `json:"name"`
	Maker string `json:"maker"`
	Price int64  `json:"price"`
}

// ToProduct builds a [Product] with the given id from the input fields.
func (p ProductInput) ToProduct(id int64) Product {
	return Product{
		ID:    id,
		Name:  p.Name,
		Maker: p.Maker,
		Price: p.Price,
	}
}
