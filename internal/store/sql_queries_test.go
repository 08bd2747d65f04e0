// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-product-keeper/migrations"
	"github.com/MKhiriev/go-product-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_productQueries_PlaceholderFormat(t *testing.T) {
	tests := []struct {
		dialect     string
		placeholder string
		absent      string
	}{
		{dialect: migrations.DialectPostgres, placeholder: "$1", absent: "?"},
		{dialect: migrations.DialectSQLite, placeholder: "?", absent: "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			query, args, err := newProductQueries(tt.dialect).get(5)

			require.NoError(t, err)
			assert.Contains(t, query, tt.placeholder)
			assert.NotContains(t, query, tt.absent)
			assert.Equal(t, []any{int64(5)}, args)
		})
	}
}

func Test_productQueries_PostgresPlaceholders(t *testing.T) {
	q := newProductQueries(migrations.DialectPostgres)
	input := models.ProductInput{Name: "Kit", Maker: "CatWorld", Price: 5000}

	tests := []struct {
		name  string
		build func() (string, []any, error)
		want  []string
	}{
		{name: "get", build: func() (string, []any, error) { return q.get(1) }, want: []string{"$1"}},
		{name: "create", build: func() (string, []any, error) { return q.create(input) }, want: []string{"$1", "$2", "$3"}},
		{name: "update", build: func() (string, []any, error) { return q.update(1, input) }, want: []string{"$1", "$2", "$3", "$4"}},
		{name: "delete", build: func() (string, []any, error) { return q.delete(1) }, want: []string{"$1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := tt.build()

			require.NoError(t, err)
			for _, placeholder := range tt.want {
				assert.Contains(t, query, placeholder)
			}
			assert.NotContains(t, query, "?")
		})
	}
}

func Test_productQueries_List(t *testing.T) {
	query, args, err := newProductQueries(migrations.DialectPostgres).list()

	require.NoError(t, err)
	assert.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select id, name, maker, price")
	assert.Contains(t, q, "from products")
	assert.Contains(t, q, "order by id")
	assert.NotContains(t, q, "where")
}

func Test_productQueries_Create(t *testing.T) {
	input := models.ProductInput{Name: "Kit", Maker: "Kat", Price: 100}

	query, args, err := newProductQueries(migrations.DialectPostgres).create(input)

	require.NoError(t, err)
	assert.Equal(t, []any{"Kit", "Kat", int64(100)}, args)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into products"))
	assert.Contains(t, q, "returning id, name, maker, price")
	assert.Contains(t, q, "(name,maker,price)")
}

func Test_productQueries_Update(t *testing.T) {
	input := models.ProductInput{Name: "Kitty", Maker: "Kat", Price: 100}

	query, args, err := newProductQueries(migrations.DialectSQLite).update(1, input)

	require.NoError(t, err)
	// SET columns are sorted, id comes last
	assert.Equal(t, []any{"Kat", "Kitty", int64(100), int64(1)}, args)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update products set"))
	assert.Contains(t, q, "where id = ?")
	assert.Contains(t, q, "returning id, name, maker, price")
}

func Test_productQueries_Delete(t *testing.T) {
	query, args, err := newProductQueries(migrations.DialectPostgres).delete(9)

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM products WHERE id = $1", query)
	assert.Equal(t, []any{int64(9)}, args)
}
