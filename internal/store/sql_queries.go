package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-product-keeper/migrations"
	"github.com/MKhiriev/go-product-keeper/models"
)

const productsTable = "products"

var productColumns = []string{"id", "name", "maker", "price"}

// productQueries builds the product statements for one placeholder format.
// Postgres uses $n, SQLite uses ?.
type productQueries struct {
	builder sq.StatementBuilderType
}

func newProductQueries(dialect string) productQueries {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		format = sq.Dollar
	}

	return productQueries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q productQueries) list() (string, []any, error) {
	return q.builder.
		Select(productColumns...).
		From(productsTable).
		OrderBy("id").
		ToSql()
}

func (q productQueries) get(id int64) (string, []any, error) {
	return q.builder.
		Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q productQueries) create(input models.ProductInput) (string, []any, error) {
	return q.builder.
		Insert(productsTable).
		Columns("name", "maker", "price").
		Values(input.Name, input.Maker, input.Price).
		Suffix(returningProduct()).
		ToSql()
}

func (q productQueries) update(id int64, input models.ProductInput) (string, []any, error) {
	return q.builder.
		Update(productsTable).
		SetMap(map[string]any{
			"name":  input.Name,
			"maker": input.Maker,
			"price": input.Price,
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returningProduct()).
		ToSql()
}

func (q productQueries) delete(id int64) (string, []any, error) {
	return q.builder.
		Delete(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func returningProduct() string {
	return "RETURNING id, name, maker, price"
}
