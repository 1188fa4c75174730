package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertProduct = `
INSERT INTO products (id, name, price, category, sizes, stock, description, images, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, price, category, sizes, stock, description, images, featured, created_at, updated_at
`

type InsertProductParams struct {
	ID          uuid.UUID
	Name        string
	Price       pgtype.Numeric
	Category    string
	Sizes       []string
	Stock       int32
	Description pgtype.Text
	Images      []string
	Featured    string
}

func (q *Queries) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(c, insertProduct,
		arg.ID,
		arg.Name,
		arg.Price,
		arg.Category,
		arg.Sizes,
		arg.Stock,
		arg.Description,
		arg.Images,
		arg.Featured,
	)
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Category,
		&p.Sizes,
		&p.Stock,
		&p.Description,
		&p.Images,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const getProducts = `
SELECT id, name, price, category, sizes, stock, description, images, featured, created_at, updated_at
FROM products
ORDER BY created_at DESC
`

func (q *Queries) GetProducts(c context.Context) ([]Product, error) {
	rows, err := q.db.Query(c, getProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		var p Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Category,
			&p.Sizes,
			&p.Stock,
			&p.Description,
			&p.Images,
			&p.Featured,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const findProductById = `
SELECT id, name, price, category, sizes, stock, description, images, featured, created_at, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRow(c, findProductById, id)
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Category,
		&p.Sizes,
		&p.Stock,
		&p.Description,
		&p.Images,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const getFeaturedProducts = `
SELECT id, name, price, category, sizes, stock, description, images, featured, created_at, updated_at
FROM products
WHERE featured = $1
ORDER BY created_at DESC
`

func (q *Queries) GetFeaturedProducts(c context.Context, featured string) ([]Product, error) {
	rows, err := q.db.Query(c, getFeaturedProducts, featured)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		var p Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Category,
			&p.Sizes,
			&p.Stock,
			&p.Description,
			&p.Images,
			&p.Featured,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const updateProduct = `
UPDATE products
SET name        = $2,
    price       = $3,
    category    = $4,
    sizes       = $5,
    stock       = $6,
    description = $7,
    images      = $8,
    featured    = $9,
    updated_at  = now()
WHERE id = $1
RETURNING id, name, price, category, sizes, stock, description, images, featured, created_at, updated_at
`

type UpdateProductParams struct {
	ID          uuid.UUID
	Name        string
	Price       pgtype.Numeric
	Category    string
	Sizes       []string
	Stock       int32
	Description pgtype.Text
	Images      []string
	Featured    string
}

func (q *Queries) UpdateProduct(c context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(c, updateProduct,
		arg.ID,
		arg.Name,
		arg.Price,
		arg.Category,
		arg.Sizes,
		arg.Stock,
		arg.Description,
		arg.Images,
		arg.Featured,
	)
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Category,
		&p.Sizes,
		&p.Stock,
		&p.Description,
		&p.Images,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const deleteProductById = `
DELETE FROM products
WHERE id = $1
`

func (q *Queries) DeleteProductById(c context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(c, deleteProductById, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
