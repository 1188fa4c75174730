package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrder = `
INSERT INTO orders (id, customer, email, phone, address, total, status, items, date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, customer, email, phone, address, total, status, items, date, created_at, updated_at
`

type InsertOrderParams struct {
	ID       uuid.UUID
	Customer string
	Email    string
	Phone    string
	Address  string
	Total    pgtype.Numeric
	Status   OrderStatus
	Items    int32
	Date     pgtype.Date
}

func (q *Queries) InsertOrder(c context.Context, arg InsertOrderParams) (Order, error) {
	row := q.db.QueryRow(c, insertOrder,
		arg.ID,
		arg.Customer,
		arg.Email,
		arg.Phone,
		arg.Address,
		arg.Total,
		arg.Status,
		arg.Items,
		arg.Date,
	)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.Customer,
		&o.Email,
		&o.Phone,
		&o.Address,
		&o.Total,
		&o.Status,
		&o.Items,
		&o.Date,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const getOrders = `
SELECT id, customer, email, phone, address, total, status, items, date, created_at, updated_at
FROM orders
ORDER BY created_at DESC
`

func (q *Queries) GetOrders(c context.Context) ([]Order, error) {
	rows, err := q.db.Query(c, getOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []Order{}
	for rows.Next() {
		var o Order
		err := rows.Scan(
			&o.ID,
			&o.Customer,
			&o.Email,
			&o.Phone,
			&o.Address,
			&o.Total,
			&o.Status,
			&o.Items,
			&o.Date,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const findOrderById = `
SELECT id, customer, email, phone, address, total, status, items, date, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) FindOrderById(c context.Context, id uuid.UUID) (Order, error) {
	row := q.db.QueryRow(c, findOrderById, id)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.Customer,
		&o.Email,
		&o.Phone,
		&o.Address,
		&o.Total,
		&o.Status,
		&o.Items,
		&o.Date,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const updateOrderStatus = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, customer, email, phone, address, total, status, items, date, created_at, updated_at
`

type UpdateOrderStatusParams struct {
	ID     uuid.UUID
	Status OrderStatus
}

func (q *Queries) UpdateOrderStatus(c context.Context, arg UpdateOrderStatusParams) (Order, error) {
	row := q.db.QueryRow(c, updateOrderStatus, arg.ID, arg.Status)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.Customer,
		&o.Email,
		&o.Phone,
		&o.Address,
		&o.Total,
		&o.Status,
		&o.Items,
		&o.Date,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const deleteOrderById = `
DELETE FROM orders
WHERE id = $1
`

func (q *Queries) DeleteOrderById(c context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(c, deleteOrderById, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
