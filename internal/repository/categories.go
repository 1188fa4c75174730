package repository

import (
	"context"

	"github.com/google/uuid"
)

const getCategories = `
SELECT id, name, created_at
FROM categories
ORDER BY name
`

func (q *Queries) GetCategories(c context.Context) ([]Category, error) {
	rows, err := q.db.Query(c, getCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := []Category{}
	for rows.Next() {
		var cat Category
		err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

const findCategoryByName = `
SELECT id, name, created_at
FROM categories
WHERE name = $1
`

func (q *Queries) FindCategoryByName(c context.Context, name string) (Category, error) {
	row := q.db.QueryRow(c, findCategoryByName, name)
	var cat Category
	err := row.Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	return cat, err
}

const insertCategory = `
INSERT INTO categories (id, name)
VALUES ($1, $2)
RETURNING id, name, created_at
`

func (q *Queries) InsertCategory(c context.Context, id uuid.UUID, name string) (Category, error) {
	row := q.db.QueryRow(c, insertCategory, id, name)
	var cat Category
	err := row.Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	return cat, err
}
