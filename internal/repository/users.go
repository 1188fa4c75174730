package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertUser = `
INSERT INTO users (id, name, email, password, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, email, password, role, created_at, updated_at
`

type InsertUserParams struct {
	ID       uuid.UUID
	Name     pgtype.Text
	Email    string
	Password string
	Role     string
}

func (q *Queries) InsertUser(c context.Context, arg InsertUserParams) (User, error) {
	row := q.db.QueryRow(c, insertUser, arg.ID, arg.Name, arg.Email, arg.Password, arg.Role)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const findUserByEmail = `
SELECT id, name, email, password, role, created_at, updated_at
FROM users
WHERE email = $1
`

func (q *Queries) FindUserByEmail(c context.Context, email string) (User, error) {
	row := q.db.QueryRow(c, findUserByEmail, email)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const findUserById = `
SELECT id, name, email, password, role, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) FindUserById(c context.Context, id uuid.UUID) (User, error) {
	row := q.db.QueryRow(c, findUserById, id)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const countUsersByRole = `
SELECT count(*)
FROM users
WHERE role = $1
`

func (q *Queries) CountUsersByRole(c context.Context, role string) (int64, error) {
	row := q.db.QueryRow(c, countUsersByRole, role)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateUserRoleByEmail = `
UPDATE users
SET role = $2, updated_at = now()
WHERE email = $1
RETURNING id, name, email, password, role, created_at, updated_at
`

type UpdateUserRoleByEmailParams struct {
	Email string
	Role  string
}

func (q *Queries) UpdateUserRoleByEmail(
	c context.Context,
	arg UpdateUserRoleByEmailParams,
) (User, error) {
	row := q.db.QueryRow(c, updateUserRoleByEmail, arg.Email, arg.Role)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
