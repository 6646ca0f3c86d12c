package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const findUserByEmail = `SELECT user_id, email, password FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, findUserByEmail, email)
	if err != nil {
		return User{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
}

const createUser = `INSERT INTO users (email, password) VALUES ($1, $2) RETURNING user_id`

type CreateUserParams struct {
	Email    string
	Password string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (int64, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	var id int64
	err := db.QueryRow(ctx, createUser, arg.Email, arg.Password).Scan(&id)
	return id, err
}
