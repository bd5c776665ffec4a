package repository

import (
	"context"
	"database/sql"
	"fmt"

	um "user_management"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of UserStore interface at compile time.
var _ UserStore = (*UserSQLite)(nil)

const (
	selectUsersSQL = `SELECT id, first_name, last_name, email, department FROM users ORDER BY id ASC`
	insertUserSQL  = `INSERT INTO users (first_name, last_name, email, department) VALUES (?, ?, ?, ?)`
	updateUserSQL  = `UPDATE users SET first_name = ?, last_name = ?, email = ?, department = ? WHERE id = ?`
	deleteUserSQL  = `DELETE FROM users WHERE id = ?`
	countUsersSQL  = `SELECT COUNT(*) FROM users`
)

// List returns every user in id order.
func (r *UserSQLite) List(ctx context.Context) ([]um.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]um.User, 0, 16)
	for rows.Next() {
		var u um.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Department); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// Create inserts a user and returns it with the assigned id.
func (r *UserSQLite) Create(ctx context.Context, f um.UserFields) (um.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, f.FirstName, f.LastName, f.Email, f.Department)
	if err != nil {
		return um.User{}, fmt.Errorf("insert user %q: %w", f.Email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return um.User{}, fmt.Errorf("get last insert id for user %q: %w", f.Email, err)
	}
	return f.WithID(int(lastID)), nil
}

// Update overwrites every field of the user with u.ID.
func (r *UserSQLite) Update(ctx context.Context, u um.User) (um.User, error) {
	res, err := r.db.ExecContext(ctx, updateUserSQL, u.FirstName, u.LastName, u.Email, u.Department, u.ID)
	if err != nil {
		return um.User{}, fmt.Errorf("update user %d: %w", u.ID, err)
	}
	if err := expectOneRow(res, u.ID); err != nil {
		return um.User{}, err
	}
	return u, nil
}

// Delete removes the user with the given id.
func (r *UserSQLite) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return expectOneRow(res, id)
}

func (r *UserSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countUsersSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func expectOneRow(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}
