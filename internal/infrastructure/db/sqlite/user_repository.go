package sqlite

import (
	"context"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/salonelidia/salon-system/internal/core/domain"
)

const findUserByUsernameQuery = `
	SELECT id, username, password, role, first_name, phone, points, created_at
	FROM users
	WHERE username = ?`

// FindByUsername matches the username exactly; SQLite's default BINARY
// collation makes the comparison case-sensitive.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := sqlscan.Get(ctx, r.db, &u, findUserByUsernameQuery, username); err != nil {
		if sqlscan.NotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("find user", err)
	}
	return &u, nil
}

// Create inserts user and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, role, first_name, phone, points, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Role.String(), user.FirstName, user.Phone, user.Points, formatTime(user.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, storageErr("insert user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("insert user id", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}
