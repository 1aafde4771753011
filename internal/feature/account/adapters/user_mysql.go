// Package adapters provides the repository implementations for the account feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"user_backend/internal/feature/account/domain/entity"
	"user_backend/internal/feature/account/usecase"
)

// userMySQL is the MySQL implementation of the UserRepository interface.
// It uses GORM for database operations.
type userMySQL struct {
	db *gorm.DB
}

// Compile-time check that userMySQL implements UserRepository.
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new userMySQL instance with the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create inserts the user into the database. The unique index on email makes
// the insert the authoritative uniqueness check: a duplicate insert fails
// atomically even when two requests raced past the workflow's pre-check.
// Returns usecase.ErrEmailAlreadyExists on a duplicate email.
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		// SQLite (used in tests) reports unique violations as a plain error
		// string; GORM exposes both through ErrDuplicatedKey when the
		// dialector translates them.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// Returns usecase.ErrUserNotFound if the user does not exist.
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// Returns usecase.ErrUserNotFound if the user does not exist.
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes the user with the given ID. The delete is hard: the row is
// gone and the email becomes registrable again.
// Returns usecase.ErrUserNotFound if no row was removed.
func (r *userMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
