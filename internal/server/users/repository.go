package users

import "context"

// Repository persists user identity records. All mutating operations are
// atomic; absent rows surface as common.ErrorNotFound, duplicate logins as
// common.ErrorLoginAlreadyExists.
type Repository interface {
	// ExistsByLogin reports whether a user with the login exists. It is an
	// advisory check only; the unique constraint on login is authoritative.
	ExistsByLogin(ctx context.Context, login string) (bool, error)

	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByLogin(ctx context.Context, login string) (*User, error)
	UpdatePasswordHash(ctx context.Context, id int64, newHash string) error
	Delete(ctx context.Context, id int64) error
}
