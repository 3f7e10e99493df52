package interfaces

import (
	"context"

	"urb_denuncias/internal/domain/entities"
)

// IUserRepository abstracts tabular persistence for User. Users live in their
// own logical table but go through the same record-store machinery as
// complaints. Uniqueness checks are the caller's job: the medium has no
// indexes to enforce them.

type IUserRepository interface {
	LoadAll(ctx context.Context) ([]entities.User, error)
	Insert(ctx context.Context, u entities.User) (entities.User, error)
}
