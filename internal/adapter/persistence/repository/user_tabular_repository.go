package repository

import (
	"context"
	"sync"
	"time"

	"urb_denuncias/internal/adapter/persistence/tabular"
	"urb_denuncias/internal/domain/entities"
	"urb_denuncias/internal/usecase/interfaces"
)

var userFields = []string{colUsername, colPasswordHash, colDisplayName, colRole}

const (
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colDisplayName  = "display_name"
	colRole         = "role"
)

// UserTabularRepository persists User principals through the same tabular
// machinery as complaints, in their own logical table.

type UserTabularRepository struct {
	table tabular.Table

	mu    sync.Mutex
	cache *rowCache[entities.User]
}

var _ interfaces.IUserRepository = (*UserTabularRepository)(nil)

func NewUserTabularRepository(table tabular.Table) *UserTabularRepository {
	return &UserTabularRepository{
		table: table,
		cache: newRowCache[entities.User](cacheTTLFromEnv(), nil),
	}
}

func (r *UserTabularRepository) LoadAll(ctx context.Context) ([]entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if items, ok := r.cache.get(now); ok {
		return items, nil
	}

	header, rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	schema := tabular.NewSchema(header)
	if schema.Empty() {
		schema = tabular.NewSchema(userFields)
	}

	out := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.User{
			Username:     schema.Value(row, colUsername),
			PasswordHash: schema.Value(row, colPasswordHash),
			DisplayName:  schema.Value(row, colDisplayName),
			Role:         entities.UserRole(schema.Value(row, colRole)),
		})
	}

	r.cache.set(out, now)
	return out, nil
}

func (r *UserTabularRepository) Insert(ctx context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header, _, err := r.table.ReadAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	schema := tabular.NewSchema(header)
	if schema.Empty() {
		schema = tabular.NewSchema(userFields)
		if err := r.table.WriteHeader(ctx, schema.Header()); err != nil {
			return entities.User{}, err
		}
	}

	row := schema.Row(map[string]string{
		colUsername:     u.Username,
		colPasswordHash: u.PasswordHash,
		colDisplayName:  u.DisplayName,
		colRole:         string(u.Role),
	}, nil)
	if err := r.table.Append(ctx, row); err != nil {
		return entities.User{}, err
	}

	r.cache.invalidate()
	return u, nil
}
