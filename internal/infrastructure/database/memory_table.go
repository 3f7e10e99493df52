package database

import (
	"context"
	"sync"

	"urb_denuncias/internal/adapter/persistence/tabular"
)

// MemoryTable is an in-process Table. It backs tests and the zero-config
// development mode (TABLE_BACKEND=memory), where records do not survive a
// restart.
type MemoryTable struct {
	mu     sync.Mutex
	header []string
	rows   [][]string
}

var _ tabular.Table = (*MemoryTable)(nil)

func NewMemoryTable() *MemoryTable { return &MemoryTable{} }

func (t *MemoryTable) ReadAll(_ context.Context) ([]string, [][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	header := append([]string(nil), t.header...)
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]string(nil), row...)
	}
	return header, rows, nil
}

func (t *MemoryTable) WriteHeader(_ context.Context, header []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.header = append([]string(nil), header...)
	return nil
}

func (t *MemoryTable) Append(_ context.Context, row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

func (t *MemoryTable) RewriteAll(_ context.Context, header []string, rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.header = append([]string(nil), header...)
	t.rows = make([][]string, len(rows))
	for i, row := range rows {
		t.rows[i] = append([]string(nil), row...)
	}
	return nil
}
