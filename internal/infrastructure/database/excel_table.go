package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"urb_denuncias/internal/adapter/persistence/tabular"
)

// Every ExcelTable sharing a workbook path shares one lock, so operations from
// different logical tables (complaints, users) never tear the same file with
// interleaved open/save cycles.
var (
	workbookLocksMu sync.Mutex
	workbookLocks   = map[string]*sync.Mutex{}
)

func workbookLock(path string) *sync.Mutex {
	workbookLocksMu.Lock()
	defer workbookLocksMu.Unlock()

	key := filepath.Clean(path)
	mu, ok := workbookLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		workbookLocks[key] = mu
	}
	return mu
}

// ExcelTable stores one logical table as a sheet in an .xlsx workbook. The
// workbook is opened per operation: the file is the shared medium, so no
// handle is held across calls. All operations, RewriteAll included, touch only
// this table's sheet; sibling sheets in the same workbook belong to other
// logical tables and survive unchanged.
type ExcelTable struct {
	path  string
	sheet string
	mu    *sync.Mutex
}

var _ tabular.Table = (*ExcelTable)(nil)

func NewExcelTable(path, sheet string) *ExcelTable {
	return &ExcelTable{path: path, sheet: sheet, mu: workbookLock(path)}
}

func (t *ExcelTable) ReadAll(_ context.Context) ([]string, [][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := excelize.OpenFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Untouched table.
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	defer f.Close()

	all, err := f.GetRows(t.sheet)
	if err != nil {
		// Sheet missing from an existing workbook: same as an untouched table.
		return nil, nil, nil
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

func (t *ExcelTable) WriteHeader(_ context.Context, header []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := t.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := t.setRow(f, 1, header); err != nil {
		return err
	}
	return t.save(f)
}

func (t *ExcelTable) Append(_ context.Context, row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := t.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	existing, err := f.GetRows(t.sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	if err := t.setRow(f, len(existing)+1, row); err != nil {
		return err
	}
	return t.save(f)
}

func (t *ExcelTable) RewriteAll(_ context.Context, header []string, rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := t.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	// Clear only this sheet, bottom-up so row numbers stay stable. Removing
	// rows (rather than overwriting) also drops stale cells when the new
	// contents are shorter or narrower than the old.
	existing, err := f.GetRows(t.sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	for i := len(existing); i >= 1; i-- {
		if err := f.RemoveRow(t.sheet, i); err != nil {
			return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
		}
	}

	if err := t.setRow(f, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := t.setRow(f, i+2, row); err != nil {
			return err
		}
	}
	return t.save(f)
}

func (t *ExcelTable) openOrCreate() (*excelize.File, error) {
	f, err := excelize.OpenFile(t.path)
	created := false
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
		}
		f = excelize.NewFile()
		created = true
	}

	idx, err := f.GetSheetIndex(t.sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	if idx < 0 {
		idx, err = f.NewSheet(t.sheet)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
		}
		if created {
			f.DeleteSheet("Sheet1")
		}
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func (t *ExcelTable) setRow(f *excelize.File, rowNum int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	if err := f.SetSheetRow(t.sheet, cell, &values); err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	return nil
}

func (t *ExcelTable) save(f *excelize.File) error {
	if err := f.SaveAs(t.path); err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	return nil
}
