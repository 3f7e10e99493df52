package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextIdentity computes the next internal id and the displayed case number
// from the raw id cells currently in the table. Cells that fail numeric
// coercion (corrupt legacy rows) are skipped rather than failing the whole
// computation.
//
// The scheme is max(id)+1 with the table as the single source of truth, no
// hidden counter. Known consequence: deleting the current maximum-id row makes
// its id (and therefore its external id) eligible for reissue.
func NextIdentity(idCells []string, now time.Time) (int, string) {
	maxID := 0
	for _, cell := range idCells {
		n, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	next := maxID + 1
	return next, fmt.Sprintf("%04d/%d", next, now.Year())
}
