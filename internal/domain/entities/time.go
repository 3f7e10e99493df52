package entities

import (
	"sync"
	"time"
)

var (
	civilOnce sync.Once
	civilLoc  *time.Location
)

// CivilLocation is the fixed civil time zone all creation and reincidence
// timestamps are taken in. Falls back to a fixed UTC-3 zone when tzdata is
// not available in the runtime image.
func CivilLocation() *time.Location {
	civilOnce.Do(func() {
		loc, err := time.LoadLocation("America/Recife")
		if err != nil {
			loc = time.FixedZone("-03", -3*60*60)
		}
		civilLoc = loc
	})
	return civilLoc
}
