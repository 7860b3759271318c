package models

import "time"

// Now is the service clock. Timestamps are stored and compared in UTC.
func Now() time.Time {
	return time.Now().UTC()
}
