package format

import (
	"time"
)

// A STCK value counts 2^-12 microseconds since 1900-01-01 00:00:00 UTC; the
// top 52 bits are whole microseconds.
const stckMicrosecondShift = 12

var stckEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// STCKToTime converts a store-clock value to time.Time (UTC, microsecond
// precision).
func STCKToTime(v uint64) time.Time {
	us := v >> stckMicrosecondShift
	return stckEpoch.Add(time.Duration(us) * time.Microsecond)
}

// TimeToSTCK converts a time.Time to a store-clock value. Sub-microsecond
// precision is dropped; times before the STCK epoch yield 0.
func TimeToSTCK(t time.Time) uint64 {
	if t.Before(stckEpoch) {
		return 0
	}
	us := uint64(t.Sub(stckEpoch) / time.Microsecond)
	return us << stckMicrosecondShift
}
