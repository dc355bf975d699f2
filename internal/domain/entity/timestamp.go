package entity

import "time"

// Now returns the current UTC time at the precision the stores keep
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NextUpdatedAt returns a timestamp that is strictly after prev.
// Two updates inside the same microsecond would otherwise share a value.
func NextUpdatedAt(prev time.Time) time.Time {
	next := Now()
	if !next.After(prev) {
		next = prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return next
}
