package repository

import "time"

// Filter narrows a per-user listing.
// From and To bound the kind's timestamp column inclusively when set.
type Filter struct {
	UserID     string
	From       *time.Time
	To         *time.Time
	ActiveOnly bool
}

// ForUser returns an unbounded filter for a single user
func ForUser(userID string) Filter {
	return Filter{UserID: userID}
}
