package model

import "time"

// Entry is one persisted guestbook post. Entries are never updated.
type Entry struct {
	ID      int64
	IP      string
	Comment string
	Name    *string
	Website *string
	Country *string
	Date    time.Time
}

// Submission is a raw, unsanitized post as received from a visitor.
type Submission struct {
	Name    string
	Website string
	Comment string
	IP      string
	At      time.Time
}

// Order is the listing direction by entry ID.
type Order string

const (
	OrderDesc Order = "DESC"
	OrderAsc  Order = "ASC"
)
