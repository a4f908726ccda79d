package model

import "time"

// Stats summarizes the whole guestbook.
type Stats struct {
	TotalPosts    int
	UniqueSources int
	Websites      []string
	Names         []string
	Countries     map[string]int
	Status        []WebsiteStatus
}

// WebsiteStatus is the last known reachability of a stored website.
type WebsiteStatus struct {
	Website   string
	Alive     bool
	CheckedAt time.Time
}
