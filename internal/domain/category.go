package domain

import "time"

// Category groups campaigns for browsing. One category has many campaigns.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
	Icon        string
	CreatedAt   time.Time
}
