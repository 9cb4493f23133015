package models

import "time"

// Meme is a captioned image posted by a user. Name is a snapshot of the
// poster's display name taken at creation time, not a live reference.
type Meme struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Caption   string    `json:"caption"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
