package models

import "time"

// SessionRecord is the outcome of one finished review session
type SessionRecord struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Mode       Mode      `json:"mode"`
	Tally      int       `json:"tally"`
	Total      int       `json:"total"`
	FinishedAt time.Time `json:"finished_at"`
}
