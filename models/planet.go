package models

import "time"

// Planet is a world from the Dragon Ball API. Characters is only populated by
// the single planet endpoint.
type Planet struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	IsDestroyed bool   `json:"isDestroyed"`
	Description string `json:"description"`
	Image       string `json:"image"`

	Characters []Character `json:"characters,omitempty"`

	DeletedAt *time.Time `json:"deletedAt"`
}
