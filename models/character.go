package models

import "time"

// Character is a fighter as returned by the Dragon Ball API.
// OriginPlanet and Transformations are only populated by the single
// character endpoint.
type Character struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ki          string `json:"ki"`
	MaxKi       string `json:"maxKi"`
	Race        string `json:"race"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Affiliation string `json:"affiliation"`

	OriginPlanet    *Planet          `json:"originPlanet,omitempty"`
	Transformations []Transformation `json:"transformations,omitempty"`

	DeletedAt *time.Time `json:"deletedAt"`
}

// Transformation is one of a character's alternate forms.
type Transformation struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Image     string     `json:"image"`
	Ki        string     `json:"ki"`
	DeletedAt *time.Time `json:"deletedAt"`
}
