package models

// Page is one page of a paginated Dragon Ball API listing.
type Page[T any] struct {
	Items []T       `json:"items"`
	Meta  PageMeta  `json:"meta"`
	Links PageLinks `json:"links"`
}

// PageMeta describes the position of a page within the full listing.
type PageMeta struct {
	TotalItems   int `json:"totalItems"`
	ItemCount    int `json:"itemCount"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
}

// PageLinks holds absolute URLs of neighbouring pages. Missing neighbours are
// empty strings.
type PageLinks struct {
	First    string `json:"first"`
	Previous string `json:"previous"`
	Next     string `json:"next"`
	Last     string `json:"last"`
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool {
	return p.Links.Next != "" || p.Meta.CurrentPage < p.Meta.TotalPages
}
