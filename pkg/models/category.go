package models

// Category is a taxonomy node. Looked up by slug or name during listing
// creation.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count,omitempty"`
}
