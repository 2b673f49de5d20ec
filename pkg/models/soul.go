package models

// Soul is a shareable behavioral-configuration document, also purchasable.
// Content is populated only on single-item fetches.
type Soul struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	Price       Amount   `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// SoulList is the normalized result of a souls listing call.
type SoulList struct {
	Souls      []Soul     `json:"souls"`
	Pagination Pagination `json:"pagination"`
}

// SoulDraft is the payload submitted when creating a soul.
type SoulDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content"`
	Price       Amount   `json:"price,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
