package models

import "time"

// Review is a rating plus text attached to a listing.
type Review struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	Author    string    `json:"author,omitempty"`
	Helpful   int       `json:"helpful,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ReviewDraft is the payload for creating a review. Rating must be 1-5;
// the client validates before any network call.
type ReviewDraft struct {
	SkillID string `json:"skillId"`
	Rating  int    `json:"rating"`
	Title   string `json:"title,omitempty"`
	Body    string `json:"body,omitempty"`
}
