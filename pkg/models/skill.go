package models

// Skill is a purchasable marketplace listing.
type Skill struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	Price         Amount   `json:"price"`
	Currency      string   `json:"currency,omitempty"`
	Category      string   `json:"category,omitempty"`
	CategoryID    string   `json:"categoryId,omitempty"`
	Creator       string   `json:"creator,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	PurchaseCount int      `json:"purchaseCount,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
	Free          bool     `json:"free,omitempty"`
}

// SkillDetail is the extended single-listing view.
type SkillDetail struct {
	Skill
	Screenshots      []string `json:"screenshots,omitempty"`
	DocumentationURL string   `json:"documentationUrl,omitempty"`
	Version          string   `json:"version,omitempty"`
	Changelog        string   `json:"changelog,omitempty"`
}

// Pagination describes one page of a list response. All fields are always
// populated; absent backend pagination decodes to DefaultPagination.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// DefaultPagination is the total fallback used when the backend omits
// pagination entirely.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, Limit: 10}
}

// SkillList is the normalized result of a skills listing call.
type SkillList struct {
	Skills     []Skill    `json:"skills"`
	Pagination Pagination `json:"pagination"`
}

// SkillDraft is the payload submitted when creating a listing. CategoryID
// may be left empty when Category carries a human name; the client resolves
// it against the categories endpoint before submitting.
type SkillDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       Amount   `json:"price"`
	Category    string   `json:"category,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PackageURL  string   `json:"packageUrl,omitempty"`
}

// DownloadInfo is returned by the skill download endpoint.
type DownloadInfo struct {
	PackageURL      string `json:"packageUrl"`
	LicenseKey      string `json:"licenseKey,omitempty"`
	ActivationsUsed int    `json:"activationsUsed"`
	ActivationsMax  int    `json:"activationsMax"`
}

// UploadResult is returned by the multipart package upload endpoint.
type UploadResult struct {
	PackageURL string `json:"packageUrl"`
	Size       int64  `json:"size,omitempty"`
	Checksum   string `json:"checksum,omitempty"`
}
