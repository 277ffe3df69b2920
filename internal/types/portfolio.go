package types

import "time"

// PortfolioSection is one block of the generated portfolio page.
type PortfolioSection struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Emoji   string   `json:"emoji,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// Testimonial is a quote shown on the portfolio page.
type Testimonial struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// PortfolioContent is the page content derived from a converted resume.
type PortfolioContent struct {
	Headline     string             `json:"headline"`
	HeroText     string             `json:"heroText"`
	Sections     []PortfolioSection `json:"sections"`
	Testimonials []Testimonial      `json:"testimonials,omitempty"`
}

// PortfolioProfile is a stored portfolio keyed by lowercased username.
type PortfolioProfile struct {
	Username        string           `json:"username"`
	ConvertedResume ConvertedResume  `json:"convertedResume"`
	PortfolioData   PortfolioContent `json:"portfolioData"`
	RoleKey         string           `json:"roleKey"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// UploadRecord describes a stored upload.
type UploadRecord struct {
	FileID    string    `json:"fileId"`
	FileName  string    `json:"fileName"`
	FileSize  int64     `json:"fileSize"`
	FileType  string    `json:"fileType"`
	Format    string    `json:"format"`
	Path      string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoredResume is a parsed resume persisted against its upload.
type StoredResume struct {
	FileID    string        `json:"fileId"`
	Resume    *ParsedResume `json:"resume"`
	Strategy  string        `json:"strategy"`
	Hash      string        `json:"hash"`
	CreatedAt time.Time     `json:"createdAt"`
}
