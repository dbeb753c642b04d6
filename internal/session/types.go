// Package session holds the data command handlers read: projects, bio,
// links and files. A Snapshot is immutable once published; reloads build a
// new one and swap it in through a Store.
package session

// Link is a named external link.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// File is a downloadable file published by the backend.
type File struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Project is one portfolio entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	URL         string   `json:"url,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// Skill is a named skill with an optional category.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Experience is a work history entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is an education history entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period,omitempty"`
}

// Bio describes the portfolio owner. Empty fields are rendered with
// fallback text by the commands that show them.
type Bio struct {
	Name       string       `json:"name,omitempty"`
	Tagline    string       `json:"tagline,omitempty"`
	About      string       `json:"about,omitempty"`
	Location   string       `json:"location,omitempty"`
	Email      string       `json:"email,omitempty"`
	Skills     []Skill      `json:"skills,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
}

// Portfolio is the payload of the portfolio collaborator.
type Portfolio struct {
	Projects []Project `json:"projects"`
	Bio      *Bio      `json:"bio"`
}
