// Package portfolio holds the static data tables behind the site: projects,
// skills, work experience, education and certificates. The tables are fixed
// at compile time and served read-only.
package portfolio

// Project is one entry in the projects gallery.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	GithubRepo  string   `json:"githubRepo,omitempty"` // "owner/repo"
	LiveURL     string   `json:"liveUrl,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Role        string   `json:"role,omitempty"`
	Timeframe   string   `json:"timeframe,omitempty"`
}

// Certificate is one entry in the credentials list.
type Certificate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Issuer         string   `json:"issuer"`
	IssueDate      string   `json:"issueDate,omitempty"` // YYYY-MM
	ExpirationDate string   `json:"expirationDate,omitempty"`
	CredentialID   string   `json:"credentialId,omitempty"`
	CredentialURL  string   `json:"credentialUrl,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

// Education is one entry in the education history.
type Education struct {
	Institution string   `json:"institution"`
	Location    string   `json:"location"`
	Degree      string   `json:"degree"`
	Duration    string   `json:"duration"`
	Href        string   `json:"href,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Experience is one entry in the work history.
type Experience struct {
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Href             string   `json:"href,omitempty"`
	Duration         string   `json:"duration"`
	Tech             []string `json:"tech,omitempty"`
	Responsibilities []string `json:"responsibilities"`
}

// Skill is a single technology with its display metadata. Icon is a fixed
// identifier resolved by the front-end through a lookup table, never by
// dynamic property access.
type Skill struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Credentials bundles education and certificates for the credentials page.
type Credentials struct {
	Education    []Education   `json:"education"`
	Certificates []Certificate `json:"certificates"`
}
