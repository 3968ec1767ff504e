package models

// Resume represents an incoming JSON Resume document (jsonresume.org schema).
// Only the portions consumed by the RenderCV conversion are modeled; unknown
// fields are ignored on decode.
type Resume struct {
	Basics       *Basics       `json:"basics" validate:"required"`
	Education    []Education   `json:"education,omitempty"`
	Work         []Work        `json:"work,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
}

// Basics holds the identity block of a JSON Resume. Name, email and phone are
// hard requirements for rendering; everything else is optional.
type Basics struct {
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	Phone    string    `json:"phone" validate:"required"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

type Location struct {
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type Profile struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

type Education struct {
	Institution string   `json:"institution,omitempty"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

type Work struct {
	Name       string   `json:"name,omitempty"`
	Position   string   `json:"position,omitempty"`
	Location   string   `json:"location,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type Publication struct {
	Name        string   `json:"name,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	DOI         *string  `json:"doi,omitempty"`
	URL         *string  `json:"url,omitempty"`
}

type Project struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

type Skill struct {
	Name     string   `json:"name,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type Award struct {
	Title   string `json:"title,omitempty"`
	Date    string `json:"date,omitempty"`
	Awarder string `json:"awarder,omitempty"`
}
