package models

// RenderCV is the content subtree of a RenderCV document ("cv" key). Field
// order matters: yaml.v3 serializes struct fields in declaration order, which
// is what keeps section keys stable across renders.
type RenderCV struct {
	Name           string          `yaml:"name" json:"name"`
	Location       string          `yaml:"location" json:"location"`
	Email          string          `yaml:"email" json:"email"`
	Phone          string          `yaml:"phone" json:"phone"`
	Website        string          `yaml:"website" json:"website"`
	SocialNetworks []SocialNetwork `yaml:"social_networks" json:"social_networks"`
	Sections       Sections        `yaml:"sections" json:"sections"`
}

// SocialNetwork is a single entry of the RenderCV social_networks list.
type SocialNetwork struct {
	Network  string `yaml:"network" json:"network"`
	Username string `yaml:"username" json:"username"`
}

// Sections maps RenderCV section keys to their entries. A nil slice means the
// section is absent and the key is omitted from the serialized document; the
// converter never produces empty-but-present sections.
type Sections struct {
	Summary      []string           `yaml:"summary,omitempty" json:"summary,omitempty"`
	Education    []EducationEntry   `yaml:"education,omitempty" json:"education,omitempty"`
	Experience   []ExperienceEntry  `yaml:"experience,omitempty" json:"experience,omitempty"`
	Publications []PublicationEntry `yaml:"publications,omitempty" json:"publications,omitempty"`
	Projects     []ProjectEntry     `yaml:"projects,omitempty" json:"projects,omitempty"`
	Technologies []TechnologyEntry  `yaml:"technologies,omitempty" json:"technologies,omitempty"`
	Awards       []AwardEntry       `yaml:"awards,omitempty" json:"awards,omitempty"`
}

// IsEmpty reports whether no section carries any content.
func (s Sections) IsEmpty() bool {
	return len(s.Summary) == 0 &&
		len(s.Education) == 0 &&
		len(s.Experience) == 0 &&
		len(s.Publications) == 0 &&
		len(s.Projects) == 0 &&
		len(s.Technologies) == 0 &&
		len(s.Awards) == 0
}

type EducationEntry struct {
	Institution string   `yaml:"institution" json:"institution"`
	Area        string   `yaml:"area" json:"area"`
	Degree      string   `yaml:"degree" json:"degree"`
	StartDate   string   `yaml:"start_date" json:"start_date"`
	EndDate     string   `yaml:"end_date" json:"end_date"`
	Highlights  []string `yaml:"highlights" json:"highlights"`
}

type ExperienceEntry struct {
	Company    string   `yaml:"company" json:"company"`
	Position   string   `yaml:"position" json:"position"`
	Location   string   `yaml:"location" json:"location"`
	StartDate  string   `yaml:"start_date" json:"start_date"`
	EndDate    string   `yaml:"end_date" json:"end_date"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

type PublicationEntry struct {
	Title   string   `yaml:"title" json:"title"`
	Authors []string `yaml:"authors" json:"authors"`
	Date    string   `yaml:"date" json:"date"`
	DOI     *string  `yaml:"doi" json:"doi"`
	URL     *string  `yaml:"url" json:"url"`
}

type ProjectEntry struct {
	Name       string   `yaml:"name" json:"name"`
	Date       string   `yaml:"date" json:"date"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

type TechnologyEntry struct {
	Label   string `yaml:"label" json:"label"`
	Details string `yaml:"details" json:"details"`
}

type AwardEntry struct {
	Label   string `yaml:"label" json:"label"`
	Details string `yaml:"details" json:"details"`
}
