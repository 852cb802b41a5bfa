package views

// SiteConfig holds site-wide settings passed into every page template.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Profile is the portfolio content rendered on the home page and fed into
// the assistant prompts. It is loaded from a YAML file.
type Profile struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
	Summary  string `yaml:"summary"`

	Skills     SkillSet     `yaml:"skills"`
	Projects   []Project    `yaml:"projects"`
	Experience []Experience `yaml:"experience"`
	Education  []Education  `yaml:"education"`
}

// SkillSet groups skills by capability.
type SkillSet struct {
	Languages       []string `yaml:"languages"`
	Tools           []string `yaml:"tools"`
	Specializations []string `yaml:"specializations"`
	SoftSkills      []string `yaml:"soft_skills"`
}

// Project is one entry in the project gallery.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools"`
	Image       string   `yaml:"image"`
	Link        string   `yaml:"link"`
}

// Experience is one entry in the experience timeline.
type Experience struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Duration         string   `yaml:"duration"`
	Responsibilities []string `yaml:"responsibilities"`
}

// Education is one entry in the education timeline.
type Education struct {
	Institution string   `yaml:"institution"`
	Degree      string   `yaml:"degree"`
	Duration    string   `yaml:"duration"`
	Focus       string   `yaml:"focus"`
	Coursework  []string `yaml:"coursework"`
}

// AllSkills flattens every skill group into one list.
func (p *Profile) AllSkills() []string {
	var out []string
	out = append(out, p.Skills.Languages...)
	out = append(out, p.Skills.Tools...)
	out = append(out, p.Skills.Specializations...)
	out = append(out, p.Skills.SoftSkills...)
	return out
}

// ProjectTitles lists the titles of all projects.
func (p *Profile) ProjectTitles() []string {
	out := make([]string, 0, len(p.Projects))
	for _, pr := range p.Projects {
		out = append(out, pr.Title)
	}
	return out
}

// ExperienceSummaries lists each role as "Title at Company (Duration)".
func (p *Profile) ExperienceSummaries() []string {
	out := make([]string, 0, len(p.Experience))
	for _, e := range p.Experience {
		out = append(out, e.Title+" at "+e.Company+" ("+e.Duration+")")
	}
	return out
}

// EducationSummaries lists each degree as "Degree, Institution".
func (p *Profile) EducationSummaries() []string {
	out := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		out = append(out, e.Degree+", "+e.Institution)
	}
	return out
}

// PostSummary is the post listing shape used by the home and admin pages.
type PostSummary struct {
	ID          string
	Title       string
	Description string
	Slug        string
	Image       string
	Date        string
}

// PaperSummary is the paper listing shape used by the home and admin pages.
type PaperSummary struct {
	ID          string
	Title       string
	Description string
	Filename    string
	Date        string
}

// BlogDoc is the input to the static blog document renderer.
type BlogDoc struct {
	Title      string
	Date       string
	Image      string
	Paragraphs []string
}
