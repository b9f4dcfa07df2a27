package document

import "slices"

// Ключи разделов резюме. Порядок в DefaultSectionOrder — канонический.
const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionVolunteering   = "volunteering"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionLanguages      = "languages"
)

var canonicalOrder = []string{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionVolunteering,
	SectionCertifications,
	SectionAwards,
	SectionLanguages,
}

// DefaultSectionOrder возвращает копию канонического порядка разделов.
func DefaultSectionOrder() []string {
	out := make([]string, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// Document — содержимое резюме (то, что хранится в content записи).
type Document struct {
	PersonalInfo   *PersonalInfo   `json:"personalInfo,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Volunteering   []Volunteering  `json:"volunteering"`
	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Languages      []Language      `json:"languages"`
	SectionOrder   []string        `json:"sectionOrder"`
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

type Volunteering struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// EntryID позволяют registry и операциям над списками работать с любым видом записи.
func (e Experience) EntryID() string    { return e.ID }
func (e Education) EntryID() string     { return e.ID }
func (e Skill) EntryID() string         { return e.ID }
func (e Project) EntryID() string       { return e.ID }
func (e Volunteering) EntryID() string  { return e.ID }
func (e Certification) EntryID() string { return e.ID }
func (e Award) EntryID() string         { return e.ID }
func (e Language) EntryID() string      { return e.ID }

// Clone возвращает глубокую копию: записи состоят только из значений, поэтому копии срезов достаточно.
func (d Document) Clone() Document {
	out := Document{
		Experience:     slices.Clone(d.Experience),
		Education:      slices.Clone(d.Education),
		Skills:         slices.Clone(d.Skills),
		Projects:       slices.Clone(d.Projects),
		Volunteering:   slices.Clone(d.Volunteering),
		Certifications: slices.Clone(d.Certifications),
		Awards:         slices.Clone(d.Awards),
		Languages:      slices.Clone(d.Languages),
		SectionOrder:   slices.Clone(d.SectionOrder),
	}
	if d.PersonalInfo != nil {
		p := *d.PersonalInfo
		out.PersonalInfo = &p
	}
	return out
}
