// Package render проецирует документ резюме в структуру, готовую к показу и печати.
package render

import (
	"sort"
	"strings"

	"ResumeBuilder/internal/document"
	"ResumeBuilder/internal/ordering"
)

// PlaceholderName показывается, когда имя не заполнено.
const PlaceholderName = "Your Name"

// Стили блока раздела.
const (
	StyleList   = "list"
	StyleBadges = "badges"
	StyleInline = "inline"
)

// Rendered — результат рендера: шапка и блоки разделов в эффективном порядке.
type Rendered struct {
	TemplateID string  `json:"templateId"`
	Header     Header  `json:"header"`
	Sections   []Block `json:"sections"`
}

type Header struct {
	Name    string   `json:"name"`
	Contact []string `json:"contact,omitempty"`
	// ContactSeparator — как шаблон склеивает контакты в одну строку.
	ContactSeparator string `json:"contactSeparator"`
	Summary          string `json:"summary,omitempty"`
}

// ContactLine склеивает контакты разделителем шаблона.
func (h Header) ContactLine() string {
	return strings.Join(h.Contact, h.ContactSeparator)
}

type Block struct {
	Kind    string `json:"kind"`
	Heading string `json:"heading"`
	Style   string `json:"style"`
	Items   []Item `json:"items"`
	// Inline заполнен для StyleInline.
	Inline string `json:"inline,omitempty"`
}

type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Period   string `json:"period,omitempty"`
	Body     string `json:"body,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Formatter задаёт раскладку шаблона. Новый шаблон обязан уметь все восемь видов разделов.
type Formatter interface {
	ID() string
	Header(p document.PersonalInfo) Header
	Experience(list []document.Experience) Block
	Education(list []document.Education) Block
	Skills(list []document.Skill) Block
	Projects(list []document.Project) Block
	Volunteering(list []document.Volunteering) Block
	Certifications(list []document.Certification) Block
	Awards(list []document.Award) Block
	Languages(list []document.Language) Block
}

// DefaultTemplate используется для неизвестных идентификаторов шаблона.
const DefaultTemplate = "modern"

var formatters = map[string]Formatter{
	"modern":  modern{},
	"classic": classic{},
}

// Lookup возвращает шаблон по идентификатору.
func Lookup(id string) (Formatter, bool) {
	f, ok := formatters[id]
	return f, ok
}

// Templates возвращает идентификаторы зарегистрированных шаблонов.
func Templates() []string {
	out := make([]string, 0, len(formatters))
	for id := range formatters {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// section описывает, как достать раздел из документа и какой метод шаблона его раскладывает.
type section func(f Formatter, d document.Document) (Block, bool)

func sectionOf[E any](list func(document.Document) []E, layout func(Formatter, []E) Block) section {
	return func(f Formatter, d document.Document) (Block, bool) {
		l := list(d)
		if len(l) == 0 {
			return Block{}, false
		}
		return layout(f, l), true
	}
}

var sections = map[string]section{
	document.SectionExperience: sectionOf(func(d document.Document) []document.Experience { return d.Experience }, Formatter.Experience),
	document.SectionEducation:  sectionOf(func(d document.Document) []document.Education { return d.Education }, Formatter.Education),
	document.SectionSkills:     sectionOf(func(d document.Document) []document.Skill { return d.Skills }, Formatter.Skills),
	document.SectionProjects:   sectionOf(func(d document.Document) []document.Project { return d.Projects }, Formatter.Projects),
	document.SectionVolunteering: sectionOf(func(d document.Document) []document.Volunteering { return d.Volunteering },
		Formatter.Volunteering),
	document.SectionCertifications: sectionOf(func(d document.Document) []document.Certification { return d.Certifications },
		Formatter.Certifications),
	document.SectionAwards:    sectionOf(func(d document.Document) []document.Award { return d.Awards }, Formatter.Awards),
	document.SectionLanguages: sectionOf(func(d document.Document) []document.Language { return d.Languages }, Formatter.Languages),
}

// Render проецирует документ в выбранный шаблон. Чистая функция.
func Render(doc document.Document, templateID string) Rendered {
	f, ok := Lookup(templateID)
	if !ok {
		f = formatters[DefaultTemplate]
	}
	doc = document.NormalizeDocument(doc)

	var info document.PersonalInfo
	if doc.PersonalInfo != nil {
		info = *doc.PersonalInfo
	}
	out := Rendered{
		TemplateID: f.ID(),
		Header:     f.Header(info),
		Sections:   []Block{},
	}
	for _, key := range ordering.Effective(doc.SectionOrder) {
		s, ok := sections[key]
		if !ok {
			continue
		}
		if b, ok := s(f, doc); ok {
			out.Sections = append(out.Sections, b)
		}
	}
	return out
}

// period форматирует диапазон дат, «Present» для текущих записей.
func period(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " – " + end
}

func degreeLine(degree, field string) string {
	if field == "" {
		return degree
	}
	return degree + " in " + field
}

func contacts(p document.PersonalInfo) []string {
	var out []string
	for _, v := range []string{p.Email, p.Phone, p.Address} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func nameOrPlaceholder(p document.PersonalInfo) string {
	if strings.TrimSpace(p.FullName) == "" {
		return PlaceholderName
	}
	return p.FullName
}

// Общие раскладки записей, одинаковые для обоих шаблонов.

func experienceItems(list []document.Experience) []Item {
	out := make([]Item, 0, len(list))
	for _, e := range list {
		out = append(out, Item{Title: e.Title, Subtitle: e.Company, Period: period(e.StartDate, e.EndDate, e.Current), Body: e.Description})
	}
	return out
}

func educationItems(list []document.Education) []Item {
	out := make([]Item, 0, len(list))
	for _, e := range list {
		out = append(out, Item{Title: e.Institution, Subtitle: degreeLine(e.Degree, e.Field), Period: period(e.StartDate, e.EndDate, false)})
	}
	return out
}

func skillItems(list []document.Skill) []Item {
	out := make([]Item, 0, len(list))
	for _, s := range list {
		out = append(out, Item{Title: s.Name})
	}
	return out
}

func projectItems(list []document.Project) []Item {
	out := make([]Item, 0, len(list))
	for _, p := range list {
		out = append(out, Item{Title: p.Name, Body: p.Description, URL: p.URL})
	}
	return out
}

func volunteeringItems(list []document.Volunteering) []Item {
	out := make([]Item, 0, len(list))
	for _, v := range list {
		out = append(out, Item{Title: v.Role, Subtitle: v.Organization, Period: period(v.StartDate, v.EndDate, v.Current), Body: v.Description})
	}
	return out
}

func certificationItems(list []document.Certification) []Item {
	out := make([]Item, 0, len(list))
	for _, c := range list {
		out = append(out, Item{Title: c.Name, Subtitle: c.Issuer, Period: c.Date, URL: c.URL})
	}
	return out
}

func awardItems(list []document.Award) []Item {
	out := make([]Item, 0, len(list))
	for _, a := range list {
		out = append(out, Item{Title: a.Title, Subtitle: a.Issuer, Period: a.Date, Body: a.Description})
	}
	return out
}

func languageItems(list []document.Language) []Item {
	out := make([]Item, 0, len(list))
	for _, l := range list {
		out = append(out, Item{Title: l.Language, Subtitle: l.Proficiency})
	}
	return out
}
