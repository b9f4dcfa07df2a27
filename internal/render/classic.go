package render

import (
	"strings"

	"ResumeBuilder/internal/document"
)

const inlineSeparator = " • "

// classic — строгий шаблон: контакты через точку, навыки и языки одной строкой.
type classic struct{}

func (classic) ID() string { return "classic" }

func (classic) Header(p document.PersonalInfo) Header {
	return Header{Name: nameOrPlaceholder(p), Contact: contacts(p), ContactSeparator: inlineSeparator, Summary: p.Summary}
}

func (classic) Experience(list []document.Experience) Block {
	return Block{Kind: document.SectionExperience, Heading: "Professional Experience", Style: StyleList, Items: experienceItems(list)}
}

func (classic) Education(list []document.Education) Block {
	return Block{Kind: document.SectionEducation, Heading: "Education", Style: StyleList, Items: educationItems(list)}
}

func (classic) Skills(list []document.Skill) Block {
	items := skillItems(list)
	return Block{Kind: document.SectionSkills, Heading: "Key Skills", Style: StyleInline, Items: items, Inline: joinTitles(items)}
}

func (classic) Projects(list []document.Project) Block {
	return Block{Kind: document.SectionProjects, Heading: "Projects", Style: StyleList, Items: projectItems(list)}
}

func (classic) Volunteering(list []document.Volunteering) Block {
	return Block{Kind: document.SectionVolunteering, Heading: "Volunteer Experience", Style: StyleList, Items: volunteeringItems(list)}
}

func (classic) Certifications(list []document.Certification) Block {
	return Block{Kind: document.SectionCertifications, Heading: "Certifications", Style: StyleList, Items: certificationItems(list)}
}

func (classic) Awards(list []document.Award) Block {
	return Block{Kind: document.SectionAwards, Heading: "Honors & Awards", Style: StyleList, Items: awardItems(list)}
}

func (classic) Languages(list []document.Language) Block {
	items := languageItems(list)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Subtitle != "" {
			parts = append(parts, it.Title+" ("+it.Subtitle+")")
			continue
		}
		parts = append(parts, it.Title)
	}
	return Block{Kind: document.SectionLanguages, Heading: "Languages", Style: StyleInline, Items: items, Inline: strings.Join(parts, inlineSeparator)}
}

func joinTitles(items []Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Title)
	}
	return strings.Join(parts, inlineSeparator)
}
