package render

import "ResumeBuilder/internal/document"

// modern — шаблон по умолчанию: контакты списком, навыки бейджами.
type modern struct{}

func (modern) ID() string { return "modern" }

func (modern) Header(p document.PersonalInfo) Header {
	return Header{Name: nameOrPlaceholder(p), Contact: contacts(p), ContactSeparator: " | ", Summary: p.Summary}
}

func (modern) Experience(list []document.Experience) Block {
	return Block{Kind: document.SectionExperience, Heading: "Experience", Style: StyleList, Items: experienceItems(list)}
}

func (modern) Education(list []document.Education) Block {
	return Block{Kind: document.SectionEducation, Heading: "Education", Style: StyleList, Items: educationItems(list)}
}

func (modern) Skills(list []document.Skill) Block {
	return Block{Kind: document.SectionSkills, Heading: "Skills", Style: StyleBadges, Items: skillItems(list)}
}

func (modern) Projects(list []document.Project) Block {
	return Block{Kind: document.SectionProjects, Heading: "Projects", Style: StyleList, Items: projectItems(list)}
}

func (modern) Volunteering(list []document.Volunteering) Block {
	return Block{Kind: document.SectionVolunteering, Heading: "Volunteering", Style: StyleList, Items: volunteeringItems(list)}
}

func (modern) Certifications(list []document.Certification) Block {
	return Block{Kind: document.SectionCertifications, Heading: "Certifications", Style: StyleList, Items: certificationItems(list)}
}

func (modern) Awards(list []document.Award) Block {
	return Block{Kind: document.SectionAwards, Heading: "Awards", Style: StyleList, Items: awardItems(list)}
}

func (modern) Languages(list []document.Language) Block {
	return Block{Kind: document.SectionLanguages, Heading: "Languages", Style: StyleBadges, Items: languageItems(list)}
}
