package document

import (
	"encoding/json"
	"strings"
)

// Normalize приводит произвольное сохранённое значение к Document и никогда не падает.
// Отсутствующие разделы становятся пустыми списками, sectionOrder — каноническим,
// current — булевым. Записи, не являющиеся объектами, отбрасываются.
func Normalize(raw []byte) Document {
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil || root == nil {
		return NormalizeDocument(Document{})
	}

	var d Document
	if info, ok := root["personalInfo"].(map[string]any); ok {
		p := &PersonalInfo{}
		decodeLenient(info, p)
		d.PersonalInfo = p
	}
	d.Experience = decodeLenientEntries[Experience](root[SectionExperience])
	d.Education = decodeLenientEntries[Education](root[SectionEducation])
	d.Skills = decodeLenientEntries[Skill](root[SectionSkills])
	d.Projects = decodeLenientEntries[Project](root[SectionProjects])
	d.Volunteering = decodeLenientEntries[Volunteering](root[SectionVolunteering])
	d.Certifications = decodeLenientEntries[Certification](root[SectionCertifications])
	d.Awards = decodeLenientEntries[Award](root[SectionAwards])
	d.Languages = decodeLenientEntries[Language](root[SectionLanguages])

	if order, ok := root["sectionOrder"].([]any); ok {
		d.SectionOrder = make([]string, 0, len(order))
		for _, k := range order {
			if s, ok := k.(string); ok {
				d.SectionOrder = append(d.SectionOrder, s)
			}
		}
	}
	return NormalizeDocument(d)
}

// NormalizeDocument заполняет значения по умолчанию у уже типизированного документа.
// Неизвестные ключи sectionOrder сохраняются: их отфильтровывает ordering.Effective.
func NormalizeDocument(d Document) Document {
	d.Experience = orEmpty(d.Experience)
	d.Education = orEmpty(d.Education)
	d.Skills = orEmpty(d.Skills)
	d.Projects = orEmpty(d.Projects)
	d.Volunteering = orEmpty(d.Volunteering)
	d.Certifications = orEmpty(d.Certifications)
	d.Awards = orEmpty(d.Awards)
	d.Languages = orEmpty(d.Languages)
	if d.SectionOrder == nil {
		d.SectionOrder = DefaultSectionOrder()
	}
	return d
}

func orEmpty[E any](list []E) []E {
	if list == nil {
		return []E{}
	}
	return list
}

func decodeLenientEntries[E any](v any) []E {
	items, ok := v.([]any)
	if !ok {
		return []E{}
	}
	out := make([]E, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		var e E
		decodeLenient(m, &e)
		out = append(out, e)
	}
	return out
}

// decodeLenient оставляет только строковые поля и приводит current к bool,
// после чего декодирует объект в dst. Ошибки типов тем самым исключены.
func decodeLenient(m map[string]any, dst any) {
	clean := make(map[string]any, len(m))
	for k, v := range m {
		if k == "current" {
			clean[k] = truthy(v)
			continue
		}
		if s, ok := v.(string); ok {
			clean[k] = s
		}
	}
	b, err := json.Marshal(clean)
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, dst)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true") || t == "on" || t == "1"
	case float64:
		return t != 0
	default:
		return false
	}
}
