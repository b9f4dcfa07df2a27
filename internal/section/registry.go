package section

import (
	"encoding/json"
	"fmt"

	"ResumeBuilder/internal/document"

	"github.com/google/uuid"
)

// Kind описывает один вид раздела резюме.
type Kind struct {
	Key   string
	Label string

	// NewEntry создаёт пустую запись со свежим id.
	NewEntry func() any
	// Len — количество записей раздела в документе.
	Len func(d *document.Document) int
	// Append добавляет новую запись (пустую, поверх неё накладываются fields) и возвращает её id.
	Append func(d *document.Document, fields map[string]any) (string, error)
	// Remove удаляет запись по id.
	Remove func(d *document.Document, id string) bool
	// Move переставляет запись внутри раздела.
	Move func(d *document.Document, from, to int) error
}

var registry = []Kind{
	newKind(document.SectionExperience, "Work Experience",
		func(d *document.Document) *[]document.Experience { return &d.Experience },
		func(id string) document.Experience { return document.Experience{ID: id} }),
	newKind(document.SectionEducation, "Education",
		func(d *document.Document) *[]document.Education { return &d.Education },
		func(id string) document.Education { return document.Education{ID: id} }),
	newKind(document.SectionSkills, "Skills",
		func(d *document.Document) *[]document.Skill { return &d.Skills },
		func(id string) document.Skill { return document.Skill{ID: id} }),
	newKind(document.SectionProjects, "Projects",
		func(d *document.Document) *[]document.Project { return &d.Projects },
		func(id string) document.Project { return document.Project{ID: id} }),
	newKind(document.SectionVolunteering, "Volunteering",
		func(d *document.Document) *[]document.Volunteering { return &d.Volunteering },
		func(id string) document.Volunteering { return document.Volunteering{ID: id} }),
	newKind(document.SectionCertifications, "Certifications",
		func(d *document.Document) *[]document.Certification { return &d.Certifications },
		func(id string) document.Certification { return document.Certification{ID: id} }),
	newKind(document.SectionAwards, "Awards",
		func(d *document.Document) *[]document.Award { return &d.Awards },
		func(id string) document.Award { return document.Award{ID: id} }),
	newKind(document.SectionLanguages, "Languages",
		func(d *document.Document) *[]document.Language { return &d.Languages },
		func(id string) document.Language { return document.Language{ID: id} }),
}

var byKey = func() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for _, k := range registry {
		m[k.Key] = k
	}
	return m
}()

// All returns every registered kind in canonical order.
func All() []Kind {
	out := make([]Kind, len(registry))
	copy(out, registry)
	return out
}

// Keys returns the registered section keys in canonical order.
func Keys() []string {
	out := make([]string, 0, len(registry))
	for _, k := range registry {
		out = append(out, k.Key)
	}
	return out
}

// Lookup returns the kind registered under key.
func Lookup(key string) (Kind, bool) {
	k, ok := byKey[key]
	return k, ok
}

// Known reports whether key is a legal member of sectionOrder.
func Known(key string) bool {
	_, ok := byKey[key]
	return ok
}

// Label returns the display label for key, or the key itself when unknown.
func Label(key string) string {
	if k, ok := byKey[key]; ok {
		return k.Label
	}
	return key
}

func newKind[E Entry](key, label string, list func(*document.Document) *[]E, fresh func(id string) E) Kind {
	return Kind{
		Key:   key,
		Label: label,
		NewEntry: func() any {
			return fresh(uuid.NewString())
		},
		Len: func(d *document.Document) int {
			return len(*list(d))
		},
		Append: func(d *document.Document, fields map[string]any) (string, error) {
			id := uuid.NewString()
			e := fresh(id)
			if len(fields) > 0 {
				b, err := json.Marshal(fields)
				if err != nil {
					return "", fmt.Errorf("encode %s fields: %w", key, err)
				}
				if err := json.Unmarshal(b, &e); err != nil {
					return "", fmt.Errorf("apply %s fields: %w", key, err)
				}
				// id выдаёт только фабрика
				e = overrideID(e, fresh(id))
			}
			l := list(d)
			*l = Append(*l, e)
			return id, nil
		},
		Remove: func(d *document.Document, id string) bool {
			l := list(d)
			next, ok := RemoveByID(*l, id)
			if ok {
				*l = next
			}
			return ok
		},
		Move: func(d *document.Document, from, to int) error {
			l := list(d)
			next, err := Move(*l, from, to)
			if err != nil {
				return err
			}
			*l = next
			return nil
		},
	}
}

// overrideID копирует id из base в e через JSON, не зная конкретного типа записи.
func overrideID[E Entry](e, base E) E {
	if e.EntryID() == base.EntryID() {
		return e
	}
	b, _ := json.Marshal(map[string]string{"id": base.EntryID()})
	_ = json.Unmarshal(b, &e)
	return e
}
