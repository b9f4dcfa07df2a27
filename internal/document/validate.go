package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// FieldError — ошибка одного поля. Field — путь вида "experience.0.title".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors — агрегированный список ошибок строгой валидации.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate строго разбирает candidate и проверяет документ целиком.
// В отличие от Normalize, возвращает ValidationErrors со всеми ошибками полей:
// несовпадение типа в одной записи не мешает проверить остальные.
func Validate(candidate []byte) (Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(candidate, &top); err != nil || top == nil {
		return Document{}, ValidationErrors{{Field: "", Message: "must be a JSON object"}}
	}

	var d Document
	var typeErrs ValidationErrors
	for key, raw := range top {
		switch key {
		case "personalInfo":
			if isNull(raw) {
				continue
			}
			var p PersonalInfo
			decodeFields(raw, key, &p, &typeErrs)
			d.PersonalInfo = &p
		case SectionExperience:
			d.Experience = decodeEntries[Experience](raw, key, &typeErrs)
		case SectionEducation:
			d.Education = decodeEntries[Education](raw, key, &typeErrs)
		case SectionSkills:
			d.Skills = decodeEntries[Skill](raw, key, &typeErrs)
		case SectionProjects:
			d.Projects = decodeEntries[Project](raw, key, &typeErrs)
		case SectionVolunteering:
			d.Volunteering = decodeEntries[Volunteering](raw, key, &typeErrs)
		case SectionCertifications:
			d.Certifications = decodeEntries[Certification](raw, key, &typeErrs)
		case SectionAwards:
			d.Awards = decodeEntries[Award](raw, key, &typeErrs)
		case SectionLanguages:
			d.Languages = decodeEntries[Language](raw, key, &typeErrs)
		case "sectionOrder":
			if err := json.Unmarshal(raw, &d.SectionOrder); err != nil {
				typeErrs = append(typeErrs, FieldError{Field: key, Message: "must be an array of strings"})
			}
		}
	}

	errs := mergeErrors(typeErrs, d.Validate())
	if len(errs) > 0 {
		return Document{}, errs
	}
	return d, nil
}

// decodeEntries разбирает массив записей по одной, путь ошибки — "key.i.field".
func decodeEntries[E any](raw json.RawMessage, key string, errs *ValidationErrors) []E {
	if isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		*errs = append(*errs, FieldError{Field: key, Message: "must be an array"})
		return nil
	}
	out := make([]E, 0, len(items))
	for i, item := range items {
		var e E
		decodeFields(item, fmt.Sprintf("%s.%d", key, i), &e, errs)
		out = append(out, e)
	}
	return out
}

// decodeFields переносит поля объекта в dst по одному, чтобы ошибка типа не обрывала разбор.
func decodeFields(raw json.RawMessage, path string, dst any, errs *ValidationErrors) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		*errs = append(*errs, FieldError{Field: path, Message: "must be an object"})
		return
	}
	for name, value := range fields {
		one, err := json.Marshal(map[string]json.RawMessage{name: value})
		if err != nil {
			continue
		}
		if err := json.Unmarshal(one, dst); err != nil {
			msg := "invalid value"
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				msg = fmt.Sprintf("must be %s", typeErr.Type)
			}
			*errs = append(*errs, FieldError{Field: path + "." + name, Message: msg})
		}
	}
}

// mergeErrors объединяет ошибки типов и правил. Правило для поля,
// которое не разобралось (или лежит внутри такого), не дублируется.
func mergeErrors(typeErrs ValidationErrors, ruleErr error) ValidationErrors {
	out := append(ValidationErrors{}, typeErrs...)
	var rules ValidationErrors
	if errors.As(ruleErr, &rules) {
		for _, fe := range rules {
			if !coveredBy(fe.Field, typeErrs) {
				out = append(out, fe)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func coveredBy(field string, typeErrs ValidationErrors) bool {
	for _, te := range typeErrs {
		if field == te.Field || strings.HasPrefix(field, te.Field+".") {
			return true
		}
	}
	return false
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// Validate реализует validation.Validatable и возвращает ValidationErrors.
func (d Document) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.PersonalInfo),
		validation.Field(&d.Experience),
		validation.Field(&d.Education),
		validation.Field(&d.Skills),
		validation.Field(&d.Projects),
		validation.Field(&d.Volunteering),
		validation.Field(&d.Certifications),
		validation.Field(&d.Awards),
		validation.Field(&d.Languages),
	)
	return flatten(err)
}

func (p PersonalInfo) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required.Error("Full name is required")),
		validation.Field(&p.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Invalid email address"),
		),
	)
}

func (e Experience) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required.Error("Job title is required")),
		validation.Field(&e.Company, validation.Required.Error("Company name is required")),
	)
}

func (e Education) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Institution, validation.Required.Error("Institution is required")),
		validation.Field(&e.Degree, validation.Required.Error("Degree is required")),
	)
}

func (s Skill) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required.Error("Skill is required")),
	)
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required.Error("Project name is required")),
		validation.Field(&p.URL, validation.When(p.URL != "", is.RequestURL.Error("Invalid URL"))),
	)
}

func (v Volunteering) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Role, validation.Required.Error("Role is required")),
		validation.Field(&v.Organization, validation.Required.Error("Organization is required")),
	)
}

func (c Certification) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required.Error("Certification name is required")),
		validation.Field(&c.Issuer, validation.Required.Error("Issuer is required")),
		validation.Field(&c.URL, validation.When(c.URL != "", is.RequestURL.Error("Invalid URL"))),
	)
}

func (a Award) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.Required.Error("Award title is required")),
	)
}

func (l Language) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Language, validation.Required.Error("Language is required")),
	)
}

// flatten разворачивает вложенные validation.Errors в плоский отсортированный список.
func flatten(err error) error {
	if err == nil {
		return nil
	}
	var out ValidationErrors
	collect("", err, &out)
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func collect(prefix string, err error, out *ValidationErrors) {
	var nested validation.Errors
	if errors.As(err, &nested) {
		for key, e := range nested {
			if e == nil {
				continue
			}
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			collect(path, e, out)
		}
		return
	}
	*out = append(*out, FieldError{Field: prefix, Message: err.Error()})
}
