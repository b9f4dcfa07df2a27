package handlers

import (
	"net/http"

	"ResumeBuilder/internal/render"
	"ResumeBuilder/internal/section"
)

// CatalogHandler отдаёт реестр разделов и шаблонов, чтобы клиент строил формы из одного источника.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type SectionDTO struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	DefaultEntry any    `json:"defaultEntry"`
}

// Sections каталог видов разделов в каноническом порядке
func (h *CatalogHandler) Sections(w http.ResponseWriter, r *http.Request) {
	kinds := section.All()
	out := make([]SectionDTO, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, SectionDTO{Key: k.Key, Label: k.Label, DefaultEntry: k.NewEntry()})
	}
	writeJSON(w, http.StatusOK, out)
}

// Templates идентификаторы шаблонов
func (h *CatalogHandler) Templates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": render.Templates(),
		"default":   render.DefaultTemplate,
	})
}
