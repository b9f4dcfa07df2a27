package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"ResumeBuilder/internal/document"
	"ResumeBuilder/internal/handlers"
	"ResumeBuilder/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResume_NoIdentity(t *testing.T) {
	api := newTestAPI(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/resumes"},
		{http.MethodPost, "/api/resumes"},
		{http.MethodGet, "/api/resumes/x"},
		{http.MethodPatch, "/api/resumes/x"},
		{http.MethodDelete, "/api/resumes/x"},
		{http.MethodPost, "/api/resumes/x/duplicate"},
	} {
		rr := api.do(tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, tc.method+" "+tc.path)
	}
}

// Сценарий: черновик -> навык -> перестановка разделов
func TestResume_DraftToRenderedScenario(t *testing.T) {
	api := newTestAPI(t)

	created := api.create("alice", "Draft")
	assert.Equal(t, "Draft", created.Title)
	assert.Equal(t, "modern", created.TemplateID)
	require.NotNil(t, created.Content)
	assert.Equal(t, document.DefaultSectionOrder(), created.Content.SectionOrder)
	assert.Empty(t, created.Content.Skills)

	path := "/api/resumes/" + created.ID
	rendered := decode[render.Rendered](t, api.do(http.MethodGet, path+"/render", "alice", nil))
	assert.Equal(t, render.PlaceholderName, rendered.Header.Name)
	assert.Empty(t, rendered.Sections)

	// добавляем навык
	doc := *created.Content
	doc.Skills = append(doc.Skills, document.Skill{ID: "s1", Name: "Go"})
	rr := api.do(http.MethodPatch, path, "alice", map[string]any{"content": doc})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rendered = decode[render.Rendered](t, api.do(http.MethodGet, path+"/render", "alice", nil))
	require.Len(t, rendered.Sections, 1)
	assert.Equal(t, "skills", rendered.Sections[0].Kind)
	assert.Equal(t, render.StyleBadges, rendered.Sections[0].Style)
	require.Len(t, rendered.Sections[0].Items, 1)
	assert.Equal(t, "Go", rendered.Sections[0].Items[0].Title)

	// опыт плюс навыки раньше опыта
	doc.Experience = []document.Experience{{ID: "e1", Title: "Dev", Company: "Acme", StartDate: "2020", Current: true}}
	doc.SectionOrder = []string{"skills", "experience", "education", "projects", "volunteering", "certifications", "awards", "languages"}
	rr = api.do(http.MethodPatch, path, "alice", map[string]any{"content": doc})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rendered = decode[render.Rendered](t, api.do(http.MethodGet, path+"/render", "alice", nil))
	require.Len(t, rendered.Sections, 2)
	assert.Equal(t, "skills", rendered.Sections[0].Kind)
	assert.Equal(t, "experience", rendered.Sections[1].Kind)
	assert.Equal(t, "2020 – Present", rendered.Sections[1].Items[0].Period)

	// явный шаблон в запросе
	rendered = decode[render.Rendered](t, api.do(http.MethodGet, path+"/render?template=classic", "alice", nil))
	assert.Equal(t, "classic", rendered.TemplateID)
	assert.Equal(t, "Key Skills", rendered.Sections[0].Heading)
}

func TestResume_Ownership(t *testing.T) {
	api := newTestAPI(t)
	res := api.create("alice", "Mine")
	path := "/api/resumes/" + res.ID

	// чужое резюме для bob «не существует»
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, "bob", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path+"/render", "bob", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPatch, path, "bob", map[string]string{"title": "x"}).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodDelete, path, "bob", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, path+"/duplicate", "bob", nil).Code)

	list := decode[[]handlers.ResumeDTO](t, api.do(http.MethodGet, "/api/resumes", "bob", nil))
	assert.Empty(t, list)

	// у владельца всё на месте
	got := decode[handlers.ResumeDTO](t, api.do(http.MethodGet, path, "alice", nil))
	assert.Equal(t, "Mine", got.Title)
}

func TestResume_UpdateAndList(t *testing.T) {
	api := newTestAPI(t)
	first := api.create("alice", "First")
	second := api.create("alice", "   ")
	assert.Equal(t, "Untitled Resume", second.Title)

	rr := api.do(http.MethodPatch, "/api/resumes/"+first.ID, "alice", map[string]string{"title": " Renamed ", "templateId": "classic"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[handlers.ResumeDTO](t, rr)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "classic", updated.TemplateID)

	list := decode[[]handlers.ResumeDTO](t, api.do(http.MethodGet, "/api/resumes", "alice", nil))
	require.Len(t, list, 2)
	// свежие первыми, содержимое в списке не отдаётся
	assert.Equal(t, first.ID, list[0].ID)
	assert.Nil(t, list[0].Content)
}

func TestResume_UpdateRejectsBadInput(t *testing.T) {
	api := newTestAPI(t)
	res := api.create("alice", "CV")
	path := "/api/resumes/" + res.ID

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPatch, path, "alice", map[string]string{"title": "  "}).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPatch, path, "alice", map[string]string{"templateId": "glitter"}).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPatch, path, "alice", map[string]any{"content": []int{1}}).Code)

	got := decode[handlers.ResumeDTO](t, api.do(http.MethodGet, path, "alice", nil))
	assert.Equal(t, "CV", got.Title)
	assert.Equal(t, "modern", got.TemplateID)
}

func TestResume_DeleteTwice(t *testing.T) {
	api := newTestAPI(t)
	res := api.create("alice", "Gone")
	path := "/api/resumes/" + res.ID

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path, "alice", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodDelete, path, "alice", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, "alice", nil).Code)
}

func TestResume_Duplicate(t *testing.T) {
	api := newTestAPI(t)
	src := api.create("alice", "CV")
	path := "/api/resumes/" + src.ID

	content := map[string]any{"skills": []map[string]string{{"id": "s1", "name": "Go"}}}
	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, path, "alice", map[string]any{"content": content, "templateId": "classic"}).Code)

	rr := api.do(http.MethodPost, path+"/duplicate", "alice", nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	dup := decode[handlers.ResumeDTO](t, rr)

	assert.Equal(t, "CV (Copy)", dup.Title)
	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "classic", dup.TemplateID)
	require.NotNil(t, dup.Content)
	assert.Equal(t, []document.Skill{{ID: "s1", Name: "Go"}}, dup.Content.Skills)
}

func TestResume_Validate(t *testing.T) {
	api := newTestAPI(t)
	res := api.create("alice", "CV")
	path := "/api/resumes/" + res.ID

	rr := api.do(http.MethodPost, path+"/validate", "alice", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[handlers.ValidateResponse](t, rr).Valid)

	bad := map[string]any{
		"personalInfo": map[string]string{"fullName": "", "email": "nope"},
		"projects":     []map[string]string{{"id": "p1", "name": "X", "url": ""}},
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, path, "alice", map[string]any{"content": bad}).Code)

	rr = api.do(http.MethodPost, path+"/validate", "alice", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decode[handlers.ValidateResponse](t, rr)
	assert.False(t, resp.Valid)
	fields := map[string]string{}
	for _, fe := range resp.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, map[string]string{
		"personalInfo.fullName": "Full name is required",
		"personalInfo.email":    "Invalid email address",
	}, fields)
}

func TestResume_Preview(t *testing.T) {
	api := newTestAPI(t)
	res := api.create("alice", "CV")

	rr := api.do(http.MethodGet, "/api/resumes/"+res.ID+"/preview?template=classic", "alice", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rr.Body.String(), "YOUR NAME")
	assert.Contains(t, rr.Body.String(), "tpl-classic")
}
