package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"ResumeBuilder/internal/document"
	"ResumeBuilder/internal/middleware"
	"ResumeBuilder/internal/model"
	"ResumeBuilder/internal/render"
	"ResumeBuilder/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ResumeHandler обрабатывает CRUD резюме, рендер и валидацию.
type ResumeHandler struct {
	ResumeService *service.ResumeService
	Logger        *zap.SugaredLogger
}

// NewResumeHandler создаёт хендлер резюме
func NewResumeHandler(resumeService *service.ResumeService, logger *zap.SugaredLogger) *ResumeHandler {
	return &ResumeHandler{ResumeService: resumeService, Logger: logger}
}

// ResumeDTO — запись резюме в ответе. content уже нормализован.
type ResumeDTO struct {
	ID         string             `json:"id"`
	OwnerID    string             `json:"ownerId"`
	Title      string             `json:"title"`
	Content    *document.Document `json:"content,omitempty"`
	TemplateID string             `json:"templateId"`
	CreatedAt  string             `json:"createdAt"`
	UpdatedAt  string             `json:"updatedAt"`
}

type CreateRequest struct {
	Title string `json:"title"`
}

// UpdateRequest — частичное обновление; отсутствующие поля не трогаются.
type UpdateRequest struct {
	Title      *string         `json:"title,omitempty"`
	Content    json.RawMessage `json:"content,omitempty"`
	TemplateID *string         `json:"templateId,omitempty"`
}

type ValidateResponse struct {
	Valid  bool                  `json:"valid"`
	Errors []document.FieldError `json:"errors"`
}

// List список резюме владельца
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	list, err := h.ResumeService.List(r.Context(), owner)
	if err != nil {
		h.fail(w, "List", err)
		return
	}
	out := make([]ResumeDTO, 0, len(list))
	for i := range list {
		out = append(out, toDTO(&list[i], false))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create новое резюме
func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	// пустое тело допустимо: будет заголовок по умолчанию
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	res, err := h.ResumeService.Create(r.Context(), owner, req.Title)
	if err != nil {
		h.fail(w, "Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(res, true))
}

// Get резюме по id; чужое и несуществующее неразличимы
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toDTO(res, true))
}

// Update частичное обновление
func (h *ResumeHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	res, err := h.ResumeService.Update(r.Context(), owner, chi.URLParam(r, "id"), service.Patch{
		Title:      req.Title,
		Content:    req.Content,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		h.fail(w, "Update", err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(res, true))
}

// Delete удаление
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.ResumeService.Remove(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		h.fail(w, "Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Duplicate копия резюме
func (h *ResumeHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	res, err := h.ResumeService.Duplicate(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Duplicate", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(res, true))
}

// Render структура для показа; ?template= перекрывает шаблон записи
func (h *ResumeHandler) Render(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, renderRecord(res, r.URL.Query().Get("template")))
}

// Preview печатная HTML-страница
func (h *ResumeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := render.WriteHTML(w, renderRecord(res, r.URL.Query().Get("template"))); err != nil {
		h.Logger.Errorw("Preview: render error", "id", res.ID, "error", err)
	}
}

// Validate строгая проверка сохранённого содержимого
func (h *ResumeHandler) Validate(w http.ResponseWriter, r *http.Request) {
	res, ok := h.load(w, r)
	if !ok {
		return
	}
	_, err := document.Validate(res.Content)
	if err == nil {
		writeJSON(w, http.StatusOK, ValidateResponse{Valid: true, Errors: []document.FieldError{}})
		return
	}
	var verrs document.ValidationErrors
	if !errors.As(err, &verrs) {
		h.fail(w, "Validate", err)
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Valid: false, Errors: verrs})
}

// load читает запись владельца; при неудаче сам пишет ответ.
func (h *ResumeHandler) load(w http.ResponseWriter, r *http.Request) (*model.Resume, bool) {
	owner, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	res, err := h.ResumeService.Get(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Get", err)
		return nil, false
	}
	if res == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return nil, false
	}
	return res, true
}

func (h *ResumeHandler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidTitle),
		errors.Is(err, service.ErrUnknownTemplate),
		errors.Is(err, service.ErrInvalidContent):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func renderRecord(res *model.Resume, override string) render.Rendered {
	tpl := res.TemplateID
	if override != "" {
		tpl = override
	}
	return render.Render(document.Normalize(res.Content), tpl)
}

func toDTO(res *model.Resume, withContent bool) ResumeDTO {
	dto := ResumeDTO{
		ID:         res.ID,
		OwnerID:    res.OwnerID,
		Title:      res.Title,
		TemplateID: res.TemplateID,
		CreatedAt:  res.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  res.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if withContent {
		doc := document.Normalize(res.Content)
		dto.Content = &doc
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
