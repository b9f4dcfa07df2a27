package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ResumeBuilder/internal/document"
	"ResumeBuilder/internal/middleware"
	"ResumeBuilder/internal/render"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("resume not found")
)

// StatusError — неожиданный ответ сервера.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server status %d: %s", e.Code, e.Body)
}

// Resume — запись резюме, как её отдаёт сервер.
type Resume struct {
	ID         string             `json:"id"`
	OwnerID    string             `json:"ownerId"`
	Title      string             `json:"title"`
	Content    *document.Document `json:"content,omitempty"`
	TemplateID string             `json:"templateId"`
	CreatedAt  string             `json:"createdAt"`
	UpdatedAt  string             `json:"updatedAt"`
}

// Patch — частичное обновление; nil-поля не отправляются.
type Patch struct {
	Title      *string            `json:"title,omitempty"`
	Content    *document.Document `json:"content,omitempty"`
	TemplateID *string            `json:"templateId,omitempty"`
}

type ValidationResult struct {
	Valid  bool                  `json:"valid"`
	Errors []document.FieldError `json:"errors"`
}

// Client ходит в HTTP API резюме от имени владельца токена.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) List(ctx context.Context) ([]Resume, error) {
	var out []Resume
	err := c.doJSON(ctx, http.MethodGet, "/api/resumes", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, title string) (*Resume, error) {
	var out Resume
	if err := c.doJSON(ctx, http.MethodPost, "/api/resumes", map[string]string{"title": title}, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Resume, error) {
	var out Resume
	if err := c.doJSON(ctx, http.MethodGet, resumePath(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id string, p Patch) (*Resume, error) {
	var out Resume
	if err := c.doJSON(ctx, http.MethodPatch, resumePath(id), p, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, resumePath(id), nil, http.StatusNoContent, nil)
}

func (c *Client) Duplicate(ctx context.Context, id string) (*Resume, error) {
	var out Resume
	if err := c.doJSON(ctx, http.MethodPost, resumePath(id)+"/duplicate", nil, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Render возвращает структуру для показа; пустой templateID — шаблон записи.
func (c *Client) Render(ctx context.Context, id, templateID string) (render.Rendered, error) {
	var out render.Rendered
	err := c.doJSON(ctx, http.MethodGet, resumePath(id)+"/render"+templateQuery(templateID), nil, http.StatusOK, &out)
	return out, err
}

// Preview возвращает печатную HTML-страницу.
func (c *Client) Preview(ctx context.Context, id, templateID string) ([]byte, error) {
	resp, body, err := c.send(ctx, http.MethodGet, resumePath(id)+"/preview"+templateQuery(templateID), nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, body, http.StatusOK); err != nil {
		return nil, err
	}
	return body, nil
}

// Validate строго проверяет сохранённое содержимое. Ошибки полей — не ошибка вызова.
func (c *Client) Validate(ctx context.Context, id string) (ValidationResult, error) {
	var out ValidationResult
	resp, body, err := c.send(ctx, http.MethodPost, resumePath(id)+"/validate", nil)
	if err != nil {
		return out, err
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		if err := checkStatus(resp, body, http.StatusOK); err != nil {
			return out, err
		}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// SaveContent заменяет содержимое целиком.
func (c *Client) SaveContent(ctx context.Context, id string, doc document.Document) error {
	_, err := c.Update(ctx, id, Patch{Content: &doc})
	return err
}

// SaveTemplate меняет шаблон записи.
func (c *Client) SaveTemplate(ctx context.Context, id, templateID string) error {
	_, err := c.Update(ctx, id, Patch{TemplateID: &templateID})
	return err
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, want int, out any) error {
	resp, body, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if err := checkStatus(resp, body, want); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// send отправляет запрос; токен уходит cookie идентичности.
func (c *Client) send(ctx context.Context, method, path string, payload any) (*http.Response, []byte, error) {
	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.AddCookie(middleware.TokenCookie(c.Token))
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, body, nil
}

func checkStatus(resp *http.Response, body []byte, want int) error {
	switch resp.StatusCode {
	case want:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func resumePath(id string) string {
	return "/api/resumes/" + url.PathEscape(id)
}

func templateQuery(templateID string) string {
	if templateID == "" {
		return ""
	}
	return "?template=" + url.QueryEscape(templateID)
}
