package autosave

import (
	"context"
	"sync"

	"ResumeBuilder/internal/document"
)

// Session — открытое редактирование одного резюме.
// Содержимое идёт через Reconciler, смена шаблона сохраняется сразу.
type Session struct {
	id    string
	store Store
	rec   *Reconciler

	mu         sync.Mutex
	doc        document.Document
	templateID string
}

// NewSession открывает сессию над уже сохранённым содержимым.
func NewSession(store Store, id string, doc document.Document, templateID string, opts ...Option) *Session {
	doc = document.NormalizeDocument(doc.Clone())
	return &Session{
		id:         id,
		store:      store,
		rec:        New(store, id, doc, opts...),
		doc:        doc,
		templateID: templateID,
	}
}

// Document возвращает копию текущего документа в памяти.
func (s *Session) Document() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Edit применяет изменение к копии документа. При ошибке документ не меняется.
func (s *Session) Edit(fn func(d *document.Document) error) error {
	s.mu.Lock()
	next := s.doc.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = next
	// под s.mu, чтобы порядок снимков в Reconciler совпадал с порядком правок
	s.rec.Update(next)
	s.mu.Unlock()
	return nil
}

// Replace заменяет документ целиком.
func (s *Session) Replace(doc document.Document) {
	doc = doc.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.rec.Update(doc)
}

// SetTemplate сохраняет шаблон немедленно, минуя задержку.
func (s *Session) SetTemplate(ctx context.Context, templateID string) error {
	if err := s.store.SaveTemplate(ctx, s.id, templateID); err != nil {
		return err
	}
	s.mu.Lock()
	s.templateID = templateID
	s.mu.Unlock()
	return nil
}

func (s *Session) TemplateID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.templateID
}

func (s *Session) State() State { return s.rec.State() }

// Tick форсирует проверку без ожидания таймера.
func (s *Session) Tick(ctx context.Context) { s.rec.Tick(ctx) }

// Close бросает ожидающий таймер; уже идущее сохранение завершается.
func (s *Session) Close() { s.rec.Close() }
