package service

import (
	"context"
	"fmt"

	"ResumeBuilder/internal/cli/api"
	"ResumeBuilder/internal/document"
	"ResumeBuilder/internal/ordering"
	"ResumeBuilder/internal/section"
)

// ResumeAPI — часть HTTP-клиента, нужная редактору.
type ResumeAPI interface {
	Get(ctx context.Context, id string) (*api.Resume, error)
	Update(ctx context.Context, id string, p api.Patch) (*api.Resume, error)
}

// Editor правит содержимое резюме: читает документ, меняет копию и отправляет целиком.
type Editor struct {
	api ResumeAPI
}

func NewEditor(a ResumeAPI) *Editor {
	return &Editor{api: a}
}

// Load возвращает запись и её нормализованный документ.
func (e *Editor) Load(ctx context.Context, id string) (*api.Resume, document.Document, error) {
	res, err := e.api.Get(ctx, id)
	if err != nil {
		return nil, document.Document{}, err
	}
	var doc document.Document
	if res.Content != nil {
		doc = *res.Content
	}
	return res, document.NormalizeDocument(doc), nil
}

// AddEntry добавляет запись в раздел и возвращает её id.
func (e *Editor) AddEntry(ctx context.Context, id, key string, fields map[string]any) (string, error) {
	kind, err := lookup(key)
	if err != nil {
		return "", err
	}
	var entryID string
	err = e.edit(ctx, id, func(d *document.Document) error {
		var err error
		entryID, err = kind.Append(d, fields)
		return err
	})
	return entryID, err
}

// RemoveEntry удаляет запись раздела по id.
func (e *Editor) RemoveEntry(ctx context.Context, id, key, entryID string) error {
	kind, err := lookup(key)
	if err != nil {
		return err
	}
	return e.edit(ctx, id, func(d *document.Document) error {
		if !kind.Remove(d, entryID) {
			return fmt.Errorf("no %s entry with id %q", key, entryID)
		}
		return nil
	})
}

// MoveEntry переставляет запись внутри раздела.
func (e *Editor) MoveEntry(ctx context.Context, id, key string, from, to int) error {
	kind, err := lookup(key)
	if err != nil {
		return err
	}
	return e.edit(ctx, id, func(d *document.Document) error {
		return kind.Move(d, from, to)
	})
}

// Reorder переставляет разделы по индексам эффективного порядка и возвращает новый эффективный порядок.
// Неизвестные ключи в сохранённом sectionOrder не теряются.
func (e *Editor) Reorder(ctx context.Context, id string, from, to int) ([]string, error) {
	var order []string
	err := e.edit(ctx, id, func(d *document.Document) error {
		next, err := ordering.ReorderStored(d.SectionOrder, from, to)
		if err != nil {
			return err
		}
		d.SectionOrder = next
		order = ordering.Effective(next)
		return nil
	})
	return order, err
}

// MoveSection ставит раздел key на позицию to.
func (e *Editor) MoveSection(ctx context.Context, id, key string, to int) ([]string, error) {
	var order []string
	err := e.edit(ctx, id, func(d *document.Document) error {
		next, err := ordering.MoveKey(d.SectionOrder, key, to)
		if err != nil {
			return err
		}
		d.SectionOrder = next
		order = ordering.Effective(next)
		return nil
	})
	return order, err
}

func (e *Editor) edit(ctx context.Context, id string, fn func(d *document.Document) error) error {
	_, doc, err := e.Load(ctx, id)
	if err != nil {
		return err
	}
	next := doc.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	_, err = e.api.Update(ctx, id, api.Patch{Content: &next})
	return err
}

func lookup(key string) (section.Kind, error) {
	kind, ok := section.Lookup(key)
	if !ok {
		return section.Kind{}, fmt.Errorf("%w: %q", ordering.ErrUnknownSection, key)
	}
	return kind, nil
}
