package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ResumeBuilder/internal/model"
	"ResumeBuilder/internal/render"
	"ResumeBuilder/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CopySuffix добавляется к заголовку дубликата.
const CopySuffix = " (Copy)"

// ResumeService инкапсулирует бизнес-логику работы с резюме.
// Каждый вызов заново проверяет владельца по текущему состоянию хранилища.
type ResumeService struct {
	repo   repo.ResumeRepository
	logger *zap.SugaredLogger
}

func NewResumeService(r repo.ResumeRepository, logger *zap.SugaredLogger) *ResumeService {
	return &ResumeService{repo: r, logger: logger}
}

// Patch — частичное обновление; nil-поля не трогаются.
type Patch struct {
	Title      *string
	Content    json.RawMessage
	TemplateID *string
}

// List возвращает резюме владельца, свежие первыми.
func (s *ResumeService) List(ctx context.Context, ownerID string) ([]model.Resume, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, persistence(err)
	}
	if list == nil {
		list = []model.Resume{}
	}
	return list, nil
}

// Get возвращает (nil, nil), если записи нет или она принадлежит другому владельцу.
func (s *ResumeService) Get(ctx context.Context, ownerID, id string) (*model.Resume, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	res, err := s.repo.GetByID(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, persistence(err)
	}
	return res, nil
}

// Create создаёт пустое резюме с шаблоном по умолчанию.
func (s *ResumeService) Create(ctx context.Context, ownerID, title string) (*model.Resume, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = model.DefaultTitle
	}
	return s.create(ctx, ownerID, title, datatypes.JSON(`{}`), model.TemplateModern)
}

// Update применяет патч. Отсутствующая или чужая запись даёт ErrUnauthorized.
func (s *ResumeService) Update(ctx context.Context, ownerID, id string, p Patch) (*model.Resume, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	updates := map[string]any{}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return nil, ErrInvalidTitle
		}
		updates["title"] = title
	}
	if p.TemplateID != nil {
		if !knownTemplate(*p.TemplateID) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, *p.TemplateID)
		}
		updates["template_id"] = *p.TemplateID
	}
	if p.Content != nil {
		if !isJSONObject(p.Content) {
			return nil, ErrInvalidContent
		}
		updates["content"] = datatypes.JSON(p.Content)
	}

	if err := s.repo.Update(ctx, ownerID, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.Errorw("Update: storage error", "owner_id", ownerID, "id", id, "error", err)
		return nil, persistence(err)
	}

	res, err := s.repo.GetByID(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// удалено между обновлением и чтением
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, persistence(err)
	}
	return res, nil
}

// Remove удаляет резюме. Повторное удаление неотличимо от «никогда не было».
func (s *ResumeService) Remove(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return ErrUnauthorized
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		s.logger.Errorw("Remove: storage error", "owner_id", ownerID, "id", id, "error", err)
		return persistence(err)
	}
	return nil
}

// Duplicate создаёт новую независимую запись с тем же содержимым и шаблоном.
func (s *ResumeService) Duplicate(ctx context.Context, ownerID, id string) (*model.Resume, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	src, err := s.repo.GetByID(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, persistence(err)
	}

	content := src.Content
	if len(content) == 0 {
		content = datatypes.JSON(`{}`)
	}
	tpl := src.TemplateID
	if !knownTemplate(tpl) {
		tpl = model.TemplateModern
	}
	return s.create(ctx, ownerID, src.Title+CopySuffix, content, tpl)
}

func (s *ResumeService) create(ctx context.Context, ownerID, title string, content datatypes.JSON, tpl string) (*model.Resume, error) {
	res := &model.Resume{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Title:      title,
		Content:    content,
		TemplateID: tpl,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		s.logger.Errorw("Create: storage error", "owner_id", ownerID, "error", err)
		return nil, persistence(err)
	}
	s.logger.Infow("resume created", "owner_id", ownerID, "id", res.ID)
	return res, nil
}

func persistence(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func isJSONObject(raw json.RawMessage) bool {
	var m map[string]json.RawMessage
	return json.Unmarshal(raw, &m) == nil && m != nil
}

// knownTemplate — шаблон есть в реестре рендера.
func knownTemplate(id string) bool {
	_, ok := render.Lookup(id)
	return ok
}
