package repo

import (
	"context"
	"time"

	"ResumeBuilder/internal/model"

	"gorm.io/gorm"
)

// ResumeRepository определяет контракт доступа к резюме, всегда в рамках владельца.
type ResumeRepository interface {
	// ListByOwner возвращает резюме владельца, свежие первыми.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Resume, error)
	// GetByID возвращает gorm.ErrRecordNotFound, если записи нет или она чужая.
	GetByID(ctx context.Context, ownerID, id string) (*model.Resume, error)
	Create(ctx context.Context, r *model.Resume) error
	// Update применяет частичное обновление и освежает updated_at.
	Update(ctx context.Context, ownerID, id string, updates map[string]any) error
	Delete(ctx context.Context, ownerID, id string) error
}

type resumeRepo struct {
	db *gorm.DB
}

// NewResumeRepository создаёт реализацию репозитория для Resume.
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Resume, error) {
	var out []model.Resume
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resumeRepo) GetByID(ctx context.Context, ownerID, id string) (*model.Resume, error) {
	var res model.Resume
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resumeRepo) Create(ctx context.Context, res *model.Resume) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resumeRepo) Update(ctx context.Context, ownerID, id string, updates map[string]any) error {
	patch := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		patch[k] = v
	}
	patch["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).
		Model(&model.Resume{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(patch)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, ownerID, id string) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Resume{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
