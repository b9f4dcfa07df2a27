package repo

import (
	"context"
	"testing"
	"time"

	"ResumeBuilder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// хелпер для создания базового резюме
func mkResume(id, owner, title string, upd time.Time) model.Resume {
	return model.Resume{
		ID:         id,
		OwnerID:    owner,
		Title:      title,
		Content:    datatypes.JSON(`{}`),
		TemplateID: model.TemplateModern,
		UpdatedAt:  upd.UTC(),
	}
}

func TestResumeRepository_Create_GetByID(t *testing.T) {
	db := newTestDB(t)
	r := NewResumeRepository(db)
	ctx := context.Background()

	res := mkResume("r1", "alice", "Draft", time.Now())
	require.NoError(t, r.Create(ctx, &res))

	// найдено по id+owner
	got, err := r.GetByID(ctx, "alice", "r1")
	require.NoError(t, err)
	assert.Equal(t, "Draft", got.Title)
	assert.JSONEq(t, `{}`, string(got.Content))

	// чужой владелец — не найдено
	got, err = r.GetByID(ctx, "bob", "r1")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestResumeRepository_ListByOwner_UpdatedDesc(t *testing.T) {
	db := newTestDB(t)
	r := NewResumeRepository(db)
	ctx := context.Background()

	t1 := time.Now().UTC().Add(-3 * time.Hour)
	t2 := time.Now().UTC().Add(-2 * time.Hour)
	t3 := time.Now().UTC().Add(-1 * time.Hour)

	items := []model.Resume{
		mkResume("a", "alice", "A", t2),
		mkResume("b", "alice", "B", t1),
		mkResume("c", "alice", "C", t3),
		mkResume("x", "bob", "X", t3), // другой владелец
	}
	for i := range items {
		it := items[i]
		require.NoError(t, r.Create(ctx, &it))
	}

	all, err := r.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	if assert.Len(t, all, 3) {
		assert.Equal(t, "c", all[0].ID)
		assert.Equal(t, "a", all[1].ID)
		assert.Equal(t, "b", all[2].ID)
	}

	none, err := r.ListByOwner(ctx, "carol")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestResumeRepository_Update(t *testing.T) {
	db := newTestDB(t)
	r := NewResumeRepository(db)
	ctx := context.Background()

	base := mkResume("r2", "alice", "Old", time.Now().Add(-time.Hour))
	require.NoError(t, r.Create(ctx, &base))

	require.NoError(t, r.Update(ctx, "alice", "r2", map[string]any{"title": "New"}))
	got, err := r.GetByID(ctx, "alice", "r2")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	// не переданные поля не трогаем
	assert.Equal(t, model.TemplateModern, got.TemplateID)
	assert.WithinDuration(t, time.Now().UTC(), got.UpdatedAt, 2*time.Second)

	// пустой патч всё равно освежает updated_at
	require.NoError(t, r.Update(ctx, "alice", "r2", nil))

	// чужой владелец — ErrRecordNotFound
	err = r.Update(ctx, "bob", "r2", map[string]any{"title": "Hijack"})
	assert.Equal(t, gorm.ErrRecordNotFound, err)
	got, _ = r.GetByID(ctx, "alice", "r2")
	assert.Equal(t, "New", got.Title)
}

func TestResumeRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	r := NewResumeRepository(db)
	ctx := context.Background()

	base := mkResume("r3", "alice", "T", time.Now())
	require.NoError(t, r.Create(ctx, &base))

	assert.Equal(t, gorm.ErrRecordNotFound, r.Delete(ctx, "bob", "r3"))
	assert.NoError(t, r.Delete(ctx, "alice", "r3"))
	// повторное удаление не отличается от «никогда не было»
	assert.Equal(t, gorm.ErrRecordNotFound, r.Delete(ctx, "alice", "r3"))
}

func TestDialectorFor(t *testing.T) {
	_, isPG := dialectorFor("postgres://u:p@localhost:5432/db").(*postgres.Dialector)
	assert.True(t, isPG)
	_, isPG = dialectorFor("host=localhost user=u dbname=db").(*postgres.Dialector)
	assert.True(t, isPG)

	d, ok := dialectorFor("").(gormsqlite.Dialector)
	require.True(t, ok)
	assert.Equal(t, DefaultSQLitePath, d.DSN)
	assert.Equal(t, "sqlite", d.DriverName)
}
