package service

import (
	"context"
	"testing"

	"ResumeBuilder/internal/document"
	"ResumeBuilder/internal/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_EntriesRoundTrip(t *testing.T) {
	c := newTestClient(t, "alice")
	ctx := context.Background()
	ed := NewEditor(c)

	r, err := c.Create(ctx, "Draft")
	require.NoError(t, err)

	goID, err := ed.AddEntry(ctx, r.ID, document.SectionSkills, map[string]any{"name": "Go"})
	require.NoError(t, err)
	_, err = ed.AddEntry(ctx, r.ID, document.SectionSkills, map[string]any{"name": "SQL"})
	require.NoError(t, err)

	_, doc, err := ed.Load(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, doc.Skills, 2)
	assert.Equal(t, goID, doc.Skills[0].ID)

	require.NoError(t, ed.MoveEntry(ctx, r.ID, document.SectionSkills, 1, 0))
	_, doc, err = ed.Load(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "SQL", doc.Skills[0].Name)

	require.NoError(t, ed.RemoveEntry(ctx, r.ID, document.SectionSkills, goID))
	assert.Error(t, ed.RemoveEntry(ctx, r.ID, document.SectionSkills, goID))

	_, doc, err = ed.Load(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "SQL", doc.Skills[0].Name)
}

func TestEditor_Reorder(t *testing.T) {
	c := newTestClient(t, "alice")
	ctx := context.Background()
	ed := NewEditor(c)

	r, err := c.Create(ctx, "Draft")
	require.NoError(t, err)

	order, err := ed.Reorder(ctx, r.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, document.SectionSkills, order[0])
	assert.Equal(t, document.SectionExperience, order[1])

	_, doc, err := ed.Load(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, order, doc.SectionOrder)

	order, err = ed.MoveSection(ctx, r.ID, document.SectionLanguages, 0)
	require.NoError(t, err)
	assert.Equal(t, document.SectionLanguages, order[0])
	assert.Equal(t, document.SectionSkills, order[1])

	_, err = ed.Reorder(ctx, r.ID, 0, 99)
	assert.ErrorIs(t, err, ordering.ErrIndexOutOfRange)
}

func TestEditor_UnknownSection(t *testing.T) {
	c := newTestClient(t, "alice")
	ctx := context.Background()
	ed := NewEditor(c)

	r, err := c.Create(ctx, "Draft")
	require.NoError(t, err)

	_, err = ed.AddEntry(ctx, r.ID, "hobbies", nil)
	assert.ErrorIs(t, err, ordering.ErrUnknownSection)

	_, doc, err := ed.Load(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, document.DefaultSectionOrder(), doc.SectionOrder)
}

func TestEditor_ReorderKeepsUnknownOrderKeys(t *testing.T) {
	c := newTestClient(t, "alice")
	ctx := context.Background()
	ed := NewEditor(c)

	r, err := c.Create(ctx, "Draft")
	require.NoError(t, err)
	doc := document.NormalizeDocument(document.Document{
		SectionOrder: []string{document.SectionExperience, "timeline", document.SectionSkills},
	})
	require.NoError(t, c.SaveContent(ctx, r.ID, doc))

	order, err := ed.MoveSection(ctx, r.ID, document.SectionSkills, 0)
	require.NoError(t, err)
	assert.Equal(t, ordering.Effective([]string{document.SectionSkills, document.SectionExperience}), order)

	_, stored, err := ed.Load(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{document.SectionSkills, "timeline", document.SectionExperience}, stored.SectionOrder)

	_, err = ed.Reorder(ctx, r.ID, 0, 1)
	require.NoError(t, err)
	_, stored, err = ed.Load(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{document.SectionExperience, "timeline", document.SectionSkills}, stored.SectionOrder)
}
