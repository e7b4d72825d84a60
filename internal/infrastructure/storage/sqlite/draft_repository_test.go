package sqlite

import (
	"context"
	"io"
	"testing"
	"time"

	"resumeforge/internal/domain/resume"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestRepo(t *testing.T) *DraftRepository {
	t.Helper()
	storage, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return NewDraftRepository(storage, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func draftFixture(id string) resume.Draft {
	now := time.Now().UTC().Truncate(time.Second)
	rec := resume.NewRecord()
	rec.Personal.Name = "Jane Doe"
	return resume.Draft{ID: id, Record: rec, CreatedAt: now, UpdatedAt: now}
}

func TestDraftRepository_CreateGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := draftFixture("d1")
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)

	if diff := cmp.Diff(want.Record, got.Record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want.ID, got.ID)
}

func TestDraftRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, resume.ErrNotFound)
}

func TestDraftRepository_Save(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	d := draftFixture("d1")
	require.NoError(t, repo.Create(ctx, d))

	d.Record = d.Record.WithSkills("Go, SQL")
	d.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Save(ctx, d))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", got.Record.Skills)

	t.Run("missing draft", func(t *testing.T) {
		missing := draftFixture("ghost")
		assert.ErrorIs(t, repo.Save(ctx, missing), resume.ErrNotFound)
	})
}

func TestDraftRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, draftFixture("d1")))
	require.NoError(t, repo.Delete(ctx, "d1"))

	_, err := repo.Get(ctx, "d1")
	assert.ErrorIs(t, err, resume.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "d1"), resume.ErrNotFound)
}

func TestDraftRepository_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := draftFixture("d1")
	second := draftFixture("d2")
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	drafts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "d1", drafts[0].ID)
	assert.Equal(t, "d2", drafts[1].ID)
}
