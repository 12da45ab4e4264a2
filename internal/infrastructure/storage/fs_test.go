package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

func samplePuzzle() *domain.Puzzle {
	return &domain.Puzzle{
		ID:        uuid.NewString(),
		Name:      "heart",
		Rows:      []domain.Hints{{1, 1}, {3}, {1}},
		Cols:      []domain.Hints{{2}, {1}, {3}},
		CreatedAt: time.Now().UnixNano(),
	}
}

func TestFSRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())
	p := samplePuzzle()

	require.NoError(t, s.Save(ctx, p))
	got, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	require.Equal(t, p.ID, metas[0].ID)
	require.Equal(t, 3, metas[0].Height)
	require.Equal(t, 3, metas[0].Width)
}

func TestFSSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	require.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
}

func TestFSLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	require.Error(t, err)
}

func TestFSListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/does-not-exist")
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, metas)
}
