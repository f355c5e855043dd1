package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance_backend/internal/feature/removallog/domain/entity"
)

// mockRemovalRepo is a mock implementation of RemovalLogRepository.
type mockRemovalRepo struct {
	SaveFunc func(ctx context.Context, e entity.RemovalEntry) (bool, error)
	ListFunc func(ctx context.Context) ([]entity.RemovalEntry, error)
}

func (m *mockRemovalRepo) Save(ctx context.Context, e entity.RemovalEntry) (bool, error) {
	return m.SaveFunc(ctx, e)
}

func (m *mockRemovalRepo) List(ctx context.Context) ([]entity.RemovalEntry, error) {
	return m.ListFunc(ctx)
}

func TestRemovalUsecase_LogRemoval_FillsDefaults(t *testing.T) {
	var saved entity.RemovalEntry
	repo := &mockRemovalRepo{
		SaveFunc: func(ctx context.Context, e entity.RemovalEntry) (bool, error) {
			saved = e
			return true, nil
		},
	}
	uc := NewRemovalUsecase(repo)

	created, err := uc.LogRemoval(context.Background(), "IPG", "Known delisted security", "DELISTED", 0.002, "")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "IPG", saved.Symbol)
	assert.Equal(t, entity.DefaultWatchlist, saved.Watchlist)
	assert.NotEmpty(t, saved.ID, "entry must get a generated id")
	assert.False(t, saved.Date.IsZero(), "entry must be dated")
}

func TestRemovalUsecase_LogRemoval_EmptySymbol(t *testing.T) {
	uc := NewRemovalUsecase(&mockRemovalRepo{})

	_, err := uc.LogRemoval(context.Background(), "", "reason", "DELISTED", 0, "")

	assert.ErrorIs(t, err, ErrSymbolRequired)
}

func TestRemovalUsecase_LogRemoval_DuplicateIsNotCreated(t *testing.T) {
	repo := &mockRemovalRepo{
		SaveFunc: func(ctx context.Context, e entity.RemovalEntry) (bool, error) {
			return false, nil
		},
	}
	uc := NewRemovalUsecase(repo)

	created, err := uc.LogRemoval(context.Background(), "IPG", "reason", "DELISTED", 0, "")

	require.NoError(t, err)
	assert.False(t, created)
}

func TestRemovalUsecase_LogRemoval_RepositoryError(t *testing.T) {
	repoErr := errors.New("db gone")
	repo := &mockRemovalRepo{
		SaveFunc: func(ctx context.Context, e entity.RemovalEntry) (bool, error) {
			return false, repoErr
		},
	}
	uc := NewRemovalUsecase(repo)

	_, err := uc.LogRemoval(context.Background(), "IPG", "reason", "DELISTED", 0, "")

	assert.ErrorIs(t, err, repoErr)
}

func TestRemovalUsecase_List(t *testing.T) {
	repo := &mockRemovalRepo{
		ListFunc: func(ctx context.Context) ([]entity.RemovalEntry, error) {
			return []entity.RemovalEntry{{Symbol: "IPG"}, {Symbol: "CRCW"}}, nil
		},
	}
	uc := NewRemovalUsecase(repo)

	entries, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
