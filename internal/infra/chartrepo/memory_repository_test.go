package chartrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
)

func record(id string, owner int64, created time.Time) astrology.ChartRecord {
	return astrology.ChartRecord{
		ID:            id,
		OwnerID:       owner,
		Label:         id,
		Birth:         astrology.BirthDetails{Date: "1990-01-01", Time: "12:00"},
		Horoscope:     astrology.HoroscopeData{SunSign: "Capricorn"},
		EngineVersion: astrology.EngineVersion,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func TestMemoryRepository_OwnerScoping(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, record("a", 1, base))
	require.NoError(t, err)
	_, err = repo.Create(ctx, record("b", 1, base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, record("c", 2, base))
	require.NoError(t, err)

	list, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b", list[0].ID)
	require.Equal(t, "a", list[1].ID)

	_, found, err := repo.Get(ctx, 2, "a")
	require.NoError(t, err)
	require.False(t, found)

	require.ErrorIs(t, repo.Delete(ctx, 2, "a"), astrology.ErrChartNotFound)
	require.NoError(t, repo.Delete(ctx, 1, "a"))
	_, found, err = repo.Get(ctx, 1, "a")
	require.NoError(t, err)
	require.False(t, found)

	empty, err := repo.ListByOwner(ctx, 99)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, record("a", 1, base))
	require.NoError(t, err)

	changed := record("a", 1, base)
	changed.EngineVersion = "v9"
	changed.Horoscope.SunSign = "Sagittarius"
	changed.UpdatedAt = base.Add(time.Hour)
	updated, err := repo.Update(ctx, changed)
	require.NoError(t, err)
	require.Equal(t, "v9", updated.EngineVersion)
	require.Equal(t, "Sagittarius", updated.Horoscope.SunSign)
	require.Equal(t, base, updated.CreatedAt)

	changed.ID = "missing"
	_, err = repo.Update(ctx, changed)
	require.ErrorIs(t, err, astrology.ErrChartNotFound)
}
