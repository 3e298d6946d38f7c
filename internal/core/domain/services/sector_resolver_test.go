package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/sector"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.Point {
	t.Helper()
	point, err := kernel.NewPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func mustSector(t *testing.T, name string, coords [][2]float64, active bool) *sector.Sector {
	t.Helper()
	vertices := make([]kernel.Point, 0, len(coords))
	for _, c := range coords {
		vertices = append(vertices, mustPoint(t, c[0], c[1]))
	}
	polygon, err := kernel.NewPolygon(vertices)
	require.NoError(t, err)

	s, err := sector.RestoreSector(kernel.NewUUID(), name, polygon, 3, active)
	require.NoError(t, err)
	return s
}

func TestSectorResolver_Resolve(t *testing.T) {
	resolver := services.NewSectorResolver()

	west := mustSector(t, "west", [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, true)
	east := mustSector(t, "east", [][2]float64{{0, 20}, {0, 30}, {10, 30}, {10, 20}}, true)

	t.Run("resolves the containing sector", func(t *testing.T) {
		match, err := resolver.Resolve(mustPoint(t, 5, 25), []*sector.Sector{west, east})

		require.NoError(t, err)
		assert.True(t, match.IsEqual(east))
	})

	t.Run("point outside every sector is not found", func(t *testing.T) {
		_, err := resolver.Resolve(mustPoint(t, 50, 50), []*sector.Sector{west, east})
		require.ErrorIs(t, err, services.ErrSectorNotFound)
	})

	t.Run("inactive sectors are skipped", func(t *testing.T) {
		dormant := mustSector(t, "dormant", [][2]float64{{40, 40}, {40, 50}, {50, 50}, {50, 40}}, false)

		_, err := resolver.Resolve(mustPoint(t, 45, 45), []*sector.Sector{west, dormant})
		require.ErrorIs(t, err, services.ErrSectorNotFound)
	})

	t.Run("overlap resolves to the smallest identifier", func(t *testing.T) {
		overlapA := mustSector(t, "overlap a", [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, true)
		overlapB := mustSector(t, "overlap b", [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, true)

		expected := overlapA
		if overlapB.ID().String() < overlapA.ID().String() {
			expected = overlapB
		}

		// Input order must not matter.
		first, err := resolver.Resolve(mustPoint(t, 5, 5), []*sector.Sector{overlapA, overlapB})
		require.NoError(t, err)
		second, err := resolver.Resolve(mustPoint(t, 5, 5), []*sector.Sector{overlapB, overlapA})
		require.NoError(t, err)

		assert.True(t, first.IsEqual(expected))
		assert.True(t, second.IsEqual(expected))
	})

	t.Run("empty sector set is not found", func(t *testing.T) {
		_, err := resolver.Resolve(mustPoint(t, 5, 5), nil)
		require.ErrorIs(t, err, services.ErrSectorNotFound)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		var point kernel.Point
		_, err := resolver.Resolve(point, []*sector.Sector{west})
		require.Error(t, err)
	})

	t.Run("unconstructed sector fails", func(t *testing.T) {
		var broken sector.Sector
		_, err := resolver.Resolve(mustPoint(t, 5, 5), []*sector.Sector{&broken})
		require.Error(t, err)
	})
}
