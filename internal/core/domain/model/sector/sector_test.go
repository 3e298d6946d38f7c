package sector_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/sector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareBoundary(t *testing.T) kernel.Polygon {
	t.Helper()
	vertices := make([]kernel.Point, 0, 4)
	for _, coords := range [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}} {
		point, err := kernel.NewPoint(coords[0], coords[1])
		require.NoError(t, err)
		vertices = append(vertices, point)
	}
	polygon, err := kernel.NewPolygon(vertices)
	require.NoError(t, err)
	return polygon
}

func TestNewSector(t *testing.T) {
	t.Run("creates an active sector", func(t *testing.T) {
		s, err := sector.NewSector(kernel.NewUUID(), "downtown", squareBoundary(t), 3.5)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "downtown", s.Name())
		assert.InDelta(t, 3.5, s.DeliveryFee(), 0.0001)
		assert.True(t, s.IsActive())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := sector.NewSector(kernel.NewUUID(), "", squareBoundary(t), 3.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("fails with negative delivery fee", func(t *testing.T) {
		_, err := sector.NewSector(kernel.NewUUID(), "downtown", squareBoundary(t), -1)
		require.Error(t, err)
	})

	t.Run("fails with unconstructed boundary", func(t *testing.T) {
		var boundary kernel.Polygon
		_, err := sector.NewSector(kernel.NewUUID(), "downtown", boundary, 3.5)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s sector.Sector
		require.Error(t, s.Validate())
	})
}

func TestSector_Contains(t *testing.T) {
	s, err := sector.NewSector(kernel.NewUUID(), "downtown", squareBoundary(t), 3.5)
	require.NoError(t, err)

	t.Run("point inside", func(t *testing.T) {
		point, err := kernel.NewPoint(5, 5)
		require.NoError(t, err)

		inside, err := s.Contains(point)
		require.NoError(t, err)
		assert.True(t, inside)
	})

	t.Run("point outside", func(t *testing.T) {
		point, err := kernel.NewPoint(15, 15)
		require.NoError(t, err)

		inside, err := s.Contains(point)
		require.NoError(t, err)
		assert.False(t, inside)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		var point kernel.Point
		_, err := s.Contains(point)
		require.Error(t, err)
	})
}

func TestSector_Activation(t *testing.T) {
	s, err := sector.NewSector(kernel.NewUUID(), "downtown", squareBoundary(t), 3.5)
	require.NoError(t, err)

	s.Deactivate()
	assert.False(t, s.IsActive())

	s.Activate()
	assert.True(t, s.IsActive())
}

func TestRestoreSector(t *testing.T) {
	t.Run("restores an inactive sector", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := sector.RestoreSector(id, "suburbs", squareBoundary(t), 5, false)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.False(t, s.IsActive())
	})
}
