package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.Point {
	t.Helper()
	p, err := kernel.NewPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func squarePolygon(t *testing.T) kernel.Polygon {
	t.Helper()
	polygon, err := kernel.NewPolygon([]kernel.Point{
		mustPoint(t, 0, 0),
		mustPoint(t, 0, 10),
		mustPoint(t, 10, 10),
		mustPoint(t, 10, 0),
	})
	require.NoError(t, err)
	return polygon
}

func TestNewPoint(t *testing.T) {
	t.Run("should create valid point", func(t *testing.T) {
		p, err := kernel.NewPoint(33.51, 36.29)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 33.51, p.Lat(), 0.0001)
		assert.InDelta(t, 36.29, p.Lng(), 0.0001)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewPoint(90, 180)
		require.NoError(t, err)

		_, err = kernel.NewPoint(-90, -180)
		require.NoError(t, err)
	})

	t.Run("should fail with latitude out of range", func(t *testing.T) {
		_, err := kernel.NewPoint(91, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewPoint(0, -181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lng")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.Point
		require.Error(t, p.Validate())
	})
}

func TestPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates are equal", func(t *testing.T) {
		a := mustPoint(t, 5, 5)
		b := mustPoint(t, 5, 5)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates are not equal", func(t *testing.T) {
		a := mustPoint(t, 5, 5)
		b := mustPoint(t, 5, 6)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		a := mustPoint(t, 5, 5)
		var b kernel.Point

		_, err := a.IsEqual(b)
		require.Error(t, err)
	})
}

func TestNewPolygon(t *testing.T) {
	t.Run("should create polygon with three or more vertices", func(t *testing.T) {
		polygon, err := kernel.NewPolygon([]kernel.Point{
			mustPoint(t, 0, 0),
			mustPoint(t, 0, 5),
			mustPoint(t, 5, 5),
		})

		require.NoError(t, err)
		require.NoError(t, polygon.Validate())
		assert.Len(t, polygon.Vertices(), 3)
	})

	t.Run("should fail with fewer than three vertices", func(t *testing.T) {
		_, err := kernel.NewPolygon([]kernel.Point{
			mustPoint(t, 0, 0),
			mustPoint(t, 0, 5),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "polygon")
	})

	t.Run("should fail with unconstructed vertex", func(t *testing.T) {
		var zero kernel.Point
		_, err := kernel.NewPolygon([]kernel.Point{
			mustPoint(t, 0, 0),
			mustPoint(t, 0, 5),
			zero,
		})

		require.Error(t, err)
	})

	t.Run("vertices returns a copy", func(t *testing.T) {
		polygon := squarePolygon(t)

		vertices := polygon.Vertices()
		vertices[0] = mustPoint(t, 42, 42)

		equal, err := polygon.Vertices()[0].IsEqual(mustPoint(t, 0, 0))
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var polygon kernel.Polygon
		require.Error(t, polygon.Validate())
	})
}

func TestPolygon_Contains(t *testing.T) {
	t.Run("point inside square is contained", func(t *testing.T) {
		polygon := squarePolygon(t)

		inside, err := polygon.Contains(mustPoint(t, 5, 5))
		require.NoError(t, err)
		assert.True(t, inside)
	})

	t.Run("point outside square is not contained", func(t *testing.T) {
		polygon := squarePolygon(t)

		inside, err := polygon.Contains(mustPoint(t, 15, 15))
		require.NoError(t, err)
		assert.False(t, inside)
	})

	t.Run("point far outside is not contained", func(t *testing.T) {
		polygon := squarePolygon(t)

		inside, err := polygon.Contains(mustPoint(t, -20, 40))
		require.NoError(t, err)
		assert.False(t, inside)
	})

	t.Run("horizontal edges do not break the crossing test", func(t *testing.T) {
		// All edges of the square parallel to an axis, point level with an edge.
		polygon := squarePolygon(t)

		inside, err := polygon.Contains(mustPoint(t, 5, 9.999))
		require.NoError(t, err)
		assert.True(t, inside)

		inside, err = polygon.Contains(mustPoint(t, 5, 10.001))
		require.NoError(t, err)
		assert.False(t, inside)
	})

	t.Run("concave polygon notch is excluded", func(t *testing.T) {
		// U-shaped polygon: the notch between the arms is outside.
		polygon, err := kernel.NewPolygon([]kernel.Point{
			mustPoint(t, 0, 0),
			mustPoint(t, 10, 0),
			mustPoint(t, 10, 4),
			mustPoint(t, 2, 4),
			mustPoint(t, 2, 6),
			mustPoint(t, 10, 6),
			mustPoint(t, 10, 10),
			mustPoint(t, 0, 10),
		})
		require.NoError(t, err)

		inside, err := polygon.Contains(mustPoint(t, 5, 5))
		require.NoError(t, err)
		assert.False(t, inside)

		inside, err = polygon.Contains(mustPoint(t, 1, 5))
		require.NoError(t, err)
		assert.True(t, inside)
	})

	t.Run("result is not affected by vertex ordering direction", func(t *testing.T) {
		clockwise, err := kernel.NewPolygon([]kernel.Point{
			mustPoint(t, 0, 0),
			mustPoint(t, 10, 0),
			mustPoint(t, 10, 10),
			mustPoint(t, 0, 10),
		})
		require.NoError(t, err)

		counterClockwise := squarePolygon(t)

		for _, probe := range []kernel.Point{
			mustPoint(t, 5, 5),
			mustPoint(t, 15, 15),
			mustPoint(t, 9, 1),
		} {
			a, err := clockwise.Contains(probe)
			require.NoError(t, err)
			b, err := counterClockwise.Contains(probe)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		polygon := squarePolygon(t)
		var zero kernel.Point

		_, err := polygon.Contains(zero)
		require.Error(t, err)
	})
}
