package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// horizontalEdgeEpsilon substitutes a zero latitude delta on horizontal
	// polygon edges so the crossing test never divides by zero.
	horizontalEdgeEpsilon = 0.0000001

	polygonMinVertices = 3
)

// ErrPointIsNotConstructed is returned when attempting to use an improperly initialized Point.
// Points must be created using the NewPoint constructor to ensure coordinate validity.
var ErrPointIsNotConstructed = errs.NewValueIsRequiredError(
	"point must be created via NewPoint constructor")

// ErrPolygonIsNotConstructed is returned when attempting to use an improperly initialized Polygon.
var ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
	"polygon must be created via NewPolygon constructor")

// Point represents a geographic coordinate pair with validated latitude and longitude.
// Point is an immutable value object; the zero value is invalid and fails validation.
//
// Example:
//
//	pt, err := kernel.NewPoint(33.51, 36.29)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(pt) // Output: Point(33.510000,36.290000)
type Point struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewPoint creates a Point from latitude and longitude in degrees.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewPoint(lat float64, lng float64) (Point, error) {
	p := Point{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return Point{}, err
	}

	return p, nil
}

// Validate checks if the Point was properly constructed using the constructor.
func (p Point) Validate() error {
	return p.guard.Validate(ErrPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p Point) Lng() float64 {
	return p.lng
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p Point) IsEqual(other Point) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// String returns a human-readable representation in the format "Point(lat,lng)".
func (p Point) String() string {
	return fmt.Sprintf("Point(%f,%f)", p.lat, p.lng)
}

func (p *Point) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

func (p *Point) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	p.lng = lng
	return nil
}

// Polygon represents a simple (non-self-intersecting) geographic ring used as a
// sector boundary. Vertices are ordered and the last vertex implicitly connects
// back to the first. Polygon is immutable once constructed.
//
// Example:
//
//	a, _ := kernel.NewPoint(0, 0)
//	b, _ := kernel.NewPoint(0, 10)
//	c, _ := kernel.NewPoint(10, 10)
//	d, _ := kernel.NewPoint(10, 0)
//	ring, err := kernel.NewPolygon([]kernel.Point{a, b, c, d})
//	if err != nil {
//	    // Handle validation error
//	}
//	inside, _ := ring.Contains(somePoint)
type Polygon struct { //nolint:recvcheck //using for validation
	vertices []Point
	guard    guard.ConstructorGuard
}

// NewPolygon creates a Polygon from an ordered list of vertices.
// At least three vertices are required and each vertex must be a valid Point.
func NewPolygon(vertices []Point) (Polygon, error) {
	p := Polygon{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setVertices(vertices); err != nil {
		return Polygon{}, err
	}

	return p, nil
}

// Validate checks if the Polygon was properly constructed using the constructor.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the polygon's ordered vertices.
func (p Polygon) Vertices() []Point {
	vertices := make([]Point, len(p.vertices))
	copy(vertices, p.vertices)
	return vertices
}

// Contains reports whether the given point lies inside the polygon.
//
// The test uses the ray-casting (crossing number) algorithm: a horizontal ray
// is extended from the point and crossings with each polygon edge are counted;
// the point is inside iff the count is odd. Horizontal edges are handled by
// substituting a small epsilon for the zero latitude delta. The result does not
// depend on the order in which edges are evaluated.
//
// Both the polygon and the point must be properly constructed.
func (p Polygon) Contains(point Point) (bool, error) {
	if err := errors.Join(p.Validate(), point.Validate()); err != nil {
		return false, err
	}

	inside := false
	j := len(p.vertices) - 1

	for i := 0; i < len(p.vertices); i++ {
		xi, yi := p.vertices[i].lat, p.vertices[i].lng
		xj, yj := p.vertices[j].lat, p.vertices[j].lng

		dy := yj - yi
		if dy == 0 {
			dy = horizontalEdgeEpsilon
		}

		if (yi > point.lng) != (yj > point.lng) &&
			point.lat < (xj-xi)*(point.lng-yi)/dy+xi {
			inside = !inside
		}

		j = i
	}

	return inside, nil
}

func (p *Polygon) setVertices(vertices []Point) error {
	if len(vertices) < polygonMinVertices {
		return errs.NewValueIsInvalidErrorWithCause("polygon",
			fmt.Errorf("%d vertices is less than the minimum of %d", len(vertices), polygonMinVertices))
	}

	for _, v := range vertices {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	p.vertices = make([]Point, len(vertices))
	copy(p.vertices, vertices)
	return nil
}
