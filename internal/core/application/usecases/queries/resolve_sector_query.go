package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrResolveSectorQueryIsNotConstructed = errors.New(
	"ResolveSectorQuery must be created via NewResolveSectorQuery constructor",
)

// ResolveSectorQuery checks which active sector serves a coordinate.
// Customer apps call this before checkout to tell the user whether their
// address is inside the service area at all.
type ResolveSectorQuery struct { //nolint:recvcheck //using for validation
	point kernel.Point

	guard guard.ConstructorGuard
}

// NewResolveSectorQuery creates a sector resolution query for a coordinate.
func NewResolveSectorQuery(lat float64, lng float64) (ResolveSectorQuery, error) {
	query := ResolveSectorQuery{
		guard: guard.NewConstructorGuard(),
	}

	point, err := kernel.NewPoint(lat, lng)
	if err != nil {
		return ResolveSectorQuery{}, err
	}
	query.point = point

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveSectorQuery) Validate() error {
	return q.guard.Validate(ErrResolveSectorQueryIsNotConstructed)
}

// Point returns the coordinate to resolve.
func (q ResolveSectorQuery) Point() kernel.Point {
	return q.point
}

// ResolveSectorQueryResponse is the serving sector's public view.
type ResolveSectorQueryResponse struct {
	ID          kernel.UUID
	Name        string
	DeliveryFee float64
}
